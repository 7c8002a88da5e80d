package authority

import "errors"

// ResolverCollection chains resolvers. Order is significant: the first
// successful resolution wins.
type ResolverCollection struct {
	resolvers []Resolver
}

// NewResolverCollection creates a collection trying resolvers in the given
// order.
func NewResolverCollection(resolvers ...Resolver) *ResolverCollection {
	return &ResolverCollection{resolvers: resolvers}
}

// Add appends a resolver to the end of the chain.
func (c *ResolverCollection) Add(r Resolver) *ResolverCollection {
	c.resolvers = append(c.resolvers, r)
	return c
}

// Policy implements Resolver. Missing-policy failures from individual
// resolvers are collected and surfaced as one aggregated
// *MissingPolicyError; any other resolver error aborts the chain
// immediately.
func (c *ResolverCollection) Policy(resource any) (Policy, error) {
	var missing []error
	for _, r := range c.resolvers {
		p, err := r.Policy(resource)
		if err == nil {
			return p, nil
		}
		var mp *MissingPolicyError
		if !errors.As(err, &mp) {
			return nil, err
		}
		missing = append(missing, err)
	}
	return nil, &MissingPolicyError{
		Resource: resourceName(resource),
		cause:    errors.Join(missing...),
	}
}
