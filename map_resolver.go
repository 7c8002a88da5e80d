package authority

import (
	"fmt"
	"reflect"
)

// PolicyConstructor builds a policy with no arguments.
type PolicyConstructor func() Policy

// PolicyFactory builds a policy from the resource being resolved and the
// resolver performing the lookup.
type PolicyFactory func(resource any, r *MapResolver) Policy

// MapResolver resolves policies through an explicit resource-type map.
// Build the mapping at startup; lookups are read-only and safe for
// concurrent use once mapping stops.
type MapResolver struct {
	policies map[reflect.Type]any // Policy, PolicyConstructor or PolicyFactory
}

// NewMapResolver creates an empty map resolver.
func NewMapResolver() *MapResolver {
	return &MapResolver{policies: make(map[reflect.Type]any)}
}

// Map registers spec as the policy for resource's type, overwriting any
// existing entry. resource may be a value or a pointer to one; spec must be
// a ready Policy instance, a PolicyConstructor or a PolicyFactory. Map
// panics on any other spec since a misconfigured mapping is a programming
// error.
func (r *MapResolver) Map(resource any, spec any) *MapResolver {
	switch spec.(type) {
	case Policy, PolicyConstructor, func() Policy, PolicyFactory, func(any, *MapResolver) Policy:
	default:
		panic(fmt.Sprintf(
			"authority: policy spec for %T must be a Policy, PolicyConstructor or PolicyFactory, got %T",
			resource, spec))
	}
	r.policies[resourceType(resource)] = spec
	return r
}

// Policy implements Resolver with an exact-type lookup: constructors and
// factories are invoked per resolution, instances are returned as mapped.
func (r *MapResolver) Policy(resource any) (Policy, error) {
	spec, ok := r.policies[resourceType(resource)]
	if !ok {
		return nil, &MissingPolicyError{Resource: resourceName(resource)}
	}
	switch s := spec.(type) {
	case PolicyConstructor:
		return s(), nil
	case func() Policy:
		return s(), nil
	case PolicyFactory:
		return s(resource, r), nil
	case func(any, *MapResolver) Policy:
		return s(resource, r), nil
	case Policy:
		return s, nil
	default:
		// unreachable: Map validates specs
		return nil, &MissingPolicyError{Resource: resourceName(resource)}
	}
}
