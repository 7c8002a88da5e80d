package authority

// ConventionOptions configures name derivation for a ConventionResolver.
type ConventionOptions struct {
	// AppNamespace is the application-level override namespace, tried before
	// the resource's own namespace. Empty disables that first tier.
	AppNamespace string

	// Overrides redirects a resource namespace to a policy namespace, e.g.
	// {"models": "policies"}. Applied on the second tier only.
	Overrides map[string]string

	// Suffix is appended to the resource type name. Defaults to "Policy".
	Suffix string
}

// ConventionResolver derives policy names from the resource's type by
// convention and instantiates them through a name-to-constructor registry.
// Go offers no construction of types from strings, so conventionally named
// policies are registered up front with Register; resolution is then a pure
// lookup over the candidate names.
//
// Query and collection resources implementing ModelProvider resolve against
// their underlying record type.
type ConventionResolver struct {
	opts         ConventionOptions
	constructors map[string]PolicyConstructor
}

// NewConventionResolver creates a convention resolver with the given options.
func NewConventionResolver(opts ConventionOptions) *ConventionResolver {
	if opts.Suffix == "" {
		opts.Suffix = "Policy"
	}
	return &ConventionResolver{
		opts:         opts,
		constructors: make(map[string]PolicyConstructor),
	}
}

// Register binds a fully qualified policy name ("namespace.TypePolicy") to
// its constructor, overwriting any existing entry. Register at startup;
// lookups are not synchronized with registration.
func (r *ConventionResolver) Register(name string, ctor PolicyConstructor) *ConventionResolver {
	r.constructors[name] = ctor
	return r
}

// Candidates returns the policy names tried for resource, in order: the
// application namespace first, then the resource's own namespace after
// override redirection.
func (r *ConventionResolver) Candidates(resource any) []string {
	if mp, ok := resource.(ModelProvider); ok {
		resource = mp.Model()
	}
	t := resourceType(resource)
	if t == nil {
		return nil
	}
	base := t.Name() + r.opts.Suffix
	var names []string
	if r.opts.AppNamespace != "" {
		names = append(names, r.opts.AppNamespace+"."+base)
	}
	ns := packageName(t)
	if redirected, ok := r.opts.Overrides[ns]; ok {
		ns = redirected
	}
	if ns != "" {
		names = append(names, ns+"."+base)
	}
	return names
}

// Policy implements Resolver: the first candidate with a registered
// constructor wins.
func (r *ConventionResolver) Policy(resource any) (Policy, error) {
	for _, name := range r.Candidates(resource) {
		if ctor, ok := r.constructors[name]; ok {
			return ctor(), nil
		}
	}
	return nil, &MissingPolicyError{Resource: resourceName(resource)}
}
