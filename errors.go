package authority

import "fmt"

// MissingPolicyError is returned when no resolver could produce a policy for
// a resource's type. It signals a configuration error, never a transient
// fault.
type MissingPolicyError struct {
	// Resource is the name of the resource type that has no policy.
	Resource string

	// cause aggregates the individual failures when resolution went through
	// a ResolverCollection.
	cause error
}

func (e *MissingPolicyError) Error() string {
	return fmt.Sprintf("policy for `%s` has not been defined", e.Resource)
}

func (e *MissingPolicyError) Unwrap() error { return e.cause }

// MissingMethodError is returned when the resolved policy does not define a
// decision or scope handler for the requested action.
type MissingMethodError struct {
	Method string // conventional method name, e.g. "canModify"
	Action Action
	Policy string // policy type name
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("Method `%s` for invoking action `%s` has not been defined in `%s`.",
		e.Method, e.Action, e.Policy)
}

// BeforeResultError is returned when a Before hook breaks its contract by
// returning a value other than true, false or nil.
type BeforeResultError struct {
	Value any // the offending value, kept for diagnostics
}

func (e *BeforeResultError) Error() string {
	return "Pre-authorization check must return `bool` or `null`."
}
