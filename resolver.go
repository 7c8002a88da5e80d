package authority

import (
	"reflect"
	"strings"
)

// Resolver locates the policy for a resource. A resource's policy depends
// only on its runtime type (and resolver order, for collections), never on
// the identity or the action being decided.
type Resolver interface {
	// Policy returns the policy bound to resource's type, or a
	// *MissingPolicyError when none can be determined.
	Policy(resource any) (Policy, error)
}

// resourceType returns the runtime type used as a resolver key, with
// pointers dereferenced so *Article and Article share a policy.
func resourceType(resource any) reflect.Type {
	t := reflect.TypeOf(resource)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// resourceName returns the short type name used in error messages.
func resourceName(resource any) string {
	t := resourceType(resource)
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

// packageName returns the last segment of the type's package path, the
// namespace a ConventionResolver derives candidates from.
func packageName(t reflect.Type) string {
	path := t.PkgPath()
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
