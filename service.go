// Package authority provides a pluggable authorization decision engine,
// decoupling "who can do what to what" from domain objects. A Service asks a
// Resolver for the Policy bound to a resource's type and dispatches the
// decision to the policy's handler for the requested action; an Identity
// wraps the acting principal's attributes and delegates back to the service.
// This package has no dependencies on domain models and can be reused across
// different applications; see the gormauth subpackage for ORM wiring.
//
// The engine is synchronous and holds no decision state. Resolvers and the
// service are safe for concurrent use once configured: build mappings at
// startup, then treat them as read-only.
package authority

import (
	"log/slog"
	"reflect"
)

// Service is the authorization checkpoint. It orchestrates policy
// resolution, the optional before hook and handler dispatch.
type Service struct {
	resolver Resolver
}

// NewService creates a service resolving policies through resolver.
func NewService(resolver Resolver) *Service {
	return &Service{resolver: resolver}
}

// Can reports whether identity may perform action on resource. Extra
// arguments are forwarded to the policy handler after the resource.
//
// Resolution failures surface as *MissingPolicyError, a policy without a
// handler for action as *MissingMethodError, and a misbehaving before hook
// as *BeforeResultError. All three signal configuration or contract errors;
// none is retryable.
func (s *Service) Can(identity *Identity, action Action, resource any, extra ...any) (bool, error) {
	policy, err := s.resolver.Policy(resource)
	if err != nil {
		return false, err
	}

	if bp, ok := policy.(BeforePolicy); ok {
		switch result := bp.Before(identity, resource, action).(type) {
		case nil:
			// no short-circuit, fall through to the decision handler
		case bool:
			logDecision(action, resource, policy, result, "before")
			return result, nil
		default:
			return false, &BeforeResultError{Value: result}
		}
	}

	handler := policy.CanHandler(action)
	if handler == nil {
		return false, &MissingMethodError{
			Method: canMethod(action),
			Action: action,
			Policy: policyName(policy),
		}
	}

	allowed := handler(identity, resource, extra...)
	logDecision(action, resource, policy, allowed, "rule")
	return allowed, nil
}

// ApplyScope narrows resource to what identity may see by invoking the
// policy's scope handler for action and returning the handler's result.
// Scope handlers conventionally mutate resource in place and return the same
// reference. The before hook does not apply to scoping.
func (s *Service) ApplyScope(identity *Identity, action Action, resource any, extra ...any) (any, error) {
	policy, err := s.resolver.Policy(resource)
	if err != nil {
		return nil, err
	}

	handler := policy.ScopeHandler(action)
	if handler == nil {
		return nil, &MissingMethodError{
			Method: scopeMethod(action),
			Action: action,
			Policy: policyName(policy),
		}
	}

	return handler(identity, resource, extra...), nil
}

func logDecision(action Action, resource any, policy Policy, allowed bool, via string) {
	slog.Debug("authorization decision",
		"action", action,
		"resource", resourceName(resource),
		"policy", policyName(policy),
		"allowed", allowed,
		"via", via,
	)
}

// policyName returns the policy's type name for error messages.
func policyName(p Policy) string {
	t := reflect.TypeOf(p)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
