package authority

// CanHandler decides whether identity may perform an action on resource.
// Extra arguments supplied by the caller beyond the resource are forwarded
// unchanged after it.
type CanHandler func(identity *Identity, resource any, extra ...any) bool

// ScopeHandler narrows resource to what identity is allowed to see and
// returns it. Handlers conventionally mutate the resource in place and
// return the same reference.
type ScopeHandler func(identity *Identity, resource any, extra ...any) any

// BeforeHandler is the pre-authorization hook signature (see BeforePolicy).
type BeforeHandler func(identity *Identity, resource any, action Action) any

// Policy defines authorization rules for a resource type. Instead of
// resolving method names at runtime, a policy maps each action to a handler;
// a nil handler means the action is not defined by the policy.
//
// RuleSet is a ready-made registration-table implementation; policies with a
// small fixed action set may instead switch over the action directly. Either
// form may return one handler for every action as a catch-all.
type Policy interface {
	// CanHandler returns the decision handler for action, or nil when the
	// policy does not define one.
	CanHandler(action Action) CanHandler

	// ScopeHandler returns the scope handler for action, or nil when the
	// policy does not define one.
	ScopeHandler(action Action) ScopeHandler
}

// BeforePolicy is implemented by policies that want a pre-authorization
// hook. Before runs ahead of the decision handler on every Service.Can call
// and may short-circuit it: returning true grants, false denies, and nil
// falls through to the decision handler. Any other value is a contract
// violation reported as *BeforeResultError. Scope application never consults
// the hook.
type BeforePolicy interface {
	Before(identity *Identity, resource any, action Action) any
}

// ModelProvider is implemented by collection or query resources (e.g. an ORM
// query wrapper) that should resolve to the policy of their underlying
// record type.
type ModelProvider interface {
	Model() any
}
