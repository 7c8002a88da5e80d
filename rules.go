package authority

// RuleSet is a Policy built from an explicit action-to-handler table.
// Register handlers at startup, then treat the set as read-only; RuleSet
// performs no locking of its own.
type RuleSet struct {
	can      map[Action]CanHandler
	scope    map[Action]ScopeHandler
	canAny   CanHandler
	scopeAny ScopeHandler
	before   BeforeHandler
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		can:   make(map[Action]CanHandler),
		scope: make(map[Action]ScopeHandler),
	}
}

// Can registers the decision handler for action, overwriting any existing
// entry.
func (r *RuleSet) Can(action Action, h CanHandler) *RuleSet {
	r.can[action] = h
	return r
}

// CanAny registers a catch-all decision handler used for actions without a
// specific entry.
func (r *RuleSet) CanAny(h CanHandler) *RuleSet {
	r.canAny = h
	return r
}

// Scope registers the scope handler for action, overwriting any existing
// entry.
func (r *RuleSet) Scope(action Action, h ScopeHandler) *RuleSet {
	r.scope[action] = h
	return r
}

// ScopeAny registers a catch-all scope handler used for actions without a
// specific entry.
func (r *RuleSet) ScopeAny(h ScopeHandler) *RuleSet {
	r.scopeAny = h
	return r
}

// BeforeFunc registers the pre-authorization hook (see BeforePolicy).
func (r *RuleSet) BeforeFunc(h BeforeHandler) *RuleSet {
	r.before = h
	return r
}

// CanHandler implements Policy.
func (r *RuleSet) CanHandler(action Action) CanHandler {
	if h, ok := r.can[action]; ok {
		return h
	}
	return r.canAny
}

// ScopeHandler implements Policy.
func (r *RuleSet) ScopeHandler(action Action) ScopeHandler {
	if h, ok := r.scope[action]; ok {
		return h
	}
	return r.scopeAny
}

// Before implements BeforePolicy. With no hook registered it returns nil,
// which lets the decision fall through to the action handler.
func (r *RuleSet) Before(identity *Identity, resource any, action Action) any {
	if r.before == nil {
		return nil
	}
	return r.before(identity, resource, action)
}
