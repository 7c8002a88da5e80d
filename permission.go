package authority

import "strings"

// Permission represents an allowed action on a resource type.
// Format: "resource:action" (e.g., "article:add", "invoice:view")
type Permission string

// NewPermission creates a permission from resource type and action.
func NewPermission(resourceType string, action Action) Permission {
	return Permission(resourceType + ":" + string(action))
}

// Parse splits a permission into resource type and action.
func (p Permission) Parse() (resourceType string, action Action) {
	parts := strings.SplitN(string(p), ":", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], Action(parts[1])
}

// Wildcards for super permissions
const (
	WildcardAll                     = "*"
	PermissionSuperAdmin Permission = "*:*"
)

// Matches checks if this permission matches a requested permission.
// Supports wildcards: "*:*" matches all, "article:*" matches all article
// actions.
func (p Permission) Matches(requested Permission) bool {
	if p == PermissionSuperAdmin {
		return true
	}
	if p == requested {
		return true
	}
	// Resource wildcard: "article:*" matches "article:add"
	res, act := p.Parse()
	reqRes, _ := requested.Parse()
	return res == reqRes && string(act) == WildcardAll
}

// PermissionPolicy is a catch-all Policy granting whatever actions the
// identity's permission attribute lists for a single resource type. It pairs
// with identities whose attribute holds []Permission or []string entries,
// with wildcard matching.
type PermissionPolicy struct {
	resource string
	attr     string
}

// NewPermissionPolicy creates a permission policy for resourceType reading
// grants from the identity attribute attr ("permissions" when empty).
func NewPermissionPolicy(resourceType, attr string) *PermissionPolicy {
	if attr == "" {
		attr = "permissions"
	}
	return &PermissionPolicy{resource: resourceType, attr: attr}
}

// CanHandler implements Policy with a single default decision for every
// action.
func (p *PermissionPolicy) CanHandler(action Action) CanHandler {
	return func(identity *Identity, _ any, _ ...any) bool {
		return p.granted(identity, action)
	}
}

// ScopeHandler implements Policy; permission policies do not scope.
func (p *PermissionPolicy) ScopeHandler(Action) ScopeHandler { return nil }

func (p *PermissionPolicy) granted(identity *Identity, action Action) bool {
	requested := NewPermission(p.resource, action)
	switch perms := identity.Attr(p.attr).(type) {
	case []Permission:
		for _, perm := range perms {
			if perm.Matches(requested) {
				return true
			}
		}
	case []string:
		for _, perm := range perms {
			if Permission(perm).Matches(requested) {
				return true
			}
		}
	}
	return false
}
