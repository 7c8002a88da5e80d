package gormauth

import (
	"reflect"

	authority "github.com/diewo77/go-authority"
)

// OwnershipPolicy authorizes any action by comparing the resource's owner
// field against the identity's "id" attribute: users may only touch records
// they own. A nil resource (create/list style, context-only check) passes;
// the ownership question does not apply yet.
type OwnershipPolicy struct {
	// Field is the resource struct field holding the owning user ID.
	Field string
	// Column is the database column used when scoping queries.
	Column string
}

// NewOwnershipPolicy creates an ownership policy over the conventional
// UserID field / user_id column.
func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{Field: "UserID", Column: "user_id"}
}

// CanHandler implements authority.Policy as a catch-all ownership check.
func (p *OwnershipPolicy) CanHandler(_ authority.Action) authority.CanHandler {
	return func(identity *authority.Identity, resource any, _ ...any) bool {
		if resource == nil {
			return true
		}
		owner, ok := p.ownerOf(resource)
		if !ok {
			return false
		}
		return owner == identity.UintAttr("id")
	}
}

// ScopeHandler implements authority.Policy: every action restricts a *Query
// to rows owned by the identity.
func (p *OwnershipPolicy) ScopeHandler(_ authority.Action) authority.ScopeHandler {
	return ScopeToOwner(p.Column)
}

func (p *OwnershipPolicy) ownerOf(resource any) (uint, bool) {
	v := reflect.ValueOf(resource)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return 0, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return 0, false
	}
	f := v.FieldByName(p.Field)
	if !f.IsValid() {
		return 0, false
	}
	switch f.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint(f.Uint()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := f.Int(); n >= 0 {
			return uint(n), true
		}
	}
	return 0, false
}

// ScopeToOwner builds a scope handler restricting a *Query to rows whose
// column equals the identity's "id" attribute. The wrapper is refined in
// place and returned, preserving resource identity. Non-Query resources pass
// through untouched.
func ScopeToOwner(column string) authority.ScopeHandler {
	return func(identity *authority.Identity, resource any, _ ...any) any {
		q, ok := resource.(*Query)
		if !ok {
			return resource
		}
		return q.Where(column+" = ?", identity.UintAttr("id"))
	}
}
