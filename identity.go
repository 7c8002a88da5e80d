package authority

// Identity wraps the acting principal's attributes together with the service
// that decides on its behalf. Identities are created per request; the
// attribute map is treated as immutable after construction and the service
// must outlive the wrapper.
type Identity struct {
	service *Service
	data    map[string]any
}

// NewIdentity decorates data with decision capability backed by service.
func NewIdentity(service *Service, data map[string]any) *Identity {
	return &Identity{service: service, data: data}
}

// Can reports whether this identity may perform action on resource.
func (i *Identity) Can(action Action, resource any, extra ...any) (bool, error) {
	return i.service.Can(i, action, resource, extra...)
}

// ApplyScope narrows resource to what this identity may see.
func (i *Identity) ApplyScope(action Action, resource any, extra ...any) (any, error) {
	return i.service.ApplyScope(i, action, resource, extra...)
}

// OriginalData returns the wrapped attribute map unchanged. The map is
// shared, not copied; callers must not mutate it.
func (i *Identity) OriginalData() map[string]any {
	return i.data
}

// Attr returns the named attribute, or nil when absent.
func (i *Identity) Attr(name string) any {
	return i.data[name]
}

// Has reports whether the named attribute is present.
func (i *Identity) Has(name string) bool {
	_, ok := i.data[name]
	return ok
}

// StringAttr returns the named attribute as a string, or "" when absent or
// of another type.
func (i *Identity) StringAttr(name string) string {
	s, _ := i.data[name].(string)
	return s
}

// IntAttr returns the named attribute as an int, or 0 when absent or not a
// number. Float values (e.g. decoded JSON numbers) are truncated.
func (i *Identity) IntAttr(name string) int {
	switch v := i.data[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// UintAttr returns the named attribute as a uint, or 0 when absent, not a
// number, or negative.
func (i *Identity) UintAttr(name string) uint {
	switch v := i.data[name].(type) {
	case uint:
		return v
	case int:
		if v >= 0 {
			return uint(v)
		}
	case int64:
		if v >= 0 {
			return uint(v)
		}
	case float64:
		if v >= 0 {
			return uint(v)
		}
	}
	return 0
}
