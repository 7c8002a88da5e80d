package authority

import (
	"unicode"
	"unicode/utf8"
)

// Action describes the kind of operation an identity wants to perform.
// Actions are free-form names; the constants below cover the common CRUD set.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// canMethod returns the conventional decision method name for an action,
// e.g. "add" -> "canAdd". Dispatch itself is table-based (see Policy); the
// conventional name appears in error messages only.
func canMethod(action Action) string {
	return "can" + capitalize(string(action))
}

// scopeMethod returns the conventional scope method name for an action,
// e.g. "index" -> "scopeIndex".
func scopeMethod(action Action) string {
	return "scope" + capitalize(string(action))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
