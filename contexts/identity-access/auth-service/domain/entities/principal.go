package entities

import "strings"

// Principal is the authenticated caller as reported by the identity provider.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// IsZero reports whether no principal was resolved.
func (p Principal) IsZero() bool {
	return strings.TrimSpace(p.ID) == ""
}
