package domain

import "unique"

// InternedString is a canonicalized string. Groups, names, and backing file paths repeat across
// thousands of identities; interning them keeps identities small and makes equality a pointer
// comparison.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the interned value, or "" for the zero InternedString.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether is was never assigned.
func (is InternedString) IsZero() bool {
	return is.h == unique.Handle[string]{}
}
