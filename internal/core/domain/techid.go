package domain

import "unique"

// TechID is an interned technology id. Graph edges repeat ids many times, so
// comparing handles keeps lookups cheap.
type TechID struct {
	h unique.Handle[string]
}

// NewTechID interns s.
func NewTechID(s string) TechID {
	return TechID{h: unique.Make(s)}
}

// String returns the id. The zero TechID is the empty string.
func (id TechID) String() string {
	var zero unique.Handle[string]
	if id.h == zero {
		return ""
	}
	return id.h.Value()
}
