package common

import "github.com/google/uuid"

// ParseID reports whether s is a well-formed identifier and returns it in
// canonical (lower-case, hyphenated) form.
func ParseID(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}
