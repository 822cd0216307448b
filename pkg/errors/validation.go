package errors

import (
	"strings"
	"unicode"
)

// ValidateSetID validates a set identifier for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No commas (the comma joins identifiers into region keys)
//   - Maximum length of 256 characters
//
// Anything else is allowed: identifiers are opaque labels chosen by the
// caller, and the layout core never interprets them.
func ValidateSetID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidSetID, "set identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidSetID, "set identifier too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSetID, "set identifier contains control characters")
		}
	}

	if strings.Contains(id, ",") {
		return New(ErrCodeInvalidSetID, "set identifier %q contains a comma, which is reserved as the region key separator", id)
	}

	return nil
}
