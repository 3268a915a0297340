// File: text.go
// Title: Nullable Text Helpers
// Description: Helpers for the *string representation of nullable text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package textx

// module is the name textx errors are reported under
const module = "textx"

// Of returns a pointer to a copy of s. It is the non-null constructor for text.
func Of(s string) *string {
	return &s
}

// IsNullOrEmpty reports whether s is nil or points to "".
func IsNullOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// ValueOrEmpty dereferences s, mapping nil to "".
func ValueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
