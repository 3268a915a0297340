// File: contains.go
// Title: Containment and Equality
// Description: Null-aware containment and case-insensitive equality checks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package textx

import "strings"

// HasValue reports whether find occurs in source under cmp.
// It returns false when either side is null or empty.
func HasValue(source, find *string, cmp Comparison) bool {
	if IsNullOrEmpty(source) || IsNullOrEmpty(find) {
		return false
	}
	start, _ := indexOf(*source, *find, cmp)
	return start >= 0
}

// EqualsIgnoreCase reports whether a and b hold the same text ignoring case.
// Two nulls are equal; a null never equals a non-null, not even "".
func EqualsIgnoreCase(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return strings.EqualFold(*a, *b)
}
