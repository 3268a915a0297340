// File: substring.go
// Title: Clamped Substrings and Safe Trimming
// Description: Rune-offset slicing that never fails on bad bounds, a strict
//              variant reporting them as errors, and a trim that keeps null
//              apart from empty.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package textx

import (
	"strings"
	"unicode/utf8"

	txerror "github.com/msto63/textx/core/error"
)

// SubstringOrEmpty returns source from rune offset start to the end.
// It returns "" when source is null or empty, or when start lies outside
// [0, len(source)).
func SubstringOrEmpty(source *string, start int) string {
	if IsNullOrEmpty(source) {
		return ""
	}
	from, _, ok := runeWindow(*source, start, -1)
	if !ok {
		return ""
	}
	return (*source)[from:]
}

// SubstringOrEmptyLen returns up to length runes of source starting at rune
// offset start. A window running past the end is clamped to the remainder.
// It returns "" when source is null or empty, when start lies outside
// [0, len(source)), or when length is not positive.
func SubstringOrEmptyLen(source *string, start, length int) string {
	if IsNullOrEmpty(source) || length <= 0 {
		return ""
	}
	from, to, ok := runeWindow(*source, start, length)
	if !ok {
		return ""
	}
	return (*source)[from:to]
}

// SubstringWithValidation is the strict form of SubstringOrEmptyLen. Null or
// empty source, a start outside the string and a negative length are reported
// as errors instead of collapsing to "". A length running past the end is
// still clamped.
func SubstringWithValidation(source *string, start, length int) (string, error) {
	if IsNullOrEmpty(source) {
		return "", txerror.InvalidInput(module, "substring", source, "non-empty text")
	}

	n := utf8.RuneCountInString(*source)
	if start < 0 || start >= n {
		return "", txerror.OutOfRange(module, "substring", start, 0, n-1).
			WithDetail("parameter", "start")
	}
	if length < 0 {
		return "", txerror.OutOfRange(module, "substring", length, 0, n-start).
			WithDetail("parameter", "length")
	}
	if length == 0 {
		return "", nil
	}

	from, to, _ := runeWindow(*source, start, length)
	return (*source)[from:to], nil
}

// SafeTrim removes leading and trailing white space. Null stays null.
func SafeTrim(source *string) *string {
	if source == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*source)
	return &trimmed
}

// runeWindow maps the rune window [start, start+length) of s to byte offsets,
// clamping the end to len(s). A negative length selects the remainder. ok is
// false when start is not a rune offset inside s.
func runeWindow(s string, start, length int) (from, to int, ok bool) {
	if start < 0 {
		return 0, 0, false
	}

	from, to = -1, len(s)
	n := 0
	for i := range s {
		if n == start {
			from = i
			if length < 0 {
				break
			}
		}
		if from >= 0 && n-start == length {
			to = i
			break
		}
		n++
	}
	if from < 0 {
		return 0, 0, false
	}
	return from, to, true
}
