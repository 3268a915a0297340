// File: comparison.go
// Title: Comparison Modes and Case-Folding Search
// Description: The Comparison option shared by all searching functions and
//              the rune-level matching primitives behind it. IgnoreCase walks
//              the simple Unicode case-fold orbit of each rune, so a match in
//              the source may differ in byte length from the pattern.
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
	"unicode"
	"unicode/utf8"

	txerror "github.com/msto63/textx/core/error"
)

// Comparison selects how runes are matched when searching.
type Comparison int

const (
	// IgnoreCase matches runes that are equal under simple case folding.
	IgnoreCase Comparison = iota
	// Ordinal matches runes only when they are identical.
	Ordinal
)

// String returns the configuration name of c. Unknown values behave as
// IgnoreCase and are reported as such.
func (c Comparison) String() string {
	if c == Ordinal {
		return "ordinal"
	}
	return "ignore_case"
}

// ParseComparison parses a comparison name as written in configuration
// files and on the command line.
func ParseComparison(s string) (Comparison, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ignore_case", "ignorecase", "insensitive", "ci":
		return IgnoreCase, nil
	case "ordinal", "exact", "cs":
		return Ordinal, nil
	}
	return IgnoreCase, txerror.InvalidInput(module, "parse_comparison", s, "ignore_case or ordinal")
}

// MarshalText implements encoding.TextMarshaler.
func (c Comparison) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Comparison) UnmarshalText(text []byte) error {
	parsed, err := ParseComparison(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// equalRune reports whether a and b match under cmp.
func equalRune(a, b rune, cmp Comparison) bool {
	if a == b {
		return true
	}
	if cmp == Ordinal {
		return false
	}
	return equalFoldRune(a, b)
}

// equalFoldRune reports whether a and b are in the same simple fold orbit.
func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		if 'A' <= a && a <= 'Z' {
			a += 'a' - 'A'
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		return a == b
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// matchPrefix reports whether s starts with prefix under cmp and returns the
// number of bytes of s the match consumed.
func matchPrefix(s, prefix string, cmp Comparison) (int, bool) {
	if cmp == Ordinal {
		if strings.HasPrefix(s, prefix) {
			return len(prefix), true
		}
		return 0, false
	}

	i := 0
	for _, pr := range prefix {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !equalFoldRune(sr, pr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

// indexOf returns the byte offsets [start, end) of the first match of find
// in s, or -1, -1 when there is none. An empty find matches at 0.
func indexOf(s, find string, cmp Comparison) (int, int) {
	if cmp == Ordinal {
		i := strings.Index(s, find)
		if i < 0 {
			return -1, -1
		}
		return i, i + len(find)
	}

	if find == "" {
		return 0, 0
	}
	for i := range s {
		if n, ok := matchPrefix(s[i:], find, cmp); ok {
			return i, i + n
		}
	}
	return -1, -1
}

// indexRune returns the byte offsets [start, end) of the first rune in s
// that matches r under cmp, or -1, -1 when there is none.
func indexRune(s string, r rune, cmp Comparison) (int, int) {
	for i := 0; i < len(s); {
		sr, size := utf8.DecodeRuneInString(s[i:])
		if equalRune(sr, r, cmp) {
			return i, i + size
		}
		i += size
	}
	return -1, -1
}
