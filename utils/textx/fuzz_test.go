// File: fuzz_test.go
// Title: Fuzz Tests for textx
// Description: Invariants that must hold for arbitrary input: results are
//              always slices of the source and never panic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial fuzz targets

package textx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzSubstringOrEmptyLen(f *testing.F) {
	f.Add("Some text to create a test", 6, 5)
	f.Add("grüße", 2, 10)
	f.Add("", 0, 0)

	f.Fuzz(func(t *testing.T, s string, start, length int) {
		got := SubstringOrEmptyLen(&s, start, length)
		if !strings.Contains(s, got) {
			t.Fatalf("result %q is not part of %q", got, s)
		}
		if n := utf8.RuneCountInString(got); length > 0 && n > length {
			t.Fatalf("result has %d runes, more than length %d", n, length)
		}
	})
}

func FuzzDelimiters(f *testing.F) {
	f.Add("some string value to find from", "VALUE")
	f.Add("ÄäÖö", "ö")
	f.Add("café", "é")
	f.Add("日本語", "本")

	f.Fuzz(func(t *testing.T, s, find string) {
		if find != "" && utf8.ValidString(s) && utf8.ValidString(find) && strings.Contains(s, find) {
			for _, cmp := range []Comparison{IgnoreCase, Ordinal} {
				if !HasValue(&s, &find, cmp) {
					t.Fatalf("HasValue(%q, %q, %v) = false for a literal substring", s, find, cmp)
				}
			}
		}

		for _, cmp := range []Comparison{IgnoreCase, Ordinal} {
			after := SubstringAfterValue(&s, &find, cmp)
			before := SubstringBeforeValue(&s, &find, cmp)
			if !strings.HasSuffix(s, after) || !strings.HasPrefix(s, before) {
				t.Fatalf("before %q / after %q do not frame %q", before, after, s)
			}
			if HasValue(&s, &find, cmp) && len(before)+len(after) > len(s) {
				t.Fatalf("before and after overlap for %q in %q", find, s)
			}
		}
	})
}
