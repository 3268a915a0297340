// File: benchmark_test.go
// Title: Performance Benchmarks for textx Functions
// Description: Benchmarks for the search and slicing paths, comparing the
//              ordinal fast path with case-folding search.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial benchmark implementation

package textx

import (
	"strings"
	"testing"
)

var benchSource = strings.Repeat("lorem ipsum dolor sit amet ", 40) + "Needle in the haystack"

func BenchmarkHasValueOrdinal(b *testing.B) {
	source, find := Of(benchSource), Of("Needle")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HasValue(source, find, Ordinal)
	}
}

func BenchmarkHasValueIgnoreCase(b *testing.B) {
	source, find := Of(benchSource), Of("NEEDLE")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HasValue(source, find, IgnoreCase)
	}
}

func BenchmarkSubstringAfterRune(b *testing.B) {
	source := Of(benchSource)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SubstringAfterRune(source, 'N', IgnoreCase)
	}
}

func BenchmarkSubstringOrEmptyLen(b *testing.B) {
	source := Of(benchSource)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SubstringOrEmptyLen(source, 500, 100)
	}
}

func BenchmarkIsBase64(b *testing.B) {
	source := Of(strings.Repeat("c29tZSB2YWx1ZQ==", 64))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBase64(source)
	}
}
