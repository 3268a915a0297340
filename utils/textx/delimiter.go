// File: delimiter.go
// Title: Delimiter-Relative Extraction
// Description: Text before or after the first occurrence of a delimiter,
//              either a string or a single rune. Both forms share one search
//              so SubstringAfterRune(s, r) == SubstringAfterValue(s, string(r))
//              for every valid rune.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package textx

// SubstringAfterValue returns the text following the first occurrence of
// find in source. If find is null, empty or absent, source is returned
// unchanged. A null or empty source yields "".
func SubstringAfterValue(source, find *string, cmp Comparison) string {
	if IsNullOrEmpty(source) {
		return ""
	}
	if IsNullOrEmpty(find) {
		return *source
	}
	_, end := indexOf(*source, *find, cmp)
	if end < 0 {
		return *source
	}
	return (*source)[end:]
}

// SubstringAfterRune is SubstringAfterValue for a single-rune delimiter.
// Every rune value, including NUL, is searched for literally.
func SubstringAfterRune(source *string, find rune, cmp Comparison) string {
	if IsNullOrEmpty(source) {
		return ""
	}
	_, end := indexRune(*source, find, cmp)
	if end < 0 {
		return *source
	}
	return (*source)[end:]
}

// SubstringBeforeValue returns the text preceding the first occurrence of
// find in source. If find is null, empty or absent, source is returned
// unchanged. A null or empty source yields "".
func SubstringBeforeValue(source, find *string, cmp Comparison) string {
	if IsNullOrEmpty(source) {
		return ""
	}
	if IsNullOrEmpty(find) {
		return *source
	}
	start, _ := indexOf(*source, *find, cmp)
	if start < 0 {
		return *source
	}
	return (*source)[:start]
}

// SubstringBeforeRune is SubstringBeforeValue for a single-rune delimiter.
func SubstringBeforeRune(source *string, find rune, cmp Comparison) string {
	if IsNullOrEmpty(source) {
		return ""
	}
	start, _ := indexRune(*source, find, cmp)
	if start < 0 {
		return *source
	}
	return (*source)[:start]
}
