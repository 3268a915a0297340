// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides null-safe and bounds-safe string
//              primitives: containment, case-insensitive equality, clamped
//              slicing, safe trimming, delimiter-relative extraction and
//              base64 shape checks.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-16 v0.3.0: Null-aware text primitives

// Package textx provides null-safe, bounds-safe string primitives.
//
// Overview
//
// Every function in this package is total: it never panics and never returns
// an error for null, empty or out-of-range input. Instead each boundary case
// degrades to a documented sentinel, usually "", false or the unmodified
// source. Strict variants that report bad input as an error are suffixed
// WithValidation.
//
// Null and empty
//
// A text value is a *string. A nil pointer is absence (null), a pointer to ""
// is empty. Most functions treat both as "no value"; SafeTrim keeps them apart
// so that callers doing null checks upstream still see the difference.
//
//	textx.SafeTrim(nil)              // nil
//	textx.SafeTrim(textx.Of("  "))   // pointer to ""
//
// Offsets and comparison
//
// Offsets passed to the slicing functions count runes, not bytes, so a
// multi-byte character is never split. Searches take a Comparison:
// IgnoreCase is the zero value and therefore the default, Ordinal requires
// exact rune equality. IgnoreCase uses simple Unicode case folding, one rune
// at a time, with no locale rules and no normalization.
//
// Usage Examples
//
//	s := textx.Of("some string value to find from")
//
//	textx.HasValue(s, textx.Of("STRING"), textx.IgnoreCase)   // true
//	textx.SubstringAfterValue(s, textx.Of("string"), textx.IgnoreCase)
//	// " value to find from"
//	textx.SubstringBeforeRune(s, 'v', textx.IgnoreCase)
//	// "some string "
//	textx.SubstringOrEmptyLen(textx.Of("Some text to create a test"), 10, 9)
//	// "to create"
//	textx.IsBase64(textx.Of("c29tZSB2YWx1ZQ=="))              // true
//
// Thread Safety
//
// All functions are pure and hold no package state; they may be called
// concurrently without coordination.
package textx
