// File: base64.go
// Title: Base64 Shape Check
// Description: Structural validation of standard padded base64 text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package textx

import "strings"

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64Chars [256]bool

func init() {
	for i := 0; i < len(base64Alphabet); i++ {
		base64Chars[base64Alphabet[i]] = true
	}
}

// IsBase64 reports whether source, after trimming surrounding white space, is
// well-formed standard base64: a non-zero multiple of four characters from
// A-Z a-z 0-9 + / with at most two '=' and only at the end. The content is
// not decoded.
func IsBase64(source *string) bool {
	if source == nil {
		return false
	}
	s := strings.TrimSpace(*source)
	if s == "" || len(s)%4 != 0 {
		return false
	}

	body := strings.TrimRight(s, "=")
	if len(s)-len(body) > 2 {
		return false
	}
	for i := 0; i < len(body); i++ {
		if !base64Chars[body[i]] {
			return false
		}
	}
	return true
}
