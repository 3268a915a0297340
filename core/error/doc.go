// Package error provides structured errors for the textx packages.
//
// Package: error
// Title: textx Error Handling
// Description: Structured errors with codes, severities, details and stack
//              traces. The text functions in utils/textx never fail; errors
//              only come from the strict parse/validate helpers, configuration
//              loading and the command line.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Trimmed to the textx code set
//
// Usage:
//
//	import txerror "github.com/msto63/textx/core/error"
//
//	err := txerror.OutOfRange("textx", "substring", start, 0, n-1)
//	if txerror.HasCode(err, txerror.CodeOutOfRange) {
//		// reject the request
//	}
package error
