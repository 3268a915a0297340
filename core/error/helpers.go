// File: helpers.go
// Title: Standard Error Constructors
// Description: Constructors shared by all textx packages so that invalid
//              input, range and lookup failures carry the same codes and
//              detail keys everywhere.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-16 v0.2.0: Folded into the error package

package error

import "fmt"

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *Error {
	return New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":   module,
			"input":    input,
			"expected": expected,
		})
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *Error {
	return New(fmt.Sprintf("value out of range in %s.%s", module, operation)).
		WithCode(CodeOutOfRange).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module": module,
			"value":  value,
			"min":    min,
			"max":    max,
		})
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *Error {
	return New(fmt.Sprintf("item not found in %s.%s: %v", module, operation, identifier)).
		WithCode(CodeNotFound).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":     module,
			"identifier": identifier,
		})
}

// Module extracts the module name from a standardized error
func Module(err error) string {
	e, ok := err.(*Error)
	if !ok {
		return ""
	}
	if mod, ok := e.details["module"].(string); ok {
		return mod
	}
	return ""
}
