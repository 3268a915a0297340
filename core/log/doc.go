// Package log provides leveled, structured logging for the textx tools.
//
// Package: log
// Title: textx Structured Logging
// Description: A small structured logger with JSON and text output,
//              persistent context fields and a correlation id per run.
//              Loggers are immutable; With* returns a modified copy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Reduced to what the textx command line needs
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithName("textx").WithCorrelationID(runID)
//	logger.Debug("operation finished", log.Field("op", "after"))
package log
