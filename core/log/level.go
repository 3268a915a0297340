// File: level.go
// Title: Log Levels
// Description: The five levels the textx command line logs at and the names
//              accepted for them in configuration files (general.log_level).
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-16 v0.2.0: Dropped fatal/audit levels, the CLI never exits from a log call
// - 2026-10-16 v0.3.0: Table driven names, parse failures are INVALID_CONFIG errors

package log

import (
	"strings"

	txerror "github.com/msto63/textx/core/error"
)

// module is the name log errors are reported under
const module = "log"

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// levelNames is indexed by Level. The first alias is the canonical
// configuration name.
var levelNames = [...]struct {
	short   string
	aliases []string
}{
	LevelTrace: {"TRC", []string{"trace", "trc"}},
	LevelDebug: {"DBG", []string{"debug", "dbg", "verbose"}},
	LevelInfo:  {"INF", []string{"info", "inf", "information"}},
	LevelWarn:  {"WRN", []string{"warn", "wrn", "warning"}},
	LevelError: {"ERR", []string{"error", "err"}},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelError
}

// String returns the configuration name of the level
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].aliases[0]
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// LevelNames returns the canonical names, lowest level first
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	for _, n := range levelNames {
		names = append(names, n.aliases[0])
	}
	return names
}

// ParseLevel parses a level name as written in general.log_level.
// Unknown names yield LevelInfo and an INVALID_CONFIG error.
func ParseLevel(level string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(level))
	for l, n := range levelNames {
		for _, alias := range n.aliases {
			if key == alias {
				return Level(l), nil
			}
		}
	}
	return LevelInfo, invalidSetting("parse_level", "general.log_level", level, strings.Join(LevelNames(), "|"))
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}

func invalidSetting(operation, field, input, expected string) *txerror.Error {
	return txerror.InvalidInput(module, operation, input, expected).
		WithCode(txerror.CodeInvalidConfig).
		WithDetail("field", field)
}
