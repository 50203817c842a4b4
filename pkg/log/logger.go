package log

import (
	"fmt"
	"strings"
)

// Logger is the logging surface used across the client and the server.
type Logger interface {
	Debug(...any)
	Debugf(string, ...any)
	Info(...any)
	Infof(string, ...any)
	Warn(...any)
	Warnf(string, ...any)
	Error(...any)
	Errorf(string, ...any)
	// Fatal logs and then calls os.Exit(1).
	Fatal(...any)
	Fatalf(string, ...any)
	// Panic logs and then panics.
	Panic(...any)
	Panicf(string, ...any)
	// With returns a Logger that adds the key/value pairs to every entry.
	With(keyValues ...any) Logger
	LogLevel() Level
}

type Level int

const (
	InfoLevel Level = iota
	WarningLevel
	ErrorLevel
	FatalLevel
	PanicLevel
	DebugLevel
	InvalidLevel
)

var levelNames = map[Level]string{
	InfoLevel:    "info",
	WarningLevel: "warn",
	ErrorLevel:   "error",
	FatalLevel:   "fatal",
	PanicLevel:   "panic",
	DebugLevel:   "debug",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "invalid"
}

// ParseLevel maps a level name from configuration to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "", "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarningLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "panic":
		return PanicLevel, nil
	default:
		return InvalidLevel, fmt.Errorf("unknown log level %q", s)
	}
}
