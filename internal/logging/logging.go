// Package logging holds the application wide zerolog logger
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// L is the logger used throughout the application.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
	With().
	Timestamp().
	Caller().
	Logger()

// SetLogLevel changes the minimum level of L.
func SetLogLevel(level zerolog.Level) {
	L = L.Level(level)
}

// ParseLevel converts a config string into a level, falling back to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
