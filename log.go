package keytrap

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("component", "keytrap").Logger()

// SetLogger replaces the package logger. Call it before New; the background
// goroutines read the logger without synchronization.
func SetLogger(l zerolog.Logger) {
	logger = l
}
