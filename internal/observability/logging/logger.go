// Package logging provides structured logging with zerolog.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return log.Logger
}

// WithComponent returns a logger with a component tag.
func WithComponent(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}

// WithSession returns a logger with session context.
func WithSession(sessionId string, locale string) zerolog.Logger {
	return log.With().
		Str("sessionId", sessionId).
		Str("locale", locale).
		Logger()
}

// WithInstrument returns a logger with instrument-run context.
func WithInstrument(sessionId, locale, instrument string) zerolog.Logger {
	return log.With().
		Str("sessionId", sessionId).
		Str("locale", locale).
		Str("instrument", instrument).
		Logger()
}
