// Package speech defines the ports for speech output and input. The
// assessment engines depend only on these interfaces, so a session can
// run against cloud providers, a terminal, or scripted fakes.
package speech

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by Start or Speak when the underlying
// capability is unavailable in this runtime. Callers degrade to the
// manual-advance flow instead of failing the session.
var ErrUnsupported = errors.New("speech capability unsupported")

// Output renders text to audio for the session locale.
type Output interface {
	// Speak renders text and blocks until playback completes. It must
	// settle even when the capability is unavailable (no-op, nil error
	// or ErrUnsupported), never hanging the caller.
	Speak(ctx context.Context, text string) error

	// Speaking reports whether a Speak call is currently active.
	Speaking() bool
}

// Callback receives results from an Input listening window.
type Callback interface {
	// OnTranscript is called with the single transcript produced by the
	// current listening window. The window is closed before delivery.
	OnTranscript(text string)

	// OnError is called when recognition fails. The window is
	// abandoned without a transcript.
	OnError(err error)
}

// Input captures one transcript per listening window.
type Input interface {
	// Start opens a listening window. At most one transcript is
	// delivered to cb per window, and any transcript from a previous
	// window is discarded. Starting while already listening is a no-op.
	// Returns ErrUnsupported when recognition is unavailable.
	Start(ctx context.Context, cb Callback) error

	// Stop closes the current window without delivering a transcript.
	Stop()

	// Listening reports whether a window is open.
	Listening() bool
}

// AudioSink is implemented by inputs that transcribe caller-supplied
// audio rather than capturing it themselves.
type AudioSink interface {
	SendAudio(ctx context.Context, audio []byte) error
}
