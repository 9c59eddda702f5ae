// Package push provides a speech input fed by an external recognizer.
// The UI (or a test) performs recognition itself and submits the text;
// the adapter only enforces the one-transcript-per-window contract.
package push

import (
	"context"
	"sync"

	"cognitive-screening-service/internal/speech"
)

// Input implements speech.Input with externally submitted transcripts.
type Input struct {
	mu        sync.Mutex
	listening bool
	cb        speech.Callback
}

// New creates a push input.
func New() *Input {
	return &Input{}
}

// Start opens a listening window. No-op when one is already open.
func (i *Input) Start(ctx context.Context, cb speech.Callback) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.listening {
		return nil
	}
	i.listening = true
	i.cb = cb
	return nil
}

// Stop closes the window without delivering anything.
func (i *Input) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listening = false
	i.cb = nil
}

// Listening reports whether a window is open.
func (i *Input) Listening() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.listening
}

// Submit delivers text into the open window. Returns false when no
// window is open; the text is dropped in that case. The window is
// closed before the callback runs, so the callback may immediately
// re-arm the input.
func (i *Input) Submit(text string) bool {
	i.mu.Lock()
	if !i.listening || i.cb == nil {
		i.mu.Unlock()
		return false
	}
	cb := i.cb
	i.listening = false
	i.cb = nil
	i.mu.Unlock()

	cb.OnTranscript(text)
	return true
}
