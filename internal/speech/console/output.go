// Package console provides a speech output that writes utterances to a
// terminal, for running sessions without a synthesizer.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Output implements speech.Output by printing each utterance.
type Output struct {
	mu       sync.Mutex
	w        io.Writer
	speaking bool
}

// NewOutput creates a console output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Speak prints the utterance and completes immediately.
func (o *Output) Speak(ctx context.Context, text string) error {
	o.mu.Lock()
	o.speaking = true
	_, err := fmt.Fprintf(o.w, "[語音] %s\n", text)
	o.speaking = false
	o.mu.Unlock()
	return err
}

// Speaking reports whether a Speak call is in flight.
func (o *Output) Speaking() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.speaking
}
