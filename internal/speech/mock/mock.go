// Package mock provides fake speech adapters for tests and for running
// the service without audio hardware or cloud credentials.
package mock

import (
	"context"
	"sync"
	"time"

	"cognitive-screening-service/internal/speech"
)

// Output implements speech.Output by recording spoken text. Speak
// completes instantly, modelling an always-available synthesizer.
type Output struct {
	mu     sync.Mutex
	spoken []string
}

// NewOutput creates a recording output.
func NewOutput() *Output {
	return &Output{}
}

// Speak records text and returns immediately.
func (o *Output) Speak(ctx context.Context, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spoken = append(o.spoken, text)
	return nil
}

// Speaking always reports false: mock playback is instantaneous.
func (o *Output) Speaking() bool { return false }

// Spoken returns a copy of everything spoken so far.
func (o *Output) Spoken() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.spoken))
	copy(out, o.spoken)
	return out
}

// Last returns the most recent utterance, or "".
func (o *Output) Last() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.spoken) == 0 {
		return ""
	}
	return o.spoken[len(o.spoken)-1]
}

// UnsupportedOutput implements speech.Output for runtimes without a
// synthesizer: every Speak settles immediately as a no-op.
type UnsupportedOutput struct{}

// Speak does nothing. The flow continues silently.
func (UnsupportedOutput) Speak(ctx context.Context, text string) error { return nil }

// Speaking always reports false.
func (UnsupportedOutput) Speaking() bool { return false }

// Input implements speech.Input with a scripted transcript per window.
// Each Start delivers the next script entry after a short delay,
// simulating recognition latency.
type Input struct {
	mu        sync.Mutex
	script    []string
	next      int
	listening bool
	delay     time.Duration
}

// NewInput creates a scripted input. A zero delay delivers
// transcripts synchronously from a goroutine.
func NewInput(script []string, delay time.Duration) *Input {
	return &Input{script: script, delay: delay}
}

// Start opens a window and schedules delivery of the next scripted
// transcript. When the script is exhausted the window stays open
// until Stop, modelling a user who never answers.
func (i *Input) Start(ctx context.Context, cb speech.Callback) error {
	i.mu.Lock()
	if i.listening {
		i.mu.Unlock()
		return nil
	}
	i.listening = true
	if i.next >= len(i.script) {
		i.mu.Unlock()
		return nil
	}
	text := i.script[i.next]
	i.next++
	delay := i.delay
	i.mu.Unlock()

	go func() {
		if delay > 0 {
			time.Sleep(delay)
		}
		i.mu.Lock()
		if !i.listening {
			i.mu.Unlock()
			return
		}
		i.listening = false
		i.mu.Unlock()
		cb.OnTranscript(text)
	}()
	return nil
}

// Stop abandons the current window.
func (i *Input) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.listening = false
}

// Listening reports whether a window is open.
func (i *Input) Listening() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.listening
}

// UnsupportedInput implements speech.Input for runtimes without a
// recognizer: Start always fails with speech.ErrUnsupported.
type UnsupportedInput struct{}

// Start reports the missing capability.
func (UnsupportedInput) Start(ctx context.Context, cb speech.Callback) error {
	return speech.ErrUnsupported
}

// Stop does nothing.
func (UnsupportedInput) Stop() {}

// Listening always reports false.
func (UnsupportedInput) Listening() bool { return false }
