package http

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"cognitive-screening-service/internal/config"
	"cognitive-screening-service/internal/events"
	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/service/screening"
	"cognitive-screening-service/internal/speech"
	"cognitive-screening-service/internal/speech/console"
	"cognitive-screening-service/internal/speech/google"
	"cognitive-screening-service/internal/speech/mock"
	"cognitive-screening-service/internal/speech/push"
)

// entry pairs a session with the provider-specific handles the API
// needs: the push input for transcript submission and the audio sink
// for providers that transcribe caller-supplied audio.
type entry struct {
	session *screening.Session
	push    *push.Input
	sink    speech.AudioSink
}

// Registry owns the in-memory session table and builds the speech
// ports for new sessions from the configured providers.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
	gen     *screening.Generator
	cfg     *config.Configuration
	pub     *events.Publisher
}

// NewRegistry creates an empty session registry.
func NewRegistry(cfg *config.Configuration, pub *events.Publisher) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		gen:     screening.NewGenerator(),
		cfg:     cfg,
		pub:     pub,
	}
}

// Create builds a session for the given locale pack and registers it.
func (reg *Registry) Create(ctx context.Context, pack *locale.Pack) *entry {
	id := reg.gen.Next()

	e := &entry{}
	var in speech.Input
	switch reg.cfg.Speech.InputProvider {
	case "google":
		g, err := google.New(ctx, pack.Code, reg.cfg.Speech.SampleRateHz)
		if err != nil {
			log.Warn().Err(err).Msg("Google STT unavailable, session runs without speech input")
			in = mock.UnsupportedInput{}
		} else {
			in = g
			e.sink = g
		}
	case "none":
		in = mock.UnsupportedInput{}
	default:
		p := push.New()
		in = p
		e.push = p
	}

	var out speech.Output
	switch reg.cfg.Speech.OutputProvider {
	case "console":
		out = console.NewOutput(os.Stdout)
	default:
		out = mock.UnsupportedOutput{}
	}

	e.session = screening.NewSession(screening.SessionConfig{
		ID:        id,
		Pack:      pack,
		Output:    out,
		Input:     in,
		Publisher: reg.pub,
		AckDelay:  reg.cfg.Screening.AckDelay,
	})

	reg.mu.Lock()
	reg.entries[id] = e
	reg.mu.Unlock()

	log.Info().
		Str("sessionId", id).
		Str("locale", string(pack.Code)).
		Str("tone", string(pack.Tone)).
		Msg("Session created")
	return e
}

// Get returns the entry for a session ID.
func (reg *Registry) Get(id string) (*entry, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	e, ok := reg.entries[id]
	return e, ok
}

// Len returns the number of registered sessions.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.entries)
}
