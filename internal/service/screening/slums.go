package screening

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/speech"
)

// Slums runs the interview-form instrument: a cursor over eleven
// questions with an accumulated score. Thread-safe.
type Slums struct {
	mu   sync.Mutex
	pack *locale.Pack
	out  speech.Output
	log  zerolog.Logger

	// ackDelay is the pause between the acknowledgment and the next
	// question.
	ackDelay time.Duration

	begun          bool
	cursor         int
	score          int
	answers        []string
	lastTranscript string
	turns          []Turn
	result         *Result

	// pending fires the delayed next-question speech; a skip or
	// completion cancels it.
	pending *time.Timer
}

// NewSlums creates an interview-form engine positioned at the first
// question.
func NewSlums(pack *locale.Pack, out speech.Output, ackDelay time.Duration, log zerolog.Logger) *Slums {
	return &Slums{
		pack:     pack,
		out:      out,
		ackDelay: ackDelay,
		log:      log,
	}
}

// Begin speaks the first question. Idempotent.
func (s *Slums) Begin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begun {
		return nil
	}
	s.begun = true
	s.log.Info().Int("question", s.cursor).Msg("Interview form started")
	return s.out.Speak(ctx, s.pack.Slums.Questions[s.cursor])
}

// HandleTranscript scores one answer for the question at the cursor
// and advances. Returns the finalized Turn, or nil when the run is
// already complete or the transcript is empty (the engine keeps
// waiting for a real answer; skipping is the explicit way to record
// an empty one).
func (s *Slums) HandleTranscript(ctx context.Context, text string) (*Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return nil, nil
	}
	answer := strings.TrimSpace(text)
	if answer == "" {
		return nil, nil
	}
	s.cancelPending()

	points := ScoreAnswer(s.pack, s.cursor, answer)
	s.score += points
	s.answers = append(s.answers, answer)
	s.lastTranscript = answer
	turn := s.record(Turn{PromptIndex: s.cursor, Transcript: answer, Points: points})
	s.log.Info().
		Int("question", s.cursor).
		Int("points", points).
		Int("runningScore", s.score).
		Msg("Interview answer scored")
	s.cursor++

	if s.cursor >= slumsQuestionCount {
		return turn, s.complete(ctx)
	}

	if err := s.out.Speak(ctx, s.pack.RandomAck()); err != nil {
		return turn, err
	}
	return turn, s.speakNextAfterDelay(ctx)
}

// speakNextAfterDelay speaks the question at the cursor, pausing for
// the configured delay first. The pause runs on a timer so the engine
// mutex is not held across it; the timer callback re-checks the cursor
// and drops the speech when a skip or completion got there first.
// Caller holds the engine mutex.
func (s *Slums) speakNextAfterDelay(ctx context.Context) error {
	if s.ackDelay <= 0 {
		return s.out.Speak(ctx, s.pack.Slums.Questions[s.cursor])
	}

	next := s.cursor
	s.pending = time.AfterFunc(s.ackDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.result != nil || s.cursor != next {
			return
		}
		if err := s.out.Speak(context.Background(), s.pack.Slums.Questions[next]); err != nil {
			s.log.Error().Err(err).Int("question", next).Msg("Failed to speak next question")
		}
	})
	return nil
}

// cancelPending stops a scheduled next-question speech. Caller holds
// the engine mutex.
func (s *Slums) cancelPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// Skip records an empty answer for the current question and advances,
// bypassing the acknowledgment. No-op when complete.
func (s *Slums) Skip(ctx context.Context) (*Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil {
		return nil, nil
	}
	s.cancelPending()

	s.answers = append(s.answers, "")
	turn := s.record(Turn{PromptIndex: s.cursor, Skipped: true})
	s.log.Info().Int("question", s.cursor).Msg("Interview question skipped")
	s.cursor++

	if s.cursor >= slumsQuestionCount {
		return turn, s.complete(ctx)
	}
	return turn, s.out.Speak(ctx, s.pack.Slums.Questions[s.cursor])
}

// complete speaks the closing remark and freezes the result record.
func (s *Slums) complete(ctx context.Context) error {
	s.cancelPending()
	s.result = &Result{
		Instrument: InstrumentSlums,
		Score:      s.score,
		MaxScore:   slumsDeclaredMax,
	}
	s.log.Info().
		Int("score", s.score).
		Int("maxScore", slumsDeclaredMax).
		Msg("Interview form complete")
	return s.out.Speak(ctx, s.pack.Slums.Closing)
}

func (s *Slums) record(t Turn) *Turn {
	s.turns = append(s.turns, t)
	return &t
}

// Cursor returns the current question index.
func (s *Slums) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Done reports whether the run is complete.
func (s *Slums) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result != nil
}

// Result returns the result record of a completed run.
func (s *Slums) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Score returns the running score.
func (s *Slums) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Answers returns a copy of the recorded answers so far.
func (s *Slums) Answers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

// Turns returns a copy of the finalized turns so far.
func (s *Slums) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Snapshot returns the in-progress turn data for presentation.
func (s *Slums) Snapshot() TurnSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prompt string
	if s.cursor < slumsQuestionCount {
		prompt = s.pack.Slums.Questions[s.cursor]
	}
	return TurnSnapshot{
		Prompt:         prompt,
		LastTranscript: s.lastTranscript,
		PromptIndex:    s.cursor,
		PromptCount:    slumsQuestionCount,
		RunningScore:   s.score,
	}
}
