package screening

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/speech"
)

// MiniCogStep is a state of the short-form instrument.
type MiniCogStep int

const (
	// StepRepetition - waiting for the user to repeat the three words.
	StepRepetition MiniCogStep = iota
	// StepDrawing - waiting for the clock-drawing confirmation.
	StepDrawing
	// StepRecall - waiting for the recall answer.
	StepRecall
	// StepComplete - terminal, the result record is available.
	StepComplete
)

// String returns the string representation of the step.
func (s MiniCogStep) String() string {
	switch s {
	case StepRepetition:
		return "awaiting-repetition"
	case StepDrawing:
		return "awaiting-drawing-confirmation"
	case StepRecall:
		return "awaiting-recall"
	case StepComplete:
		return "complete"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// clockConfirmedScore is awarded whenever the drawing is confirmed.
// Automated grading of the drawn clock is out of scope, so
// confirmation always earns the full clock score.
const clockConfirmedScore = 2

// miniCogPromptCount is the number of turns in a short-form run.
const miniCogPromptCount = 3

// MiniCog runs the short-form instrument. Thread-safe; all transitions
// happen under the engine mutex, so at most one prompt is being spoken
// and one response processed at a time.
//
// State transitions:
//
//	awaiting-repetition → awaiting-drawing-confirmation → awaiting-recall → complete
//
// Every non-terminal state also accepts Advance, which forces the
// same transition with an empty response.
type MiniCog struct {
	mu   sync.Mutex
	pack *locale.Pack
	out  speech.Output
	log  zerolog.Logger

	step           MiniCogStep
	begun          bool
	wordsRepeated  []string
	clockConfirmed bool
	lastTranscript string
	turns          []Turn
	result         *Result
}

// NewMiniCog creates a short-form engine in the awaiting-repetition state.
func NewMiniCog(pack *locale.Pack, out speech.Output, log zerolog.Logger) *MiniCog {
	return &MiniCog{
		pack: pack,
		out:  out,
		log:  log,
		step: StepRepetition,
	}
}

// Begin speaks the word-repetition instruction. Idempotent: a second
// call does nothing.
func (m *MiniCog) Begin(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.begun {
		return nil
	}
	m.begun = true
	m.log.Info().Str("step", m.step.String()).Msg("Short form started")
	return m.out.Speak(ctx, m.pack.MiniCog.WordsInstruction)
}

// HandleTranscript processes one transcript for the current step.
// Returns the finalized Turn, or nil when the transcript did not
// finalize a turn (empty repetition, unmatched confirmation, or
// terminal state) and the engine keeps waiting. At the recall step any
// transcript, even an empty one, completes the run.
func (m *MiniCog) HandleTranscript(ctx context.Context, text string) (*Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	response := strings.TrimSpace(text)

	switch m.step {
	case StepRepetition:
		if response == "" {
			return nil, nil
		}
		m.wordsRepeated = tokenize(response)
		m.lastTranscript = response
		if err := m.out.Speak(ctx, m.pack.MiniCog.RepetitionAck); err != nil {
			return nil, err
		}
		return m.toDrawing(ctx, response, false)

	case StepDrawing:
		if !containsAny(response, m.pack.MiniCog.ClockConfirmTokens) {
			// Not a confirmation. Keep waiting for one.
			return nil, nil
		}
		m.lastTranscript = response
		if err := m.out.Speak(ctx, m.pack.MiniCog.ClockAck); err != nil {
			return nil, err
		}
		return m.toRecall(ctx, response, true, false)

	case StepRecall:
		m.lastTranscript = response
		if err := m.out.Speak(ctx, m.pack.MiniCog.RecallAck); err != nil {
			return nil, err
		}
		return m.complete(response, tokenize(response), false), nil

	default:
		// Terminal: late transcripts have no effect.
		return nil, nil
	}
}

// Advance forces the current step's transition with an empty
// response. In the terminal state it has no effect.
func (m *MiniCog) Advance(ctx context.Context) (*Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.step {
	case StepRepetition:
		return m.toDrawing(ctx, "", true)
	case StepDrawing:
		// A forced advance counts as a confirmation, so the clock
		// score is still awarded.
		return m.toRecall(ctx, "", true, true)
	case StepRecall:
		return m.complete("", nil, true), nil
	default:
		return nil, nil
	}
}

// toDrawing speaks the clock instruction and enters the drawing step.
func (m *MiniCog) toDrawing(ctx context.Context, transcript string, skipped bool) (*Turn, error) {
	if err := m.out.Speak(ctx, m.pack.MiniCog.ClockInstruction); err != nil {
		return nil, err
	}
	m.step = StepDrawing
	m.log.Info().Str("step", m.step.String()).Msg("Short form advanced")
	return m.record(Turn{PromptIndex: 0, Transcript: transcript, Skipped: skipped}), nil
}

// toRecall speaks the recall instruction and enters the recall step.
func (m *MiniCog) toRecall(ctx context.Context, transcript string, confirmed, skipped bool) (*Turn, error) {
	m.clockConfirmed = confirmed
	if err := m.out.Speak(ctx, m.pack.MiniCog.RecallInstruction); err != nil {
		return nil, err
	}
	m.step = StepRecall
	m.log.Info().Str("step", m.step.String()).Msg("Short form advanced")
	points := 0
	if confirmed {
		points = clockConfirmedScore
	}
	return m.record(Turn{PromptIndex: 1, Transcript: transcript, Points: points, Skipped: skipped}), nil
}

// complete scores the recall answer and enters the terminal state.
func (m *MiniCog) complete(transcript string, recallTokens []string, skipped bool) *Turn {
	recall := scoreRecall(recallTokens, m.pack.MiniCog.TargetWords)
	clock := 0
	if m.clockConfirmed {
		clock = clockConfirmedScore
	}
	m.step = StepComplete
	m.result = &Result{
		Instrument:  InstrumentMiniCog,
		RecallScore: recall,
		ClockScore:  clock,
		Total:       recall + clock,
	}
	m.log.Info().
		Int("recallScore", recall).
		Int("clockScore", clock).
		Int("total", m.result.Total).
		Msg("Short form complete")
	return m.record(Turn{PromptIndex: 2, Transcript: transcript, Points: recall, Skipped: skipped})
}

func (m *MiniCog) record(t Turn) *Turn {
	m.turns = append(m.turns, t)
	return &t
}

// Step returns the current state.
func (m *MiniCog) Step() MiniCogStep {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step
}

// Done reports whether the run is complete.
func (m *MiniCog) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.step == StepComplete
}

// Result returns the result record of a completed run.
func (m *MiniCog) Result() (Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// Turns returns a copy of the finalized turns so far.
func (m *MiniCog) Turns() []Turn {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Turn, len(m.turns))
	copy(out, m.turns)
	return out
}

// Snapshot returns the in-progress turn data for presentation.
func (m *MiniCog) Snapshot() TurnSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	var prompt string
	switch m.step {
	case StepRepetition:
		prompt = m.pack.MiniCog.WordsInstruction
	case StepDrawing:
		prompt = m.pack.MiniCog.ClockInstruction
	case StepRecall:
		prompt = m.pack.MiniCog.RecallInstruction
	}
	return TurnSnapshot{
		Prompt:         prompt,
		LastTranscript: m.lastTranscript,
		PromptIndex:    int(m.step),
		PromptCount:    miniCogPromptCount,
	}
}

// scoreRecall counts how many of the target words were recalled. A
// target counts once no matter how many tokens contain it, so the
// score never exceeds the number of targets.
func scoreRecall(tokens []string, targets []string) int {
	score := 0
	for _, target := range targets {
		for _, tok := range tokens {
			if strings.Contains(tok, target) {
				score++
				break
			}
		}
	}
	return score
}
