package screening

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"cognitive-screening-service/internal/events"
	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/models"
	"cognitive-screening-service/internal/observability/logging"
	"cognitive-screening-service/internal/observability/metrics"
	"cognitive-screening-service/internal/speech"
)

// Phase is a lifecycle state of a screening session.
type Phase int

const (
	// PhaseIntro - created, not yet started.
	PhaseIntro Phase = iota
	// PhaseMiniCog - the short form is running.
	PhaseMiniCog
	// PhaseSlums - the interview form is running.
	PhaseSlums
	// PhaseResult - terminal, the final result record is available.
	PhaseResult
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseMiniCog:
		return "mini-cog"
	case PhaseSlums:
		return "slums"
	case PhaseResult:
		return "result"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(p))
	}
}

var (
	// ErrSessionNotStarted is returned by operations that require a
	// running instrument before Start has been called.
	ErrSessionNotStarted = errors.New("session has not been started")

	// ErrSessionAlreadyStarted is returned by Start on a session that
	// has left the intro phase.
	ErrSessionAlreadyStarted = errors.New("session has already been started")

	// ErrSessionNotFinished is returned by Reset before the session has
	// reached the result phase.
	ErrSessionNotFinished = errors.New("session has not reached the result phase")
)

// TurnSnapshot is the in-progress turn data of a running instrument,
// for presentation.
type TurnSnapshot struct {
	Prompt         string `json:"prompt"`
	LastTranscript string `json:"lastTranscript"`
	PromptIndex    int    `json:"promptIndex"`
	PromptCount    int    `json:"promptCount"`
	RunningScore   int    `json:"runningScore"`
}

// Snapshot is a point-in-time view of a session, for presentation.
type Snapshot struct {
	ID        string `json:"id"`
	Locale    string `json:"locale"`
	Tone      string `json:"tone"`
	Phase     string `json:"phase"`
	Listening bool   `json:"listening"`

	Turn           *TurnSnapshot   `json:"turn,omitempty"`
	Result         *Result         `json:"result,omitempty"`
	Interpretation *Interpretation `json:"interpretation,omitempty"`
}

// SessionConfig configures a Session.
type SessionConfig struct {
	ID        string
	Pack      *locale.Pack
	Output    speech.Output
	Input     speech.Input
	Publisher *events.Publisher

	// AckDelay is the pause between an interview acknowledgment and
	// the next question.
	AckDelay time.Duration
}

// Session drives one screening conversation: welcome, the short form,
// the optional interview form, and the final interpretation. It is the
// single owner of its engines; every external entry point (transcript
// delivery, manual advance, reset) serializes on the session mutex, so
// the conversation behaves as one logical thread.
//
// Session implements speech.Callback and re-arms its input after every
// turn, keeping exactly one listening window open per prompt.
type Session struct {
	mu      sync.Mutex
	id      string
	pack    *locale.Pack
	out     speech.Output
	in      speech.Input
	pub     *events.Publisher
	metrics *metrics.Metrics
	log     zerolog.Logger

	ackDelay time.Duration

	phase        Phase
	minicog      *MiniCog
	slums        *Slums
	runningTotal int

	finalResult *Result
	interp      *Interpretation

	// inputUnsupported latches once Start on the input port returns
	// ErrUnsupported; the session then runs on manual advances only.
	inputUnsupported bool
	inputNoticeGiven bool
}

// NewSession creates a session in the intro phase.
func NewSession(cfg SessionConfig) *Session {
	m := metrics.DefaultMetrics
	return &Session{
		id:       cfg.ID,
		pack:     cfg.Pack,
		out:      &meteredOutput{inner: cfg.Output, metrics: m},
		in:       cfg.Input,
		pub:      cfg.Publisher,
		metrics:  m,
		log:      logging.WithSession(cfg.ID, string(cfg.Pack.Code)),
		ackDelay: cfg.AckDelay,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Pack returns the session's locale pack.
func (s *Session) Pack() *locale.Pack {
	return s.pack
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Start speaks the welcome, begins the short form and opens the first
// listening window. Returns ErrSessionAlreadyStarted after the first
// call.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIntro {
		return ErrSessionAlreadyStarted
	}
	s.metrics.RecordSessionStart()
	s.log.Info().Msg("Session started")

	if err := s.out.Speak(ctx, s.pack.Welcome); err != nil {
		return err
	}
	return s.beginMiniCog(ctx)
}

func (s *Session) beginMiniCog(ctx context.Context) error {
	s.minicog = NewMiniCog(s.pack, s.out, s.log)
	s.phase = PhaseMiniCog
	s.runningTotal = 0
	s.metrics.InstrumentRunsStarted.WithLabelValues(string(InstrumentMiniCog)).Inc()
	if err := s.minicog.Begin(ctx); err != nil {
		return err
	}
	return s.listen(ctx)
}

// OnTranscript routes one transcript to the running instrument. Called
// by the input port with the listening window already closed, so the
// session can re-arm listening before returning.
func (s *Session) OnTranscript(text string) {
	s.metrics.TranscriptsReceived.Inc()
	ctx := context.Background()

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseMiniCog:
		turn, err := s.minicog.HandleTranscript(ctx, text)
		if err == nil {
			err = s.afterMiniCog(ctx, turn)
		}
		s.recover(ctx, err)

	case PhaseSlums:
		turn, err := s.slums.HandleTranscript(ctx, text)
		if err == nil {
			err = s.afterSlums(ctx, turn)
		}
		s.recover(ctx, err)

	default:
		s.metrics.TranscriptsDiscarded.Inc()
		s.log.Debug().
			Str("phase", s.phase.String()).
			Msg("Transcript discarded outside a running phase")
	}
}

// OnError re-arms listening after a failed recognition window.
func (s *Session) OnError(err error) {
	s.log.Warn().Err(err).Msg("Recognition failed, reopening window")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseMiniCog || s.phase == PhaseSlums {
		s.recover(context.Background(), s.listen(context.Background()))
	}
}

// Advance forces the running instrument past its current prompt with
// an empty response. In the result phase it is a no-op.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseMiniCog:
		s.metrics.ManualAdvances.WithLabelValues(string(InstrumentMiniCog)).Inc()
		turn, err := s.minicog.Advance(ctx)
		if err != nil {
			return err
		}
		return s.afterMiniCog(ctx, turn)

	case PhaseSlums:
		s.metrics.ManualAdvances.WithLabelValues(string(InstrumentSlums)).Inc()
		turn, err := s.slums.Skip(ctx)
		if err != nil {
			return err
		}
		return s.afterSlums(ctx, turn)

	case PhaseResult:
		return nil

	default:
		return ErrSessionNotStarted
	}
}

// Skip records an empty answer for the current prompt and moves on.
// Both instruments treat skip and manual advance identically.
func (s *Session) Skip(ctx context.Context) error {
	return s.Advance(ctx)
}

// Reset returns a finished session to the intro phase so a fresh run
// can be started. Only valid in the result phase.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResult {
		return ErrSessionNotFinished
	}
	s.in.Stop()
	s.minicog = nil
	s.slums = nil
	s.runningTotal = 0
	s.finalResult = nil
	s.interp = nil
	s.phase = PhaseIntro
	s.metrics.RecordReset()
	s.log.Info().Msg("Session reset")
	return nil
}

// afterMiniCog publishes the finalized turn, routes a completed short
// form (pass straight to results, or continue into the interview) and
// otherwise re-arms listening. Caller holds the session mutex.
func (s *Session) afterMiniCog(ctx context.Context, turn *Turn) error {
	if turn != nil {
		s.publishTurn(InstrumentMiniCog, turn)
	}

	res, ok := s.minicog.Result()
	if !ok {
		return s.listen(ctx)
	}
	s.metrics.InstrumentRunsCompleted.WithLabelValues(string(InstrumentMiniCog)).Inc()
	s.publishResult(res)

	if res.Total >= miniCogNormalThreshold {
		s.log.Info().Int("total", res.Total).Msg("Short form passed, skipping interview")
		if err := s.out.Speak(ctx, s.pack.PassGoodbye); err != nil {
			return err
		}
		s.finish(res)
		return nil
	}

	s.log.Info().Int("total", res.Total).Msg("Short form below threshold, continuing to interview")
	if err := s.out.Speak(ctx, s.pack.ContinueEncouragement); err != nil {
		return err
	}
	s.slums = NewSlums(s.pack, s.out, s.ackDelay, s.log)
	s.phase = PhaseSlums
	s.runningTotal = 0
	s.metrics.InstrumentRunsStarted.WithLabelValues(string(InstrumentSlums)).Inc()
	if err := s.slums.Begin(ctx); err != nil {
		return err
	}
	return s.listen(ctx)
}

// afterSlums publishes the finalized turn and either finishes the
// session or re-arms listening. Caller holds the session mutex.
func (s *Session) afterSlums(ctx context.Context, turn *Turn) error {
	if turn != nil {
		s.publishTurn(InstrumentSlums, turn)
	}

	res, ok := s.slums.Result()
	if !ok {
		return s.listen(ctx)
	}
	s.metrics.InstrumentRunsCompleted.WithLabelValues(string(InstrumentSlums)).Inc()
	s.publishResult(res)
	s.finish(res)
	return nil
}

// finish freezes the final result and enters the result phase. The
// instrument has already spoken its closing remark. Caller holds the
// session mutex.
func (s *Session) finish(res Result) {
	interp := Interpret(res, s.pack)
	s.finalResult = &res
	s.interp = &interp
	s.phase = PhaseResult
	s.in.Stop()
	s.metrics.RecordSessionEnd()
	s.metrics.RecordTier(string(res.Instrument), interp.TierName)
	s.log.Info().
		Str("instrument", string(res.Instrument)).
		Str("tier", interp.TierName).
		Int("percentage", interp.Percentage).
		Msg("Session finished")
}

// listen opens the next listening window. When the input port is
// unavailable the session degrades to manual advances, surfacing the
// notice once. Caller holds the session mutex.
func (s *Session) listen(ctx context.Context) error {
	if s.inputUnsupported {
		return nil
	}
	err := s.in.Start(ctx, s)
	if errors.Is(err, speech.ErrUnsupported) {
		s.inputUnsupported = true
		s.log.Warn().Msg("Speech input unavailable, falling back to manual advance")
		if !s.inputNoticeGiven {
			s.inputNoticeGiven = true
			return s.out.Speak(ctx, s.pack.UnsupportedInputNotice)
		}
		return nil
	}
	if err == nil {
		s.metrics.ListenWindowsOpened.Inc()
	}
	return err
}

// recover logs a turn-handling failure and keeps the session alive by
// reopening the listening window. Caller holds the session mutex.
func (s *Session) recover(ctx context.Context, err error) {
	if err == nil {
		return
	}
	s.log.Error().Err(err).Msg("Turn handling failed")
	if s.phase == PhaseMiniCog || s.phase == PhaseSlums {
		if lerr := s.listen(ctx); lerr != nil {
			s.log.Error().Err(lerr).Msg("Failed to reopen listening window")
		}
	}
}

// publishTurn emits a scored-turn event. Publish failures are logged
// by the publisher and never fail the turn. Caller holds the session
// mutex.
func (s *Session) publishTurn(instrument Instrument, turn *Turn) {
	s.runningTotal += turn.Points
	s.metrics.RecordTurn(string(instrument), turn.Skipped)

	ev := models.TurnScored{
		EventType:    "screening.turn.scored",
		SessionID:    s.id,
		Locale:       string(s.pack.Code),
		Instrument:   string(instrument),
		PromptIndex:  turn.PromptIndex,
		Transcript:   turn.Transcript,
		Points:       turn.Points,
		Skipped:      turn.Skipped,
		RunningTotal: s.runningTotal,
		Timestamp:    time.Now().UnixMilli(),
	}
	if err := s.pub.PublishTurn(context.Background(), s.id, ev); err != nil {
		s.log.Warn().Err(err).Msg("Turn event publish failed")
	}
}

// publishResult emits a final result record for a completed instrument
// run. Caller holds the session mutex.
func (s *Session) publishResult(res Result) {
	interp := Interpret(res, s.pack)
	ev := models.ResultFinal{
		EventType:   "screening.result.final",
		SessionID:   s.id,
		Locale:      string(s.pack.Code),
		Instrument:  string(res.Instrument),
		RecallScore: res.RecallScore,
		ClockScore:  res.ClockScore,
		Total:       res.Total,
		Score:       res.Score,
		MaxScore:    res.MaxScore,
		Tier:        interp.TierName,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := s.pub.PublishResult(context.Background(), s.id, ev); err != nil {
		s.log.Warn().Err(err).Msg("Result event publish failed")
	}
}

// FinalResult returns the final result record of a finished session.
func (s *Session) FinalResult() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finalResult == nil {
		return Result{}, false
	}
	return *s.finalResult, true
}

// Interpretation returns the interpretation of a finished session.
func (s *Session) Interpretation() (Interpretation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interp == nil {
		return Interpretation{}, false
	}
	return *s.interp, true
}

// Snapshot returns a point-in-time view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		ID:        s.id,
		Locale:    string(s.pack.Code),
		Tone:      string(s.pack.Tone),
		Phase:     s.phase.String(),
		Listening: s.in.Listening(),
	}
	switch s.phase {
	case PhaseMiniCog:
		t := s.minicog.Snapshot()
		t.RunningScore = s.runningTotal
		snap.Turn = &t
	case PhaseSlums:
		t := s.slums.Snapshot()
		snap.Turn = &t
	case PhaseResult:
		snap.Result = s.finalResult
		snap.Interpretation = s.interp
	}
	return snap
}

// meteredOutput wraps the output port with speak counters. An
// unsupported output degrades to a silent session rather than an
// error.
type meteredOutput struct {
	inner   speech.Output
	metrics *metrics.Metrics
}

func (o *meteredOutput) Speak(ctx context.Context, text string) error {
	o.metrics.SpeakTotal.Inc()
	err := o.inner.Speak(ctx, text)
	if errors.Is(err, speech.ErrUnsupported) {
		return nil
	}
	if err != nil {
		o.metrics.SpeakErrors.Inc()
	}
	return err
}

func (o *meteredOutput) Speaking() bool {
	return o.inner.Speaking()
}
