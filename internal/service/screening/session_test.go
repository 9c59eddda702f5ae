package screening

import (
	"context"
	"testing"

	"cognitive-screening-service/internal/events"
	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/speech"
	"cognitive-screening-service/internal/speech/mock"
	"cognitive-screening-service/internal/speech/push"
)

func newTestSession(t *testing.T, in speech.Input) (*Session, *mock.Output) {
	t.Helper()
	pack, err := locale.Load(locale.Cantonese, locale.ToneFriendly)
	if err != nil {
		t.Fatalf("failed to load pack: %v", err)
	}
	out := mock.NewOutput()
	s := NewSession(SessionConfig{
		ID:        "scr-test",
		Pack:      pack,
		Output:    out,
		Input:     in,
		Publisher: events.New(nil),
		AckDelay:  0,
	})
	return s, out
}

func submit(t *testing.T, in *push.Input, text string) {
	t.Helper()
	if !in.Submit(text) {
		t.Fatalf("no open listening window for %q", text)
	}
}

func TestSession_ShortFormPassRoutesToResult(t *testing.T) {
	in := push.New()
	s, out := newTestSession(t, in)
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if s.Phase() != PhaseMiniCog {
		t.Fatalf("expected mini-cog phase, got %s", s.Phase())
	}
	if !in.Listening() {
		t.Fatal("expected a listening window after start")
	}

	submit(t, in, "蘋果 筆 鞋")
	submit(t, in, "完成")
	submit(t, in, "蘋果,筆,鞋")

	if s.Phase() != PhaseResult {
		t.Fatalf("expected result phase, got %s", s.Phase())
	}
	res, ok := s.FinalResult()
	if !ok {
		t.Fatal("expected a final result")
	}
	if res.Instrument != InstrumentMiniCog || res.Total != 5 {
		t.Errorf("expected mini-cog total 5, got %+v", res)
	}

	interp, ok := s.Interpretation()
	if !ok || interp.Tier != TierNormal {
		t.Errorf("expected normal tier, got %+v", interp)
	}

	if !spoke(out.Spoken(), s.pack.PassGoodbye) {
		t.Error("expected the pass goodbye to be spoken")
	}
	if in.Listening() {
		t.Error("expected the listening window closed in the result phase")
	}
}

func TestSession_AllAdvanceRoutesToInterview(t *testing.T) {
	in := push.New()
	s, out := newTestSession(t, in)
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Advance(ctx); err != nil {
			t.Fatalf("advance %d failed: %v", i, err)
		}
	}

	if s.Phase() != PhaseSlums {
		t.Fatalf("expected slums phase after an all-advance short form, got %s", s.Phase())
	}
	if !spoke(out.Spoken(), s.pack.ContinueEncouragement) {
		t.Error("expected the continue encouragement to be spoken")
	}
	if !spoke(out.Spoken(), s.pack.Slums.Questions[0]) {
		t.Error("expected the first interview question to be spoken")
	}
}

func TestSession_FullInterviewRun(t *testing.T) {
	in := push.New()
	s, _ := newTestSession(t, in)
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := s.Advance(ctx); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}

	answers := []string{
		"今日係星期三",
		"我住在香港島西環",
		"香港",
		"好，記住了",
		"93，86，79",
		"蘋果、汽車、狗、球、床",
		"2 4 7",
		"釘",
		"6蚊",
		"今天是個晴朗的日子，我們去公園玩耍",
		"意思係天氣好適合出去玩",
	}
	for _, a := range answers {
		submit(t, in, a)
	}

	if s.Phase() != PhaseResult {
		t.Fatalf("expected result phase, got %s", s.Phase())
	}
	res, ok := s.FinalResult()
	if !ok {
		t.Fatal("expected a final result")
	}
	if res.Instrument != InstrumentSlums {
		t.Fatalf("expected interview result, got %s", res.Instrument)
	}
	if res.Score != SlumsAttainableMax() {
		t.Errorf("expected a perfect score of %d, got %d", SlumsAttainableMax(), res.Score)
	}

	// A perfect interview still reads as mild on the declared scale.
	interp, _ := s.Interpretation()
	if interp.Tier != TierMild {
		t.Errorf("expected mild tier, got %s", interp.Tier)
	}

	// The session no longer listens; late transcripts are dropped.
	if in.Submit("星期三") {
		t.Error("expected late transcripts to be dropped after the result phase")
	}
}

func TestSession_StartTwice(t *testing.T) {
	s, _ := newTestSession(t, push.New())
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Start(ctx); err != ErrSessionAlreadyStarted {
		t.Errorf("expected ErrSessionAlreadyStarted, got %v", err)
	}
}

func TestSession_AdvanceBeforeStart(t *testing.T) {
	s, _ := newTestSession(t, push.New())
	if err := s.Advance(context.Background()); err != ErrSessionNotStarted {
		t.Errorf("expected ErrSessionNotStarted, got %v", err)
	}
}

func TestSession_TerminalAdvanceNoOp(t *testing.T) {
	in := push.New()
	s, _ := newTestSession(t, in)
	ctx := context.Background()

	_ = s.Start(ctx)
	submit(t, in, "蘋果 筆 鞋")
	submit(t, in, "完成")
	submit(t, in, "蘋果 筆 鞋")

	before, _ := s.FinalResult()
	for i := 0; i < 3; i++ {
		if err := s.Advance(ctx); err != nil {
			t.Errorf("terminal advance %d: expected no-op, got %v", i, err)
		}
	}
	after, _ := s.FinalResult()
	if before != after {
		t.Errorf("result changed after terminal advances: %+v vs %+v", before, after)
	}
}

func TestSession_ResetFromResult(t *testing.T) {
	in := push.New()
	s, _ := newTestSession(t, in)
	ctx := context.Background()

	_ = s.Start(ctx)
	submit(t, in, "蘋果 筆 鞋")
	submit(t, in, "完成")
	submit(t, in, "蘋果 筆 鞋")
	if s.Phase() != PhaseResult {
		t.Fatalf("expected result phase, got %s", s.Phase())
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if s.Phase() != PhaseIntro {
		t.Fatalf("expected intro phase after reset, got %s", s.Phase())
	}
	if _, ok := s.FinalResult(); ok {
		t.Error("expected the result record to be discarded on reset")
	}

	// A fresh run is independent of the previous one.
	if err := s.Start(ctx); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if s.Phase() != PhaseMiniCog {
		t.Fatalf("expected mini-cog phase after restart, got %s", s.Phase())
	}
	submit(t, in, "唔記得")
	submit(t, in, "完成")
	submit(t, in, "唔記得")

	res, _ := s.FinalResult()
	if res.Instrument != InstrumentMiniCog || res.Total != 2 {
		// recall 0, clock 2: below threshold would route into the
		// interview, so the session is still running.
		if s.Phase() != PhaseSlums {
			t.Errorf("expected the fresh run to route into the interview, got %s", s.Phase())
		}
	}
}

func TestSession_ResetBeforeResultFails(t *testing.T) {
	s, _ := newTestSession(t, push.New())
	ctx := context.Background()

	if err := s.Reset(ctx); err != ErrSessionNotFinished {
		t.Errorf("reset from intro: expected ErrSessionNotFinished, got %v", err)
	}
	_ = s.Start(ctx)
	if err := s.Reset(ctx); err != ErrSessionNotFinished {
		t.Errorf("reset mid-run: expected ErrSessionNotFinished, got %v", err)
	}
}

func TestSession_UnsupportedInputDegradesToManual(t *testing.T) {
	s, out := newTestSession(t, mock.UnsupportedInput{})
	ctx := context.Background()

	if err := s.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	notices := 0
	for _, u := range out.Spoken() {
		if u == s.pack.UnsupportedInputNotice {
			notices++
		}
	}
	if notices != 1 {
		t.Fatalf("expected the unsupported-input notice exactly once, got %d", notices)
	}

	// The whole screening can still be driven manually.
	for s.Phase() != PhaseResult {
		if err := s.Advance(ctx); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}
	res, ok := s.FinalResult()
	if !ok || res.Instrument != InstrumentSlums {
		t.Errorf("expected a manually driven interview result, got %+v", res)
	}

	// The notice is not repeated on later windows.
	notices = 0
	for _, u := range out.Spoken() {
		if u == s.pack.UnsupportedInputNotice {
			notices++
		}
	}
	if notices != 1 {
		t.Errorf("expected the notice once across the run, got %d", notices)
	}
}

func TestSession_SnapshotProgress(t *testing.T) {
	in := push.New()
	s, _ := newTestSession(t, in)
	ctx := context.Background()

	snap := s.Snapshot()
	if snap.Phase != "intro" || snap.Turn != nil {
		t.Fatalf("expected an empty intro snapshot, got %+v", snap)
	}

	_ = s.Start(ctx)
	snap = s.Snapshot()
	if snap.Phase != "mini-cog" || snap.Turn == nil {
		t.Fatalf("expected a mini-cog snapshot with turn data, got %+v", snap)
	}
	if snap.Turn.Prompt != s.pack.MiniCog.WordsInstruction {
		t.Errorf("expected the words instruction as the current prompt, got %q", snap.Turn.Prompt)
	}
	if !snap.Listening {
		t.Error("expected the snapshot to report an open window")
	}

	submit(t, in, "蘋果 筆 鞋")
	submit(t, in, "完成")
	submit(t, in, "唔記得")

	snap = s.Snapshot()
	if snap.Phase != "slums" || snap.Turn == nil {
		t.Fatalf("expected a slums snapshot, got %+v", snap)
	}
	if snap.Turn.PromptIndex != 0 || snap.Turn.PromptCount != slumsQuestionCount {
		t.Errorf("expected question 0 of %d, got %d of %d",
			slumsQuestionCount, snap.Turn.PromptIndex, snap.Turn.PromptCount)
	}

	for i := 0; i < slumsQuestionCount; i++ {
		if err := s.Skip(ctx); err != nil {
			t.Fatalf("skip failed: %v", err)
		}
	}
	snap = s.Snapshot()
	if snap.Phase != "result" || snap.Result == nil || snap.Interpretation == nil {
		t.Fatalf("expected a result snapshot, got %+v", snap)
	}
}

func TestGenerator_Next(t *testing.T) {
	gen := NewGenerator()
	if id := gen.Next(); id != "scr-1" {
		t.Errorf("expected 'scr-1', got %s", id)
	}
	if id := gen.Next(); id != "scr-2" {
		t.Errorf("expected 'scr-2', got %s", id)
	}
}
