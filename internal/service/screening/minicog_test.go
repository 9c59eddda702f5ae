package screening

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"cognitive-screening-service/internal/locale"
	"cognitive-screening-service/internal/speech/mock"
)

func newTestMiniCog(t *testing.T) (*MiniCog, *mock.Output) {
	t.Helper()
	pack, err := locale.Load(locale.Cantonese, locale.ToneFriendly)
	if err != nil {
		t.Fatalf("failed to load pack: %v", err)
	}
	out := mock.NewOutput()
	return NewMiniCog(pack, out, zerolog.Nop()), out
}

func spoke(spoken []string, text string) bool {
	for _, s := range spoken {
		if s == text {
			return true
		}
	}
	return false
}

func TestMiniCog_PerfectRun(t *testing.T) {
	m, out := newTestMiniCog(t)
	ctx := context.Background()

	if err := m.Begin(ctx); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if m.Step() != StepRepetition {
		t.Fatalf("expected awaiting-repetition, got %s", m.Step())
	}

	turn, err := m.HandleTranscript(ctx, "蘋果 筆 鞋")
	if err != nil {
		t.Fatalf("repetition failed: %v", err)
	}
	if turn == nil || turn.PromptIndex != 0 {
		t.Fatalf("expected finalized turn 0, got %+v", turn)
	}
	if m.Step() != StepDrawing {
		t.Fatalf("expected awaiting-drawing-confirmation, got %s", m.Step())
	}

	turn, err = m.HandleTranscript(ctx, "完成")
	if err != nil {
		t.Fatalf("drawing confirmation failed: %v", err)
	}
	if turn == nil || turn.Points != 2 {
		t.Fatalf("expected clock turn worth 2, got %+v", turn)
	}

	turn, err = m.HandleTranscript(ctx, "蘋果,筆,鞋")
	if err != nil {
		t.Fatalf("recall failed: %v", err)
	}
	if turn == nil || turn.Points != 3 {
		t.Fatalf("expected recall turn worth 3, got %+v", turn)
	}

	res, ok := m.Result()
	if !ok {
		t.Fatal("expected a result record")
	}
	if res.RecallScore != 3 || res.ClockScore != 2 || res.Total != 5 {
		t.Errorf("expected 3/2/5, got %d/%d/%d", res.RecallScore, res.ClockScore, res.Total)
	}
	if !m.Done() {
		t.Error("expected the run to be complete")
	}

	// All three instructions were spoken in order.
	spoken := out.Spoken()
	if !spoke(spoken, m.pack.MiniCog.WordsInstruction) ||
		!spoke(spoken, m.pack.MiniCog.ClockInstruction) ||
		!spoke(spoken, m.pack.MiniCog.RecallInstruction) {
		t.Errorf("missing instructions in spoken output: %v", spoken)
	}
}

func TestMiniCog_BeginIdempotent(t *testing.T) {
	m, out := newTestMiniCog(t)
	ctx := context.Background()

	if err := m.Begin(ctx); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := m.Begin(ctx); err != nil {
		t.Fatalf("second Begin failed: %v", err)
	}
	if len(out.Spoken()) != 1 {
		t.Errorf("expected instruction spoken once, got %v", out.Spoken())
	}
}

func TestMiniCog_UnmatchedConfirmationKeepsWaiting(t *testing.T) {
	m, _ := newTestMiniCog(t)
	ctx := context.Background()

	_ = m.Begin(ctx)
	if _, err := m.HandleTranscript(ctx, "蘋果 筆 鞋"); err != nil {
		t.Fatalf("repetition failed: %v", err)
	}

	turn, err := m.HandleTranscript(ctx, "仲未呢")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn != nil {
		t.Errorf("expected no finalized turn, got %+v", turn)
	}
	if m.Step() != StepDrawing {
		t.Errorf("expected to stay at awaiting-drawing-confirmation, got %s", m.Step())
	}
}

func TestMiniCog_EmptyTranscriptIgnored(t *testing.T) {
	m, _ := newTestMiniCog(t)
	ctx := context.Background()

	_ = m.Begin(ctx)
	turn, err := m.HandleTranscript(ctx, "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if turn != nil {
		t.Errorf("expected empty transcript to be ignored, got %+v", turn)
	}
	if m.Step() != StepRepetition {
		t.Errorf("expected to stay at awaiting-repetition, got %s", m.Step())
	}
}

func TestMiniCog_AdvanceThrough(t *testing.T) {
	m, _ := newTestMiniCog(t)
	ctx := context.Background()

	_ = m.Begin(ctx)
	for i := 0; i < 3; i++ {
		turn, err := m.Advance(ctx)
		if err != nil {
			t.Fatalf("advance %d failed: %v", i, err)
		}
		if turn == nil || !turn.Skipped {
			t.Fatalf("advance %d: expected a skipped turn, got %+v", i, turn)
		}
	}

	res, ok := m.Result()
	if !ok {
		t.Fatal("expected a result record")
	}
	// A forced advance past the drawing still counts as a
	// confirmation, so the clock score is awarded.
	if res.ClockScore != 2 {
		t.Errorf("expected clock score 2 after a forced advance, got %d", res.ClockScore)
	}
	if res.RecallScore != 0 {
		t.Errorf("expected recall score 0 from an empty response, got %d", res.RecallScore)
	}
	if res.Total != 2 {
		t.Errorf("expected total 2 from an all-advance run, got %d", res.Total)
	}
}

// At the recall step any transcript completes the run, even an empty
// one: it scores 0 and yields the result instead of being ignored.
func TestMiniCog_EmptyRecallCompletes(t *testing.T) {
	m, _ := newTestMiniCog(t)
	ctx := context.Background()

	_ = m.Begin(ctx)
	if _, err := m.HandleTranscript(ctx, "蘋果 筆 鞋"); err != nil {
		t.Fatalf("repetition failed: %v", err)
	}
	if _, err := m.HandleTranscript(ctx, "完成"); err != nil {
		t.Fatalf("drawing confirmation failed: %v", err)
	}

	turn, err := m.HandleTranscript(ctx, "   ")
	if err != nil {
		t.Fatalf("empty recall failed: %v", err)
	}
	if turn == nil || turn.Points != 0 {
		t.Fatalf("expected a finalized recall turn worth 0, got %+v", turn)
	}
	if !m.Done() {
		t.Fatal("expected the run to be complete")
	}

	res, _ := m.Result()
	if res.RecallScore != 0 || res.ClockScore != 2 || res.Total != 2 {
		t.Errorf("expected 0/2/2, got %d/%d/%d", res.RecallScore, res.ClockScore, res.Total)
	}
}

func TestMiniCog_TerminalIdempotent(t *testing.T) {
	m, _ := newTestMiniCog(t)
	ctx := context.Background()

	_ = m.Begin(ctx)
	for i := 0; i < 3; i++ {
		if _, err := m.Advance(ctx); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}
	before, _ := m.Result()

	if turn, err := m.Advance(ctx); err != nil || turn != nil {
		t.Errorf("terminal advance: expected no-op, got %+v, %v", turn, err)
	}
	if turn, err := m.HandleTranscript(ctx, "蘋果"); err != nil || turn != nil {
		t.Errorf("terminal transcript: expected no-op, got %+v, %v", turn, err)
	}

	after, _ := m.Result()
	if before != after {
		t.Errorf("result changed after terminal operations: %+v vs %+v", before, after)
	}
}

func TestScoreRecall(t *testing.T) {
	targets := []string{"蘋果", "筆", "鞋"}

	tests := []struct {
		name       string
		transcript string
		want       int
	}{
		{"all three", "蘋果 筆 鞋", 3},
		{"two", "蘋果同鞋", 2},
		{"repeated target counts once", "蘋果 蘋果 蘋果", 1},
		{"embedded in longer phrase", "我記得係蘋果同埋一支筆", 2},
		{"none", "唔記得", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreRecall(tokenize(tt.transcript), targets)
			if got != tt.want {
				t.Errorf("scoreRecall(%q) = %d, want %d", tt.transcript, got, tt.want)
			}
		})
	}
}
