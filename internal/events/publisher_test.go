package events

import (
	"context"
	"testing"

	"cognitive-screening-service/internal/models"
)

func TestNew_DisabledMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"disabled", &Config{Enabled: false, Brokers: []string{"localhost:9092"}}},
		{"no brokers", &Config{Enabled: true, Brokers: []string{}}},
		{"empty brokers", &Config{Enabled: true, Brokers: nil}},
		{"nil config", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg)
			if p == nil {
				t.Fatal("expected non-nil publisher")
			}
			if p.enabled {
				t.Error("expected publisher to be disabled")
			}
			if p.writerTurns != nil {
				t.Error("expected nil turns writer when disabled")
			}
			if p.writerResults != nil {
				t.Error("expected nil results writer when disabled")
			}
		})
	}
}

func TestNew_ConfigValues(t *testing.T) {
	cfg := &Config{
		Enabled:      false,
		Brokers:      []string{"localhost:9092"},
		TopicTurns:   "screening.turn.scored",
		TopicResults: "screening.result.final",
		Principal:    "svc-screening",
	}

	p := New(cfg)

	if p.principal != "svc-screening" {
		t.Errorf("expected principal 'svc-screening', got %s", p.principal)
	}
	if p.topicTurns != "screening.turn.scored" {
		t.Errorf("expected turns topic 'screening.turn.scored', got %s", p.topicTurns)
	}
	if p.topicResults != "screening.result.final" {
		t.Errorf("expected results topic 'screening.result.final', got %s", p.topicResults)
	}
}

func TestPublisher_PublishTurn_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	ev := models.TurnScored{
		EventType:   "screening.turn.scored",
		SessionID:   "scr-1",
		Instrument:  "slums",
		PromptIndex: 4,
		Transcript:  "93 86 79",
		Points:      3,
	}

	// Disabled publisher logs and succeeds
	if err := p.PublishTurn(context.Background(), "scr-1", ev); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPublisher_PublishResult_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})

	ev := models.ResultFinal{
		EventType:  "screening.result.final",
		SessionID:  "scr-1",
		Instrument: "mini-cog",
		Total:      5,
		Tier:       "normal",
	}

	if err := p.PublishResult(context.Background(), "scr-1", ev); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPublisher_Close_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false})
	if err := p.Close(); err != nil {
		t.Errorf("unexpected error on close: %v", err)
	}
}
