// Package events provides event publishing functionality.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"cognitive-screening-service/internal/observability/metrics"
)

// Publisher publishes screening events to separate Kafka topics.
// Disabled (the default) means log-only: the service stays entirely
// in-memory and no broker connection is made.
type Publisher struct {
	writerTurns   *kafka.Writer
	writerResults *kafka.Writer
	principal     string
	topicTurns    string
	topicResults  string
	enabled       bool
	metrics       *metrics.Metrics
}

// Config holds Kafka publisher configuration.
type Config struct {
	Brokers      []string
	TopicTurns   string
	TopicResults string
	Principal    string
	Enabled      bool
}

// New creates a publisher with separate topics for scored turns and
// final result records.
func New(cfg *Config) *Publisher {
	m := metrics.DefaultMetrics

	if cfg == nil {
		log.Info().Msg("Kafka disabled (nil config), using log-only mode")
		return &Publisher{
			enabled: false,
			metrics: m,
		}
	}

	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, using log-only mode")
		return &Publisher{
			principal:    cfg.Principal,
			topicTurns:   cfg.TopicTurns,
			topicResults: cfg.TopicResults,
			enabled:      false,
			metrics:      m,
		}
	}

	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}

	transport := &kafka.Transport{
		Dial: dialer.DialFunc,
	}

	writerTurns := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicTurns,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	writerResults := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.TopicResults,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
		Transport:    transport,
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("topicTurns", cfg.TopicTurns).
		Str("topicResults", cfg.TopicResults).
		Str("principal", cfg.Principal).
		Msg("Kafka publisher initialized")

	return &Publisher{
		writerTurns:   writerTurns,
		writerResults: writerResults,
		principal:     cfg.Principal,
		topicTurns:    cfg.TopicTurns,
		topicResults:  cfg.TopicResults,
		enabled:       true,
		metrics:       m,
	}
}

// PublishTurn publishes a scored-turn event keyed by session ID.
func (p *Publisher) PublishTurn(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerTurns, p.topicTurns, "turn", key, event)
}

// PublishResult publishes a final result record keyed by session ID.
func (p *Publisher) PublishResult(ctx context.Context, key string, event any) error {
	return p.publish(ctx, p.writerResults, p.topicResults, "result", key, event)
}

// publish is the internal method that writes to a specific Kafka writer.
func (p *Publisher) publish(ctx context.Context, writer *kafka.Writer, topic, eventType, key string, event any) error {
	start := time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to marshal event")
		return err
	}

	log.Debug().
		Str("principal", p.principal).
		Str("topic", topic).
		Str("key", key).
		RawJSON("payload", payload).
		Msg("Publishing event")

	// If Kafka is disabled, just log
	if !p.enabled || writer == nil {
		p.metrics.RecordEventPublish(topic, eventType, nil, time.Since(start).Seconds())
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "eventType", Value: []byte(topic)},
			{Key: "principal", Value: []byte(p.principal)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("topic", topic).
			Str("key", key).
			Msg("Failed to write to Kafka")
		p.metrics.RecordEventPublish(topic, eventType, err, time.Since(start).Seconds())
		return err
	}

	p.metrics.RecordEventPublish(topic, eventType, nil, time.Since(start).Seconds())
	return nil
}

// Close closes both Kafka writers.
func (p *Publisher) Close() error {
	var err error
	if p.writerTurns != nil {
		if e := p.writerTurns.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing turns writer")
			err = e
		}
	}
	if p.writerResults != nil {
		if e := p.writerResults.Close(); e != nil {
			log.Error().Err(e).Msg("Error closing results writer")
			err = e
		}
	}
	return err
}
