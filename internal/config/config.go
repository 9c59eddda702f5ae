// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ServiceConfig holds process-level settings.
type ServiceConfig struct {
	Principal   string
	HTTPPort    string
	MetricsPort string
}

// SpeechConfig selects the speech port implementations.
type SpeechConfig struct {
	// InputProvider is one of: push, mock, google, none.
	InputProvider string
	// OutputProvider is one of: console, none.
	OutputProvider string
	// SampleRateHz applies to audio-streaming providers.
	SampleRateHz int
}

// ScreeningConfig holds assessment defaults.
type ScreeningConfig struct {
	DefaultLocale string
	DefaultTone   string
	// AckDelay is the pause between an acknowledgment and the next
	// interview question.
	AckDelay time.Duration
}

// KafkaConfig holds event publishing settings. Disabled by default:
// the screening session is in-memory only unless explicitly wired to
// a broker.
type KafkaConfig struct {
	Enabled      bool
	Brokers      []string
	TopicTurns   string
	TopicResults string
	Principal    string
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel string
}

// Configuration is the full service configuration.
type Configuration struct {
	Service       ServiceConfig
	Speech        SpeechConfig
	Screening     ScreeningConfig
	Kafka         KafkaConfig
	Observability ObservabilityConfig
}

// Load reads configuration from the environment, falling back to
// defaults on missing or unparseable values.
func Load() *Configuration {
	principal := envOrDefault("SERVICE_PRINCIPAL", "svc-cognitive-screening")

	return &Configuration{
		Service: ServiceConfig{
			Principal:   principal,
			HTTPPort:    envOrDefault("HTTP_PORT", "8080"),
			MetricsPort: envOrDefault("METRICS_PORT", "9090"),
		},
		Speech: SpeechConfig{
			InputProvider:  envOrDefault("SPEECH_INPUT_PROVIDER", "push"),
			OutputProvider: envOrDefault("SPEECH_OUTPUT_PROVIDER", "none"),
			SampleRateHz:   envOrDefaultInt("SPEECH_SAMPLE_RATE_HZ", 16000),
		},
		Screening: ScreeningConfig{
			DefaultLocale: envOrDefault("DEFAULT_LOCALE", "zh-HK"),
			DefaultTone:   envOrDefault("DEFAULT_TONE", "friendly"),
			AckDelay:      envOrDefaultDuration("ACK_DELAY", 1500*time.Millisecond),
		},
		Kafka: KafkaConfig{
			Enabled:      envOrDefaultBool("KAFKA_ENABLED", false),
			Brokers:      envList("KAFKA_BROKERS"),
			TopicTurns:   envOrDefault("KAFKA_TOPIC_TURNS", "screening.turn.scored"),
			TopicResults: envOrDefault("KAFKA_TOPIC_RESULTS", "screening.result.final"),
			Principal:    envOrDefault("KAFKA_PRINCIPAL", principal),
		},
		Observability: ObservabilityConfig{
			LogLevel: envOrDefault("LOG_LEVEL", "info"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envOrDefaultBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return def
	}
	return b
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
