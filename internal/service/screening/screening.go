// Package screening implements the assessment engines, the session
// controller and the result interpreter. The engines are small
// turn-taking state machines: each speaks a prompt through the output
// port, waits for one transcript per prompt, scores it and advances.
package screening

import (
	"strings"
	"unicode"
)

// Instrument identifies an assessment instrument.
type Instrument string

const (
	// InstrumentMiniCog is the short form: three-word recall plus
	// clock drawing, raw total 0-5.
	InstrumentMiniCog Instrument = "mini-cog"
	// InstrumentSlums is the interview form: eleven structured
	// questions, declared maximum 30.
	InstrumentSlums Instrument = "slums"
)

// Turn is one finalized prompt/response cycle.
type Turn struct {
	PromptIndex int
	Transcript  string
	Points      int
	Skipped     bool
}

// Result is the immutable record yielded by a completed instrument
// run. The short form fills the recall/clock/total fields; the
// interview form fills score/maxScore.
type Result struct {
	Instrument Instrument `json:"instrument"`

	RecallScore int `json:"recallScore"`
	ClockScore  int `json:"clockScore"`
	Total       int `json:"total"`

	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// tokenize splits a transcript on commas (either width) and
// whitespace, discarding empty tokens.
func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '，' || unicode.IsSpace(r)
	})
}

// containsAny reports whether s contains any of the tokens as a
// substring.
func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
