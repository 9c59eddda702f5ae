// Package locale holds the bilingual prompt packs for the screening
// instruments. A Pack is immutable session data: every prompt,
// acknowledgment, keyword set and interpretation string for one
// language variant and tone.
package locale

import (
	"fmt"
	"math/rand/v2"
)

// Code identifies a supported language variant.
type Code string

const (
	// Cantonese is the zh-HK (traditional script) variant.
	Cantonese Code = "zh-HK"
	// Mandarin is the zh-CN (simplified script) variant.
	Mandarin Code = "zh-CN"
)

// ParseCode validates a locale string.
func ParseCode(s string) (Code, error) {
	switch Code(s) {
	case Cantonese, Mandarin:
		return Code(s), nil
	default:
		return "", fmt.Errorf("unsupported locale %q: must be zh-HK or zh-CN", s)
	}
}

// Tone selects a prompt wording preset. The instruments behave
// identically under either tone; only the spoken text differs.
type Tone string

const (
	// ToneFriendly is the conversational, encouraging wording.
	ToneFriendly Tone = "friendly"
	// ToneClinical is the terse, instruction-only wording.
	ToneClinical Tone = "clinical"
)

// ParseTone validates a tone string. Empty defaults to friendly.
func ParseTone(s string) (Tone, error) {
	switch Tone(s) {
	case ToneFriendly, ToneClinical:
		return Tone(s), nil
	case "":
		return ToneFriendly, nil
	default:
		return "", fmt.Errorf("unsupported tone %q: must be friendly or clinical", s)
	}
}

// MiniCogTexts holds the short-form instrument strings.
type MiniCogTexts struct {
	WordsInstruction  string
	ClockInstruction  string
	RecallInstruction string
	RepetitionAck     string
	ClockAck          string
	RecallAck         string

	// TargetWords are the three recall targets.
	TargetWords []string
	// ClockConfirmTokens are the affirmative/completion tokens that
	// confirm the clock drawing.
	ClockConfirmTokens []string
}

// SlumsTexts holds the interview-form instrument strings.
type SlumsTexts struct {
	Questions [11]string
	// Acks is the pool of short acknowledgments spoken between questions.
	Acks    []string
	Closing string

	// RecallItems are the five item names for question 5, plus
	// alternate-script spellings recognised as fallbacks.
	RecallItems []string
	// NailTokens are the accepted answers for the hammer analogy.
	NailTokens []string
	// SunnyToken and ParkToken must both appear in the sentence
	// repetition answer.
	SunnyToken string
	ParkToken  string
}

// ResultTexts holds the interpretation strings.
type ResultTexts struct {
	NormalLabel string
	MildLabel   string
	SevereLabel string

	NormalRecommendation string
	MildRecommendation   string
	SevereRecommendation string

	Disclaimer string
}

// Pack is the complete string set for one locale and tone.
type Pack struct {
	Code Code
	Tone Tone

	Welcome string
	// PassGoodbye is spoken when the short form alone clears the
	// screening threshold and the session routes straight to results.
	PassGoodbye string
	// ContinueEncouragement is spoken before the interview form starts.
	ContinueEncouragement string

	// UnsupportedInputNotice is surfaced once when the speech input
	// capability is unavailable.
	UnsupportedInputNotice string

	MiniCog MiniCogTexts
	Slums   SlumsTexts
	Results ResultTexts
}

// RandomAck picks one acknowledgment from the interview pool.
func (p *Pack) RandomAck() string {
	if len(p.Slums.Acks) == 0 {
		return ""
	}
	return p.Slums.Acks[rand.IntN(len(p.Slums.Acks))]
}

// ContainsAck reports whether text is one of the pack's interview
// acknowledgments. Used by tests that cannot predict the random pick.
func (p *Pack) ContainsAck(text string) bool {
	for _, a := range p.Slums.Acks {
		if a == text {
			return true
		}
	}
	return false
}

// Load returns the pack for the given locale and tone.
func Load(code Code, tone Tone) (*Pack, error) {
	packs, ok := registry[code]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", code)
	}
	p, ok := packs[tone]
	if !ok {
		return nil, fmt.Errorf("unsupported tone %q", tone)
	}
	// Copy so callers cannot mutate the registry.
	cp := *p
	return &cp, nil
}

var registry = map[Code]map[Tone]*Pack{
	Cantonese: {
		ToneFriendly: cantoneseFriendly,
		ToneClinical: cantoneseClinical,
	},
	Mandarin: {
		ToneFriendly: mandarinFriendly,
		ToneClinical: mandarinClinical,
	},
}
