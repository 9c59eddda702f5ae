package screening

import (
	"fmt"
	"math"

	"cognitive-screening-service/internal/locale"
)

// Tier is an interpretation band for a result record.
type Tier int

const (
	// TierNormal - no indication of impairment.
	TierNormal Tier = iota
	// TierMild - mild impairment, further evaluation recommended.
	TierMild
	// TierSevere - marked impairment, prompt evaluation recommended.
	TierSevere
)

// String returns the string representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierMild:
		return "mild"
	case TierSevere:
		return "severe"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// Interpretation is the localized reading of a result record.
type Interpretation struct {
	Tier           Tier   `json:"-"`
	TierName       string `json:"tier"`
	Label          string `json:"label"`
	Recommendation string `json:"recommendation"`
	// Percentage is the normalized score ratio, rounded.
	Percentage int    `json:"percentage"`
	Disclaimer string `json:"disclaimer"`
}

// Short-form tier thresholds on the raw total.
const (
	miniCogNormalThreshold = 5
	miniCogMildThreshold   = 3
	miniCogMaxTotal        = 5
)

// Interview-form tier thresholds on the percentage of the declared
// maximum.
const (
	slumsNormalPercent = 80
	slumsMildPercent   = 60
)

// Interpret maps a result record to its tier. Pure and deterministic;
// callers re-evaluate on demand rather than caching across restarts.
func Interpret(res Result, pack *locale.Pack) Interpretation {
	var tier Tier
	var pct int

	switch res.Instrument {
	case InstrumentMiniCog:
		switch {
		case res.Total >= miniCogNormalThreshold:
			tier = TierNormal
		case res.Total >= miniCogMildThreshold:
			tier = TierMild
		default:
			tier = TierSevere
		}
		pct = roundPercent(res.Total, miniCogMaxTotal)

	default:
		ratio := 0.0
		if res.MaxScore > 0 {
			ratio = float64(res.Score) / float64(res.MaxScore) * 100
		}
		switch {
		case ratio >= slumsNormalPercent:
			tier = TierNormal
		case ratio >= slumsMildPercent:
			tier = TierMild
		default:
			tier = TierSevere
		}
		pct = roundPercent(res.Score, res.MaxScore)
	}

	out := Interpretation{
		Tier:       tier,
		TierName:   tier.String(),
		Percentage: pct,
		Disclaimer: pack.Results.Disclaimer,
	}
	switch tier {
	case TierNormal:
		out.Label = pack.Results.NormalLabel
		out.Recommendation = pack.Results.NormalRecommendation
	case TierMild:
		out.Label = pack.Results.MildLabel
		out.Recommendation = pack.Results.MildRecommendation
	default:
		out.Label = pack.Results.SevereLabel
		out.Recommendation = pack.Results.SevereRecommendation
	}
	return out
}

func roundPercent(score, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}
