package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		input   string
		want    Code
		wantErr bool
	}{
		{"zh-HK", Cantonese, false},
		{"zh-CN", Mandarin, false},
		{"en-US", "", true},
		{"", "", true},
		{"zh-hk", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCode(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTone(t *testing.T) {
	got, err := ParseTone("")
	require.NoError(t, err)
	assert.Equal(t, ToneFriendly, got, "empty tone defaults to friendly")

	got, err = ParseTone("clinical")
	require.NoError(t, err)
	assert.Equal(t, ToneClinical, got)

	_, err = ParseTone("casual")
	assert.Error(t, err)
}

func TestLoad_AllVariants(t *testing.T) {
	for _, code := range []Code{Cantonese, Mandarin} {
		for _, tone := range []Tone{ToneFriendly, ToneClinical} {
			p, err := Load(code, tone)
			require.NoError(t, err, "%s/%s", code, tone)
			assert.Equal(t, code, p.Code)
			assert.Equal(t, tone, p.Tone)

			assert.NotEmpty(t, p.Welcome)
			assert.NotEmpty(t, p.PassGoodbye)
			assert.NotEmpty(t, p.ContinueEncouragement)
			assert.NotEmpty(t, p.UnsupportedInputNotice)
			assert.NotEmpty(t, p.MiniCog.WordsInstruction)
			assert.Len(t, p.MiniCog.TargetWords, 3)
			assert.NotEmpty(t, p.MiniCog.ClockConfirmTokens)
			for i, q := range p.Slums.Questions {
				assert.NotEmpty(t, q, "%s/%s question %d", code, tone, i)
			}
			assert.NotEmpty(t, p.Slums.Acks)
			assert.NotEmpty(t, p.Slums.Closing)
			assert.NotEmpty(t, p.Results.Disclaimer)
		}
	}
}

func TestLoad_UnknownLocale(t *testing.T) {
	_, err := Load("en-US", ToneFriendly)
	assert.Error(t, err)
}

// The tones only change wording; the keyword sets that drive scoring
// must be identical so a session scores the same under either tone.
func TestClinicalSharesKeywordSets(t *testing.T) {
	for _, code := range []Code{Cantonese, Mandarin} {
		friendly, err := Load(code, ToneFriendly)
		require.NoError(t, err)
		clinical, err := Load(code, ToneClinical)
		require.NoError(t, err)

		assert.Equal(t, friendly.MiniCog.TargetWords, clinical.MiniCog.TargetWords)
		assert.Equal(t, friendly.MiniCog.ClockConfirmTokens, clinical.MiniCog.ClockConfirmTokens)
		assert.Equal(t, friendly.Slums.RecallItems, clinical.Slums.RecallItems)
		assert.Equal(t, friendly.Slums.NailTokens, clinical.Slums.NailTokens)
		assert.Equal(t, friendly.Slums.SunnyToken, clinical.Slums.SunnyToken)
		assert.Equal(t, friendly.Slums.ParkToken, clinical.Slums.ParkToken)
		assert.Equal(t, friendly.Slums.Questions, clinical.Slums.Questions)

		assert.NotEqual(t, friendly.Welcome, clinical.Welcome)
	}
}

func TestRandomAck_FromPool(t *testing.T) {
	p, err := Load(Cantonese, ToneFriendly)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ack := p.RandomAck()
		assert.True(t, p.ContainsAck(ack), "acknowledgment %q not in the pool", ack)
	}
}

// Load hands out copies, so callers cannot corrupt the registry.
func TestLoad_ReturnsCopy(t *testing.T) {
	p1, err := Load(Mandarin, ToneFriendly)
	require.NoError(t, err)
	original := p1.Welcome
	p1.Welcome = "mutated"

	p2, err := Load(Mandarin, ToneFriendly)
	require.NoError(t, err)
	assert.Equal(t, original, p2.Welcome)
}
