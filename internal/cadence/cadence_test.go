package cadence

import (
	"math"
	"testing"

	"github.com/paceread/cadence/internal/tokenizer"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBaseInterval(t *testing.T) {
	if got := BaseInterval(300); !approxEqual(got, 200) {
		t.Errorf("BaseInterval(300) = %v, want 200", got)
	}
	if got := BaseInterval(60); !approxEqual(got, 1000) {
		t.Errorf("BaseInterval(60) = %v, want 1000", got)
	}
}

func TestLengthFactorTable(t *testing.T) {
	cases := map[int]float64{1: 0.85, 2: 0.95, 3: 1.00, 4: 1.12, 5: 1.25, 6: 1.40, 7: 1.55, 20: 1.55}
	for syl, want := range cases {
		if got := LengthFactor(syl); !approxEqual(got, want) {
			t.Errorf("LengthFactor(%d) = %v, want %v", syl, got, want)
		}
	}
}

func TestWordLengthFactor(t *testing.T) {
	if got := WordLengthFactor(2); !approxEqual(got, 0.85) {
		t.Errorf("WordLengthFactor(2) = %v, want 0.85", got)
	}
	if got := WordLengthFactor(4); !approxEqual(got, 1.00) {
		t.Errorf("WordLengthFactor(4) = %v, want 1.00", got)
	}
	if got := WordLengthFactor(10); !approxEqual(got, 1.60) {
		t.Errorf("WordLengthFactor(10) = %v, want 1.60", got)
	}
	if got := WordLengthFactor(100); !approxEqual(got, 1.60) {
		t.Errorf("WordLengthFactor(100) = %v, want 1.60 (capped)", got)
	}
}

func TestEaseInMul(t *testing.T) {
	cases := map[int]float64{0: 1.50, 1: 1.30, 2: 1.15, 3: 1.05, 4: 1.00, 100: 1.00}
	for idx, want := range cases {
		if got := EaseInMul(idx); !approxEqual(got, want) {
			t.Errorf("EaseInMul(%d) = %v, want %v", idx, got, want)
		}
	}
}

func TestParagraphEaseInMul(t *testing.T) {
	got := ParagraphEaseInMul(0, 300, 75, 5)
	// effectiveTargetWpm=225, fullDropMul=300/225=1.3333, rampFactor=1-0/5=1
	want := 300.0 / 225.0
	if !approxEqual(got, want) {
		t.Errorf("ParagraphEaseInMul(0,...) = %v, want %v", got, want)
	}
	if got := ParagraphEaseInMul(5, 300, 75, 5); !approxEqual(got, 1.0) {
		t.Errorf("ParagraphEaseInMul(5,...) = %v, want 1.0 (past ramp)", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[float64]string{
		0:      "0s",
		500:    "1s",
		1000:   "1s",
		59000:  "59s",
		60000:  "1m00s",
		65000:  "1m05s",
		125000: "2m05s",
	}
	for ms, want := range cases {
		if got := FormatDuration(ms); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", ms, got, want)
		}
	}
}

func defaultConfig() Config {
	return Config{
		Wpm:                     300,
		CommaMultiplier:         1.2,
		SemicolonMultiplier:     1.5,
		ColonMultiplier:         1.0,
		PeriodMultiplier:        2.2,
		QuestionMultiplier:      2.5,
		ExclamationMultiplier:   2.0,
		ParagraphMultiplier:     2.5,
		ShortWordMultiplier:     0.15,
		PhraseBoundaryMultiplier: 0.3,
		MaxWordsWithoutPause:    7,
		WpmRampDuration:         500,
		BreathGroupThreshold:    8,
		MinDurationFloor:        0.4,
		MaxDurationCap:          4.0,
		DomainMode:              DomainProse,
		TargetWpmVariance:       0.20,
		AverageWindowSize:       25,
		MomentumBuildThreshold:  3,
		MomentumMaxBoost:        0.15,
		MomentumDecayRate:       0.5,
	}
}

func TestGetTokenDurationWithinBounds(t *testing.T) {
	config := defaultConfig()
	config.EnableSyllableWeight = true
	config.EnableProsodyFactor = true
	config.EnableComplexityFactor = true

	for _, text := range []string{"The quick brown fox jumps.", "Antidisestablishmentarianism, supposedly."} {
		for _, tok := range tokenizer.Tokenize(text) {
			d := GetTokenDuration(tok, config)
			baseInterval := BaseInterval(config.Wpm)
			floor := config.MinDurationFloor * baseInterval
			if d < floor-1e-6 && !tok.IsParagraphBreak {
				t.Errorf("token %q duration %v below floor %v", tok.Text, d, floor)
			}
		}
	}
}

func TestGetTokenDurationParagraphBreakShortCircuit(t *testing.T) {
	config := defaultConfig()
	tok := tokenizer.Token{IsParagraphBreak: true}
	got := GetTokenDuration(tok, config)
	want := BaseInterval(config.Wpm) * (1 + config.ParagraphMultiplier)
	if !approxEqual(got, want) {
		t.Errorf("paragraph break duration = %v, want %v", got, want)
	}
}

func TestClassicFallbackPunctuationAdditive(t *testing.T) {
	config := defaultConfig()
	base := tokenizer.Token{WordLength: 3, EndPunctuation: tokenizer.EndNone}
	plain := GetTokenDuration(base, config)

	withPeriod := base
	withPeriod.EndPunctuation = tokenizer.EndPeriod
	withPeriodDuration := GetTokenDuration(withPeriod, config)

	if withPeriodDuration <= plain {
		t.Errorf("period-ending token duration %v should exceed plain %v", withPeriodDuration, plain)
	}
}

func TestGetEstimatedDurationSumsTokens(t *testing.T) {
	config := defaultConfig()
	tokens := tokenizer.Tokenize("One two three.")
	var sum float64
	for _, tok := range tokens {
		sum += GetTokenDuration(tok, config)
	}
	if got := GetEstimatedDuration(tokens, config); !approxEqual(got, sum) {
		t.Errorf("GetEstimatedDuration = %v, want %v", got, sum)
	}
}
