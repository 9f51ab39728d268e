package cadence

import "github.com/paceread/cadence/internal/tokenizer"

// LengthFactor maps a syllable count to a duration multiplier.
func LengthFactor(syllables int) float64 {
	switch {
	case syllables <= 1:
		return 0.85
	case syllables == 2:
		return 0.95
	case syllables == 3:
		return 1.00
	case syllables == 4:
		return 1.12
	case syllables == 5:
		return 1.25
	case syllables == 6:
		return 1.40
	default:
		return 1.55
	}
}

// WordLengthFactor is the character-count fallback used when syllable
// weighting is disabled.
func WordLengthFactor(length int) float64 {
	switch {
	case length <= 2:
		return 0.85
	case length <= 4:
		return 1.00
	default:
		v := 1 + float64(length-4)*0.10
		if v > 1.60 {
			return 1.60
		}
		return v
	}
}

// EaseInMul ramps the first few words of a session up from a slower start.
func EaseInMul(index int) float64 {
	switch index {
	case 0:
		return 1.50
	case 1:
		return 1.30
	case 2:
		return 1.15
	case 3:
		return 1.05
	default:
		return 1.00
	}
}

// ParagraphEaseInMul slows the first rampWords words of each paragraph
// (paragraphIndex is the word's position within its paragraph), ramping
// the effective WPM back up to its target over that span.
func ParagraphEaseInMul(paragraphIndex, wpm, wpmDrop, rampWords int) float64 {
	if paragraphIndex >= rampWords || rampWords <= 0 {
		return 1.0
	}
	effectiveTargetWpm := wpm - wpmDrop
	if effectiveTargetWpm < 50 {
		effectiveTargetWpm = 50
	}
	fullDropMul := float64(wpm) / float64(effectiveTargetWpm)
	rampFactor := 1 - float64(paragraphIndex)/float64(rampWords)
	return 1 + (fullDropMul-1)*rampFactor
}

// ProsodyFactor layers breath-group fatigue and surrounding-punctuation
// weight onto a token, capped so no single token runs away.
func ProsodyFactor(t tokenizer.Token, wordsSinceLastPause, breathGroupThreshold int) float64 {
	factor := 1.0
	if wordsSinceLastPause >= breathGroupThreshold {
		excess := float64(wordsSinceLastPause - breathGroupThreshold)
		boost := 0.02 * excess
		if boost > 0.15 {
			boost = 0.15
		}
		factor *= 1.05 + boost
	}
	if t.HasOpeningPunctuation {
		factor *= 1.08
	}
	if t.HasClosingPunctuation {
		factor *= 1.05
	}
	if t.HasDash {
		factor *= 1.10
	}
	if factor > 1.35 {
		factor = 1.35
	}
	return factor
}

// DomainFactor biases duration toward the reading material's domain.
func DomainFactor(t tokenizer.Token, mode DomainMode) float64 {
	switch mode {
	case DomainMath:
		if t.HasMathSymbols {
			return 1.40
		}
		if t.IsNumber {
			return 1.15
		}
		return 1.00
	case DomainCode:
		if t.IsCodeLike {
			return 1.25
		}
		return 1.00
	case DomainTechnical:
		if t.IsCitation {
			return 1.20
		}
		if t.IsNumber {
			return 1.10
		}
		if t.TokenComplexity > 0.5 {
			return 1.15
		}
		return 1.00
	default:
		if t.IsCitation {
			return 1.15
		}
		return 1.00
	}
}

var boundaryPauseMultiplier = map[tokenizer.BoundaryType]float64{
	tokenizer.BoundaryNone:      0,
	tokenizer.BoundaryMicro:     0.15,
	tokenizer.BoundaryClause:    0.40,
	tokenizer.BoundarySentence:  0.90,
	tokenizer.BoundaryParagraph: 2.00,
	tokenizer.BoundaryHeading:   2.50,
	tokenizer.BoundaryListItem:  1.25,
	tokenizer.BoundaryCodeLine:  0.60,
	tokenizer.BoundaryMathChunk: 0.80,
}

// BoundaryPause is the additive pause, in milliseconds, for resting on a
// boundary of the given strength, capped at maxDurationCap*baseInterval.
func BoundaryPause(boundary tokenizer.BoundaryType, baseInterval, maxDurationCap float64) float64 {
	mul := boundaryPauseMultiplier[boundary]
	pause := mul * baseInterval
	capped := maxDurationCap * baseInterval
	if pause > capped {
		return capped
	}
	return pause
}
