package cadence

import "github.com/paceread/cadence/internal/tokenizer"

// BaseInterval is the unweighted per-token duration at the given speed.
func BaseInterval(wpm int) float64 {
	return 60_000.0 / float64(wpm)
}

func punctuationMultiplier(config Config, end tokenizer.EndPunctuation) float64 {
	switch end {
	case tokenizer.EndComma:
		return config.CommaMultiplier
	case tokenizer.EndSemicolon:
		return config.SemicolonMultiplier
	case tokenizer.EndColon:
		return config.ColonMultiplier
	case tokenizer.EndPeriod:
		return config.PeriodMultiplier
	case tokenizer.EndQuestion:
		return config.QuestionMultiplier
	case tokenizer.EndExclaim:
		return config.ExclamationMultiplier
	default:
		return 0
	}
}

// GetTokenDuration returns the display duration, in milliseconds, for a
// single token at config.Wpm, using token.Index for ease-in. The
// cadence-model path clamps its combined factor to [MinDurationFloor,
// MaxDurationCap] before adding the boundary pause; ease-in and paragraph
// ease-in then multiply that sum, so with either enabled the result can
// exceed maxDurationCap*baseInterval plus the pause. The classic path
// floors its multiplier at 0.5 and has no upper cap.
func GetTokenDuration(t tokenizer.Token, config Config) float64 {
	return GetTokenDurationAt(t, config, t.Index)
}

// GetTokenDurationAt is GetTokenDuration with an explicit ease-in index,
// for callers that supply the index themselves rather than relying on
// token.Index (the scheduler passes each token's stream position).
func GetTokenDurationAt(t tokenizer.Token, config Config, easeInIndex int) float64 {
	baseInterval := BaseInterval(config.Wpm)

	if t.IsParagraphBreak {
		return baseInterval * (1 + config.ParagraphMultiplier)
	}

	if config.EnableSyllableWeight && t.EstimatedSyllables > 0 {
		return primaryDuration(t, config, baseInterval, easeInIndex)
	}
	return classicDuration(t, config, baseInterval, easeInIndex)
}

func primaryDuration(t tokenizer.Token, config Config, baseInterval float64, easeInIndex int) float64 {
	factor := 1.0
	if config.EnableSyllableWeight {
		factor *= LengthFactor(t.EstimatedSyllables)
	} else if config.EnableWordLengthTiming {
		factor *= WordLengthFactor(t.WordLength)
	}
	if config.EnableProsodyFactor {
		factor *= ProsodyFactor(t, t.WordsSinceLastPause, config.BreathGroupThreshold)
	}
	if config.EnableComplexityFactor {
		factor *= 1.0 + t.TokenComplexity*0.35
	}
	factor *= DomainFactor(t, config.DomainMode)
	factor = clamp(factor, config.MinDurationFloor, config.MaxDurationCap)

	base := baseInterval*factor + BoundaryPause(t.BoundaryType, baseInterval, config.MaxDurationCap)

	ease := 1.0
	if config.EnableEaseIn {
		ease = EaseInMul(easeInIndex)
	}
	paraEase := 1.0
	if config.EnableParagraphEaseIn {
		paraEase = ParagraphEaseInMul(t.ParagraphIndex, config.Wpm, config.ParagraphEaseInWpmDrop, config.ParagraphEaseInWords)
	}
	return base * ease * paraEase
}

func classicDuration(t tokenizer.Token, config Config, baseInterval float64, easeInIndex int) float64 {
	multiplier := 1.0
	lengthLowered := false

	if config.EnableWordLengthTiming {
		wl := WordLengthFactor(t.WordLength)
		multiplier *= wl
		lengthLowered = wl < 1.0
	}
	if config.EnableShortWordBoost && t.IsShortWord && !lengthLowered {
		multiplier -= config.ShortWordMultiplier
	}

	multiplier += punctuationMultiplier(config, t.EndPunctuation)

	if t.IsPhraseBoundary && t.EndPunctuation == tokenizer.EndNone {
		multiplier += config.PhraseBoundaryMultiplier
	}

	if config.EnableLongRunRelief && t.WordsSinceLastPause > 5 {
		relief := float64(t.WordsSinceLastPause-5) * 0.05
		if relief > 0.25 {
			relief = 0.25
		}
		multiplier += relief
	}

	if config.EnableEaseIn {
		multiplier *= EaseInMul(easeInIndex)
	}
	if config.EnableParagraphEaseIn {
		multiplier *= ParagraphEaseInMul(t.ParagraphIndex, config.Wpm, config.ParagraphEaseInWpmDrop, config.ParagraphEaseInWords)
	}

	if multiplier < 0.5 {
		multiplier = 0.5
	}
	return baseInterval * multiplier
}

// GetEstimatedDuration sums GetTokenDuration over the whole stream, for
// showing a caller a total reading-time estimate up front.
func GetEstimatedDuration(tokens []tokenizer.Token, config Config) float64 {
	total := 0.0
	for _, t := range tokens {
		total += GetTokenDuration(t, config)
	}
	return total
}
