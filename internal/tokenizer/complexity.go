package tokenizer

import "github.com/paceread/cadence/internal/lexicon"

// complexityScore produces a 0..1 difficulty estimate for wordBody by
// summing a handful of independent, heuristic signals: rarity against the
// frequency tiers, common affixes, raw length, all-caps shouting, and
// embedded digits.
func complexityScore(wordBody string, wordLength int) float64 {
	lower := lettersOnlyLower(wordBody)
	score := 0.0

	if lower != "" {
		if !lexicon.InTop5K(lower) {
			score += 0.25
			if !lexicon.InTop20K(lower) {
				score += 0.15
			}
		}
	}

	if hasAffix(lower, prefixes, true) {
		score += 0.10
	}
	if hasAffix(lower, suffixes, false) {
		score += 0.10
	}

	if wordLength > 10 {
		inc := float64(wordLength-10) * 0.03
		if inc > 0.15 {
			inc = 0.15
		}
		score += inc
	}

	if allCapsRe.MatchString(lettersOnlyPreserveCase(wordBody)) {
		score += 0.10
	}

	if hasAnyDigit(wordBody) {
		score += 0.05
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
