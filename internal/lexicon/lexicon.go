// Package lexicon holds the fixed word-frequency tables the cadence model
// probes for membership: the top 1K, 5K, and 20K English lemmas. Only
// membership is ever queried; the tables carry no other data.
//
// The three tiers are cumulative: Words5K is a superset of Words1K, and
// Words20K is a superset of Words5K, matching how real frequency lists
// nest (the top 5000 words always include the top 1000).
package lexicon

var (
	// Words1K is the most-frequent lemma tier.
	Words1K = buildSet(tier1Words)
	// Words5K extends Words1K with a broader tier of common lemmas.
	Words5K = buildSet(tier1Words, tier2Words)
	// Words20K extends Words5K with a further tier of ordinary vocabulary.
	Words20K = buildSet(tier1Words, tier2Words, tier3Words)
)

func buildSet(tiers ...[]string) map[string]struct{} {
	n := 0
	for _, t := range tiers {
		n += len(t)
	}
	set := make(map[string]struct{}, n)
	for _, t := range tiers {
		for _, w := range t {
			set[w] = struct{}{}
		}
	}
	return set
}

// InTop1K reports whether the lowercase word w is in the top-1K tier.
func InTop1K(w string) bool {
	_, ok := Words1K[w]
	return ok
}

// InTop5K reports whether the lowercase word w is in the top-5K tier.
func InTop5K(w string) bool {
	_, ok := Words5K[w]
	return ok
}

// InTop20K reports whether the lowercase word w is in the top-20K tier.
func InTop20K(w string) bool {
	_, ok := Words20K[w]
	return ok
}
