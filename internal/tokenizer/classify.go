package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const runeEllipsis = '…'

var openingPunct = map[rune]struct{}{
	'(': {}, '[': {}, '{': {}, '"': {}, '\'': {},
	'“': {}, '‘': {}, '«': {},
}

var closingPunct = map[rune]struct{}{
	')': {}, ']': {}, '}': {}, '"': {}, '\'': {},
	'”': {}, '’': {}, '»': {},
}

func endPunctuationFromRune(r rune) EndPunctuation {
	switch r {
	case '.':
		return EndPeriod
	case runeEllipsis:
		return EndPeriod
	case '?':
		return EndQuestion
	case '!':
		return EndExclaim
	case ',':
		return EndComma
	case ';':
		return EndSemicolon
	case ':':
		return EndColon
	default:
		return EndNone
	}
}

// splitEndPunctuation returns the candidate end-punctuation classification
// for raw's last rune, plus core: raw with that one trailing rune removed
// (or raw unchanged if the last rune carries no classification).
func splitEndPunctuation(raw string) (EndPunctuation, string) {
	if raw == "" {
		return EndNone, raw
	}
	last, size := utf8.DecodeLastRuneInString(raw)
	cand := endPunctuationFromRune(last)
	if cand == EndNone {
		return EndNone, raw
	}
	return cand, raw[:len(raw)-size]
}

// classifyEndPunctuation resolves the final end-punctuation for a token,
// applying the abbreviation, decimal, and time-of-day overrides.
func classifyEndPunctuation(raw, core string) EndPunctuation {
	cand, _ := splitEndPunctuation(raw)
	switch {
	case cand == EndPeriod && isAbbreviation(raw):
		return EndNone
	case cand == EndPeriod && decimalRe.MatchString(core):
		return EndNone
	case cand == EndColon && timeOfDayRe.MatchString(core):
		return EndNone
	default:
		return cand
	}
}

// stripWrapping trims leading opening/closing punctuation and trailing
// closing/opening punctuation runes, repeatedly, leaving the inner body.
func stripWrapping(s string) string {
	runes := []rune(s)
	start, end := 0, len(runes)
	for start < end {
		_, isOpen := openingPunct[runes[start]]
		_, isClose := closingPunct[runes[start]]
		if !isOpen && !isClose {
			break
		}
		start++
	}
	for end > start {
		_, isOpen := openingPunct[runes[end-1]]
		_, isClose := closingPunct[runes[end-1]]
		if !isOpen && !isClose {
			break
		}
		end--
	}
	return string(runes[start:end])
}

func lettersOnlyLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lettersOnlyPreserveCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func hasAnyDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

var mathSymbols = map[rune]struct{}{
	'∑': {}, '∏': {}, '∫': {}, '∂': {}, '∇': {}, '√': {}, '∞': {},
	'±': {}, '×': {}, '÷': {}, '≠': {}, '≈': {}, '≤': {}, '≥': {},
	'∈': {}, '∉': {}, '⊂': {}, '⊃': {}, '∪': {}, '∩': {}, '∧': {},
	'∨': {}, '¬': {}, '∀': {}, '∃': {},
}

func hasMathSymbols(s string) bool {
	for _, r := range s {
		if _, ok := mathSymbols[r]; ok {
			return true
		}
		if r >= 'α' && r <= 'ω' {
			return true
		}
	}
	return false
}

var (
	camelCaseRe    = regexp.MustCompile(`^[a-z]+([A-Z][a-z0-9]*)+$`)
	pascalCaseRe   = regexp.MustCompile(`^[A-Z][a-z0-9]*([A-Z][a-z0-9]*)+$`)
	screamingRe    = regexp.MustCompile(`^[A-Z]+(_[A-Z0-9]+)+$`)
	snakeCaseRe    = regexp.MustCompile(`^[a-z]+(_[a-z0-9]+)+$`)
	kebabCaseRe    = regexp.MustCompile(`^[a-z]+(-[a-z0-9]+)+$`)
	allCapsRe      = regexp.MustCompile(`^[A-Z]{3,}$`)
)

func isCodeLike(wordBody string) bool {
	if wordBody == "" {
		return false
	}
	if strings.Contains(wordBody, "_") {
		return true
	}
	return camelCaseRe.MatchString(wordBody) || pascalCaseRe.MatchString(wordBody) ||
		screamingRe.MatchString(wordBody) || snakeCaseRe.MatchString(wordBody) ||
		kebabCaseRe.MatchString(wordBody)
}

var shortWordSet = map[string]struct{}{
	"a": {}, "an": {}, "as": {}, "at": {}, "be": {}, "by": {}, "do": {},
	"go": {}, "he": {}, "if": {}, "in": {}, "is": {}, "it": {}, "me": {},
	"my": {}, "no": {}, "of": {}, "on": {}, "or": {}, "so": {}, "to": {},
	"up": {}, "us": {}, "we": {}, "am": {}, "are": {}, "the": {}, "and": {},
	"but": {}, "for": {}, "not": {}, "you": {}, "all": {}, "can": {},
	"had": {}, "her": {}, "was": {}, "one": {}, "our": {}, "out": {},
}

func isShortWord(wordBodyLower string) bool {
	if len([]rune(wordBodyLower)) <= 2 {
		return true
	}
	_, ok := shortWordSet[wordBodyLower]
	return ok
}

var phraseBoundaryWords = map[string]struct{}{
	// FANBOYS.
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "yet": {}, "so": {},
	// Subordinating conjunctions.
	"because": {}, "although": {}, "while": {}, "when": {}, "where": {},
	"if": {}, "unless": {}, "since": {}, "until": {}, "before": {},
	"after": {}, "though": {}, "whereas": {}, "whenever": {}, "wherever": {},
	"whether": {}, "once": {}, "as": {},
	// Sentence adverbs.
	"however": {}, "therefore": {}, "moreover": {}, "furthermore": {},
	"meanwhile": {}, "consequently": {}, "nevertheless": {}, "otherwise": {},
	"hence": {}, "thus": {}, "instead": {}, "indeed": {}, "besides": {},
	"accordingly": {}, "similarly": {}, "likewise": {}, "nonetheless": {},
	"regardless": {}, "finally": {}, "subsequently": {},
	// Relative pronouns.
	"which": {}, "that": {}, "who": {}, "whom": {}, "whose": {},
	// Contrastive markers.
	"then": {}, "still": {}, "also": {}, "even": {},
}

func isPhraseBoundaryWord(wordBodyLower string) bool {
	_, ok := phraseBoundaryWords[wordBodyLower]
	return ok
}

var prefixes = []string{
	"un", "pre", "dis", "mis", "non", "anti", "over", "under", "semi",
	"super", "re", "de", "ex", "sub", "inter", "trans", "counter", "multi",
	"poly",
}

var suffixes = []string{
	"tion", "sion", "ness", "ment", "able", "ible", "ful", "less", "ous",
	"ive", "ly", "ity", "ism", "ist", "ize", "ise", "ify", "ical",
	"ology", "ography",
}

func hasAffix(lower string, affixes []string, prefix bool) bool {
	for _, a := range affixes {
		if len(lower) < len(a)+2 {
			continue
		}
		if prefix && strings.HasPrefix(lower, a) {
			return true
		}
		if !prefix && strings.HasSuffix(lower, a) {
			return true
		}
	}
	return false
}
