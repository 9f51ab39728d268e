package tokenizer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/paceread/cadence/internal/lexicon"
)

// Tokenize sanitizes, normalizes, and splits text into an enriched token
// stream. It never panics and never returns an error: malformed or empty
// input simply yields a short (possibly empty) token slice.
func Tokenize(text string) []Token {
	paragraphs := splitParagraphs(normalizeWhitespace(sanitize(text)))
	if len(paragraphs) == 0 {
		return nil
	}

	tokens := make([]Token, 0, len(paragraphs)*8)
	for pIdx, para := range paragraphs {
		if pIdx > 0 {
			tokens = append(tokens, Token{
				Text:             "",
				IsParagraphBreak: true,
				ParagraphIndex:   -1,
				BoundaryType:     BoundaryParagraph,
			})
		}
		for _, word := range strings.Fields(para) {
			for _, sub := range splitSubTokens(word) {
				tokens = append(tokens, buildToken(sub, pIdx))
			}
		}
	}

	assignIndices(tokens)
	assignPhraseBoundaries(tokens)
	assignBoundaryTypes(tokens)
	assignWordsSinceLastPause(tokens)
	return tokens
}

func buildToken(raw string, paragraphIndex int) Token {
	_, core := splitEndPunctuation(raw)
	endPunc := classifyEndPunctuation(raw, core)

	wordBody := stripWrapping(core)
	wordLength := len([]rune(wordBody))
	lower := lettersOnlyLower(wordBody)

	numberType := detectNumberType(core)
	syllables := estimateSyllables(wordBody)
	complexity := complexityScore(wordBody, wordLength)

	rawFirst, coreLast := firstRune(raw), lastRune(core)
	_, hasOpen := openingPunct[rawFirst]
	_, hasClose := closingPunct[coreLast]

	rawLast := lastRune(raw)
	hasDash := rawFirst == '-' || rawFirst == runeEmDash || rawFirst == runeEnDash ||
		rawLast == '-' || rawLast == runeEmDash || rawLast == runeEnDash

	isSentenceEnd := endPunc == EndPeriod || endPunc == EndQuestion || endPunc == EndExclaim || hasDash
	isClauseEnd := endPunc == EndSemicolon || endPunc == EndColon || (endPunc == EndComma && wordLength >= 4)

	easy := lower != "" && lexicon.InTop5K(lower) && syllables <= 2 && complexity <= 0.3 &&
		endPunc != EndPeriod && endPunc != EndQuestion && endPunc != EndExclaim &&
		endPunc != EndSemicolon && endPunc != EndColon

	return Token{
		Text:                  raw,
		ParagraphIndex:        paragraphIndex,
		EndPunctuation:        endPunc,
		WordLength:            wordLength,
		DisplayWidth:          runewidth.StringWidth(raw),
		EstimatedSyllables:    syllables,
		IsShortWord:           isShortWord(lower),
		IsSentenceEnd:         isSentenceEnd,
		IsClauseEnd:           isClauseEnd,
		IsAbbreviation:        endPunc == EndNone && isAbbreviation(raw),
		IsNumber:              isNumeric(numberType),
		IsCitation:            numberType == NumberCitation,
		IsCodeLike:            isCodeLike(wordBody),
		HasMathSymbols:        hasMathSymbols(wordBody),
		HasOpeningPunctuation: hasOpen,
		HasClosingPunctuation: hasClose,
		HasDash:               hasDash,
		IsEasyWord:            easy,
		NumberType:            numberType,
		TokenComplexity:       complexity,
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func assignIndices(tokens []Token) {
	for i := range tokens {
		tokens[i].Index = i
	}
}

// assignPhraseBoundaries marks a token as a phrase boundary when it carries
// no end punctuation and the next non-paragraph-break token's lowercase
// letters-only body is a conjunction/relative-pronoun/transition word.
// Paragraph-break markers are transparent: lookahead skips over them.
func assignPhraseBoundaries(tokens []Token) {
	for i := range tokens {
		if tokens[i].IsParagraphBreak || tokens[i].EndPunctuation != EndNone {
			continue
		}
		next := i + 1
		for next < len(tokens) && tokens[next].IsParagraphBreak {
			next++
		}
		if next >= len(tokens) {
			continue
		}
		nextBody := lettersOnlyLower(stripWrapping(tokens[next].Text))
		if isPhraseBoundaryWord(nextBody) {
			tokens[i].IsPhraseBoundary = true
		}
	}
}

func assignBoundaryTypes(tokens []Token) {
	for i := range tokens {
		t := &tokens[i]
		switch {
		case t.IsParagraphBreak:
			t.BoundaryType = BoundaryParagraph
		case t.EndPunctuation == EndPeriod || t.EndPunctuation == EndQuestion || t.EndPunctuation == EndExclaim:
			t.BoundaryType = BoundarySentence
		case t.EndPunctuation == EndComma || t.EndPunctuation == EndSemicolon || t.EndPunctuation == EndColon:
			t.BoundaryType = BoundaryClause
		case t.HasDash:
			t.BoundaryType = BoundaryClause
		case t.IsPhraseBoundary:
			t.BoundaryType = BoundaryMicro
		default:
			t.BoundaryType = BoundaryNone
		}
	}
}

func assignWordsSinceLastPause(tokens []Token) {
	counter := 0
	for i := range tokens {
		t := &tokens[i]
		if t.IsParagraphBreak {
			counter = 0
			continue
		}
		t.WordsSinceLastPause = counter
		if t.EndPunctuation != EndNone || t.IsPhraseBoundary {
			counter = 0
		} else {
			counter++
		}
	}
}
