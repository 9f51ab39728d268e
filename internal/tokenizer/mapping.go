package tokenizer

import "strings"

// BlocksToText joins a caller's (type, text) blocks into the single string
// Tokenize expects, separating blocks with a paragraph break.
func BlocksToText(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Text
	}
	return strings.Join(parts, "\n\n")
}

// CreateTokenBlockMapping replays the same sanitize/normalize/split
// pipeline Tokenize uses, once per block, and records which block and
// which within-block word index produced each resulting token. A
// paragraph-break token (including one produced by a blank line inside a
// single block's own text) maps to {-1, -1}.
//
// Calling Tokenize(BlocksToText(blocks)) produces a token stream whose
// positions line up 1:1 with the mapping returned here.
func CreateTokenBlockMapping(blocks []Block) []Mapping {
	var mapping []Mapping
	for bIdx, block := range blocks {
		if bIdx > 0 {
			mapping = append(mapping, Mapping{BlockIndex: -1, WordIndexInBlock: -1})
		}
		paragraphs := splitParagraphs(normalizeWhitespace(sanitize(block.Text)))
		wordIdx := 0
		for pIdx, para := range paragraphs {
			if pIdx > 0 {
				mapping = append(mapping, Mapping{BlockIndex: -1, WordIndexInBlock: -1})
			}
			for _, word := range strings.Fields(para) {
				for range splitSubTokens(word) {
					mapping = append(mapping, Mapping{BlockIndex: bIdx, WordIndexInBlock: wordIdx})
					wordIdx++
				}
			}
		}
	}
	return mapping
}

// FindTokenIndexByBlockWord returns the stream position of the token that
// mapping records as (blockIndex, wordIndexInBlock), or -1 if no entry
// matches.
func FindTokenIndexByBlockWord(mapping []Mapping, blockIndex, wordIndexInBlock int) int {
	for i, m := range mapping {
		if m.BlockIndex == blockIndex && m.WordIndexInBlock == wordIndexInBlock {
			return i
		}
	}
	return -1
}

// GetWordCount returns the number of non-paragraph-break tokens.
func GetWordCount(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if !t.IsParagraphBreak {
			n++
		}
	}
	return n
}

// FindParagraphStart walks back from an arbitrary stream position to the
// token just after the nearest preceding paragraph break, clamping into
// range. It is used to re-anchor playback at the start of the current
// paragraph rather than mid-sentence.
func FindParagraphStart(tokens []Token, currentIndex int) int {
	if currentIndex < 0 {
		return 0
	}
	if currentIndex >= len(tokens) {
		currentIndex = len(tokens) - 1
	}
	for i := currentIndex; i >= 0; i-- {
		if tokens[i].IsParagraphBreak {
			return i + 1
		}
	}
	return 0
}
