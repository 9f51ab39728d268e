package tokenizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var hyphenLineBreak = regexp.MustCompile(`-[ \t]*\r?\n[ \t]*`)

const (
	runeBOM           = '﻿'
	runeZWSP          = '​'
	runeZWNJ          = '‌'
	runeZWJ           = '‍'
	runeWordJoiner    = '⁠'
	runeMongolianVsep = '᠎'
	runeReplacement   = '�'
	runeSoftHyphen    = '­'
	runeHyphenFigure  = '‐'
	runeHyphenNonbrk  = '‑'
	runeFigureDash    = '‒'
	runeHorizontalBar = '―'
	runeEmDash        = '—'
	runeEnDash        = '–'
	runePUAStart      = ''
	runePUAEnd        = ''
)

// sanitize rejoins hyphenated line breaks, strips invisible and control
// characters that have no place in display prose, folds hyphen-like dashes
// to a plain hyphen, and normalizes to NFC.
func sanitize(s string) string {
	s = hyphenLineBreak.ReplaceAllString(s, "-")
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == runeBOM, r == runeZWSP, r == runeZWNJ, r == runeZWJ, r == runeWordJoiner, r == runeMongolianVsep:
			continue
		case r == runeReplacement:
			continue
		case r == runeSoftHyphen:
			continue
		case r >= runePUAStart && r <= runePUAEnd:
			continue
		case r < 0x20 && r != '\n' && r != '\t':
			continue
		case r == 0x7F:
			continue
		case r == runeHyphenFigure || r == runeHyphenNonbrk || r == runeFigureDash:
			b.WriteRune('-')
		case r == runeHorizontalBar:
			b.WriteRune(runeEmDash)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeWhitespace collapses runs of whitespace to a single space,
// except that a run containing two or more newlines is preserved as the
// two-newline paragraph separator.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	n := len(runes)
	i := 0
	for i < n {
		r := runes[i]
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		newlines := 0
		for j < n && unicode.IsSpace(runes[j]) {
			if runes[j] == '\n' {
				newlines++
			}
			j++
		}
		if newlines >= 2 {
			b.WriteString("\n\n")
		} else {
			b.WriteString(" ")
		}
		i = j
	}
	return strings.TrimSpace(b.String())
}

// splitParagraphs splits already-sanitized-and-normalized text on the
// two-newline paragraph separator, dropping any empty paragraphs.
func splitParagraphs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitSubTokens splits a whitespace-delimited word first on em/en dashes
// (always, dash kept on the preceding piece), then, for any resulting
// piece longer than 10 runes, on ASCII hyphens flanked by word characters
// (hyphen kept on the preceding piece).
func splitSubTokens(word string) []string {
	pieces := splitOnDash(word, func(r rune) bool { return r == runeEmDash || r == runeEnDash })
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if len([]rune(p)) > 10 {
			out = append(out, splitOnDash(p, func(r rune) bool { return r == '-' })...)
		} else {
			out = append(out, p)
		}
	}
	return out
}

// splitOnDash splits word at every rune matched by isDash. For the ASCII
// hyphen case, the caller relies on the flanking-word-rune check below to
// avoid splitting a leading or trailing hyphen.
func splitOnDash(word string, isDash func(rune) bool) []string {
	runes := []rune(word)
	var out []string
	start := 0
	for i, r := range runes {
		if !isDash(r) {
			continue
		}
		if r == '-' {
			if i == 0 || i == len(runes)-1 || !isWordRune(runes[i-1]) || !isWordRune(runes[i+1]) {
				continue
			}
		}
		out = append(out, string(runes[start:i+1]))
		start = i + 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	if len(out) == 0 {
		return []string{word}
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
