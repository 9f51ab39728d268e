package tokenizer

import "testing"

func wordTokens(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if !t.IsParagraphBreak {
			out = append(out, t)
		}
	}
	return out
}

func TestTokenizeBasicSentence(t *testing.T) {
	tokens := wordTokens(Tokenize("The cat sat."))
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
	last := tokens[2]
	if last.Text != "sat." || last.EndPunctuation != EndPeriod || !last.IsSentenceEnd {
		t.Errorf("last token = %+v", last)
	}
}

func TestTokenizeParagraphBreak(t *testing.T) {
	tokens := Tokenize("First para.\n\nSecond para.")
	var breaks int
	for _, tok := range tokens {
		if tok.IsParagraphBreak {
			breaks++
			if tok.ParagraphIndex != -1 {
				t.Errorf("paragraph break ParagraphIndex = %d, want -1", tok.ParagraphIndex)
			}
		}
	}
	if breaks != 1 {
		t.Fatalf("got %d paragraph breaks, want 1", breaks)
	}
}

func TestTokenizeHyphenLineBreakRejoin(t *testing.T) {
	// The line break is rejoined into a plain hyphen first; since the
	// resulting "hy-phenated" is over 10 runes, the long-word hyphen split
	// then cuts it again at that same hyphen.
	tokens := wordTokens(Tokenize("This is a hy-\nphenated word."))
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	want := []string{"This", "is", "a", "hy-", "phenated", "word."}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestTokenizeLongCompoundHyphenSplit(t *testing.T) {
	tokens := wordTokens(Tokenize("state-of-the-art design"))
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	want := []string{"state-", "of-", "the-", "art", "design"}
	if len(texts) != len(want) {
		t.Fatalf("got %v, want %v", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestTokenizeAbbreviation(t *testing.T) {
	tokens := wordTokens(Tokenize("Dr. Smith arrived."))
	if !tokens[0].IsAbbreviation || tokens[0].EndPunctuation != EndNone {
		t.Errorf("Dr. token = %+v", tokens[0])
	}
}

func TestTokenizeDecimalNotSentenceEnd(t *testing.T) {
	tokens := wordTokens(Tokenize("Pi is 3.14."))
	last := tokens[len(tokens)-1]
	if last.Text != "3.14." {
		t.Fatalf("last token = %q", last.Text)
	}
	if last.EndPunctuation != EndNone {
		t.Errorf("EndPunctuation = %v, want none (decimal override)", last.EndPunctuation)
	}
	if last.NumberType != NumberDecimal {
		t.Errorf("NumberType = %v, want decimal", last.NumberType)
	}
}

func TestTokenizeTimeOfDay(t *testing.T) {
	tokens := wordTokens(Tokenize("Meet at 3:30: then leave."))
	for _, tok := range tokens {
		if tok.Text == "3:30:" {
			if tok.EndPunctuation != EndNone {
				t.Errorf("EndPunctuation = %v, want none (time override)", tok.EndPunctuation)
			}
			return
		}
	}
	t.Fatalf("did not find 3:30: token in %+v", tokens)
}

func TestTokenizeNumberTypes(t *testing.T) {
	cases := []struct {
		text string
		want NumberType
	}{
		{"$19.99", NumberCurrency},
		{"50%", NumberPercent},
		{"10kg", NumberUnit},
		{"pp. 12-14", NumberRange},
		{"1,000", NumberDecimal},
		{"42", NumberPlain},
		{"[12]", NumberCitation},
	}
	for _, c := range cases {
		tokens := wordTokens(Tokenize(c.text))
		last := tokens[len(tokens)-1]
		if last.NumberType != c.want {
			t.Errorf("Tokenize(%q) last NumberType = %v, want %v (token %q)", c.text, last.NumberType, c.want, last.Text)
		}
	}
}

func TestTokenizeCodeLike(t *testing.T) {
	tokens := wordTokens(Tokenize("call getUserName now"))
	found := false
	for _, tok := range tokens {
		if tok.Text == "getUserName" {
			found = true
			if !tok.IsCodeLike {
				t.Errorf("getUserName: IsCodeLike = false, want true")
			}
		}
	}
	if !found {
		t.Fatalf("token not found")
	}
}

func TestTokenizeMathSymbols(t *testing.T) {
	tokens := wordTokens(Tokenize("the sum ∑xi equals"))
	found := false
	for _, tok := range tokens {
		if tok.Text == "∑xi" {
			found = true
			if !tok.HasMathSymbols {
				t.Errorf("∑xi: HasMathSymbols = false, want true")
			}
		}
	}
	if !found {
		t.Fatalf("token not found")
	}
}

func TestTokenizePhraseBoundary(t *testing.T) {
	tokens := wordTokens(Tokenize("slow down and think"))
	for i, tok := range tokens {
		if tok.Text == "down" {
			if !tok.IsPhraseBoundary {
				t.Errorf("down: IsPhraseBoundary = false, want true (next word after %q is %q)", tok.Text, tokens[i+1].Text)
			}
		}
	}
}

func TestTokenizeWordsSinceLastPauseResets(t *testing.T) {
	tokens := wordTokens(Tokenize("one two three, four five"))
	want := []int{0, 1, 2, 0, 1}
	for i, tok := range tokens {
		if tok.WordsSinceLastPause != want[i] {
			t.Errorf("token %d (%q) WordsSinceLastPause = %d, want %d", i, tok.Text, tok.WordsSinceLastPause, want[i])
		}
	}
}

func TestTokenizeEasyWord(t *testing.T) {
	tokens := wordTokens(Tokenize("the quick brown fox"))
	if !tokens[0].IsEasyWord {
		t.Errorf("'the' should be an easy word: %+v", tokens[0])
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if tokens := Tokenize(""); len(tokens) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", tokens)
	}
	if tokens := Tokenize("   \n\n  "); len(tokens) != 0 {
		t.Errorf("Tokenize(whitespace-only) = %v, want empty", tokens)
	}
}

func TestTokenizeIndicesAreSequential(t *testing.T) {
	tokens := Tokenize("First one.\n\nSecond one.")
	for i, tok := range tokens {
		if tok.Index != i {
			t.Errorf("tokens[%d].Index = %d, want %d", i, tok.Index, i)
		}
	}
}
