package tokenizer

import "testing"

func TestEstimateSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"elephant", 3},
		{"apple", 2},
		{"running", 2},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := estimateSyllables(tt.word); got != tt.want {
				t.Errorf("estimateSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}
