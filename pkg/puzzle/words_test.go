package puzzle

import (
	"slices"
	"testing"
)

func TestNormalizeWords(t *testing.T) {
	raw := []string{"  cat ", "Dog", "abc123", "", "a", "SIXTEENLETTERSXX", "fifteenletterss", "sea horse", "cat"}
	want := []string{"CAT", "DOG", "FIFTEENLETTERSS", "CAT"}

	got := NormalizeWords(raw)
	if !slices.Equal(got, want) {
		t.Errorf("NormalizeWords(%q) = %q, want %q", raw, got, want)
	}
}

func TestNormalizeWords_Idempotent(t *testing.T) {
	once := NormalizeWords([]string{"apple", " Banana", "kiwi!", "FIG"})
	twice := NormalizeWords(once)
	if !slices.Equal(once, twice) {
		t.Errorf("NormalizeWords not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizeWords_AllInvalid(t *testing.T) {
	if got := NormalizeWords([]string{"abc123", " ", "é"}); len(got) != 0 {
		t.Errorf("NormalizeWords = %q, want empty", got)
	}
}

func TestOrderForPlacement_StableLongestFirst(t *testing.T) {
	in := []string{"CAT", "DOG", "CATFISH", "OX", "EMU", "PARROT"}
	want := []string{"CATFISH", "PARROT", "CAT", "DOG", "EMU", "OX"}

	got := OrderForPlacement(in)
	if !slices.Equal(got, want) {
		t.Errorf("OrderForPlacement(%q) = %q, want %q", in, got, want)
	}
	if in[0] != "CAT" {
		t.Error("OrderForPlacement modified its input")
	}
}
