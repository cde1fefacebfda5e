package vin

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, seq := range []int64{0, 1, 42, 999999, -1} {
		got := Generate(seq)
		if len(got) != Length {
			t.Errorf("Generate(%d) = %q, want %d characters, got %d", seq, got, Length, len(got))
		}
	}
}

func TestGenerateExcludesAmbiguousCharacters(t *testing.T) {
	for seq := int64(1); seq < 100; seq++ {
		got := Generate(seq)
		if strings.ContainsAny(got, "IOQ") {
			t.Errorf("Generate(%d) = %q contains an excluded character", seq, got)
		}
	}
}

func TestGenerateAlphabet(t *testing.T) {
	for seq := int64(1); seq < 100; seq++ {
		got := Generate(seq)
		for _, c := range got {
			if !strings.ContainsRune(alphabet, c) {
				t.Fatalf("Generate(%d) = %q contains %q, not in alphabet", seq, got, c)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first := Generate(42)
	second := Generate(42)
	if first != second {
		t.Errorf("Generate(42) not deterministic: %q vs %q", first, second)
	}
}

func TestGenerateDistinctValues(t *testing.T) {
	if Generate(1) == Generate(2) {
		t.Errorf("Generate(1) and Generate(2) collided: %q", Generate(1))
	}
}
