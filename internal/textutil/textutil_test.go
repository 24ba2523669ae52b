package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello world"},
		{"FREE!! WIN cash NOW", "free win cash now"},
		{"  multiple   spaces  ", "multiple spaces"},
		{"line\nbreak\rhere", "line break here"},
		{"don't stop-me", "don t stop me"},
		{"call 0800-123", "call 0800 123"},
		{"!!!", ""},
		{"", ""},
		{"café RÉSUMÉ", "café résumé"},
		{"a_b", "a b"},
	}
	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"FREE!! WIN cash NOW",
		"  a -- b\t\tc  ",
		"!!!",
		"already normal",
		"Straße İstanbul",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"free win cash", []string{"free", "win", "cash"}},
		{"single", []string{"single"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFoldMatchesNormalizeCase(t *testing.T) {
	// A stopword folded in isolation must equal the same word as it comes
	// out of Normalize, otherwise filtering silently mismatches.
	words := []string{"NOW", "The", "Ştop", "WIN"}
	for _, w := range words {
		if Fold(w) != Normalize(w) {
			t.Errorf("Fold(%q) = %q but Normalize(%q) = %q", w, Fold(w), w, Normalize(w))
		}
	}
}
