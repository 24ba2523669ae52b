package stopword

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	input := "the\n\n  AND  \nnow\n\n"
	s, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	for _, term := range []string{"the", "and", "now"} {
		if !s.Contains(term) {
			t.Errorf("Contains(%q) = false, want true", term)
		}
	}
	if s.Contains("cash") {
		t.Error("Contains(\"cash\") = true, want false")
	}
}

func TestReadFoldsCase(t *testing.T) {
	s, err := Read(strings.NewReader("NOW\nThe\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !s.Contains("now") || !s.Contains("the") {
		t.Error("entries should be matched by their folded form")
	}
	// Lookups are by exact folded form; the raw form is not stored.
	if s.Contains("NOW") {
		t.Error("unfolded lookup should not match")
	}
}

func TestKeepIsExactMatch(t *testing.T) {
	s := New([]string{"win"})
	if s.Keep("win") {
		t.Error("Keep(\"win\") = true, want false")
	}
	// No substring or prefix matching.
	for _, term := range []string{"winner", "wi", "winwin"} {
		if !s.Keep(term) {
			t.Errorf("Keep(%q) = false, want true", term)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stopwords.txt")
	if err := os.WriteFile(path, []byte("a\nthe\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Fatal("expected error for missing stopword file")
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Contains("anything") {
		t.Error("nil set should contain nothing")
	}
	if s.Len() != 0 {
		t.Error("nil set Len should be 0")
	}
}
