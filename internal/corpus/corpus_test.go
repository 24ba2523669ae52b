package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "Category,Message\nspam,FREE cash now\nham,see you at 5\n"
	docs, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	want := []Document{
		{ID: 1, Text: "FREE cash now", Label: "spam"},
		{ID: 2, Text: "see you at 5", Label: "ham"},
	}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("docs = %v, want %v", docs, want)
	}
}

func TestReadCSVColumnOrder(t *testing.T) {
	// Extra columns ignored, Category/Message located by header name.
	input := "id,Message,Category\n10,hello there,ham\n"
	docs, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if docs[0].Label != "ham" || docs[0].Text != "hello there" {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	// Doc ids come from input position, never from file contents.
	if docs[0].ID != 1 {
		t.Errorf("ID = %d, want 1", docs[0].ID)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	tests := []string{
		"Message\nhello\n",
		"Category\nspam\n",
		"",
	}
	for _, input := range tests {
		if _, err := ReadCSV(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}

func TestReadCSVShortRow(t *testing.T) {
	input := "Category,Message\nspam\n"
	if _, err := ReadCSV(strings.NewReader(input)); err == nil {
		t.Error("expected error for row missing the Message field")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing corpus file")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte("Category,Message\nham,\"hi, mom\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	docs, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(docs) != 1 || docs[0].Text != "hi, mom" {
		t.Errorf("docs = %v", docs)
	}
}

func TestReadHTML(t *testing.T) {
	input := `<html><body><table>
	<tr><th>Category</th><th>Message</th></tr>
	<tr><td>spam</td><td>WIN a prize</td></tr>
	<tr><td>ham</td><td>lunch today?</td></tr>
	</table></body></html>`
	docs, err := ReadHTML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadHTML: %v", err)
	}
	want := []Document{
		{ID: 1, Text: "WIN a prize", Label: "spam"},
		{ID: 2, Text: "lunch today?", Label: "ham"},
	}
	if !reflect.DeepEqual(docs, want) {
		t.Errorf("docs = %v, want %v", docs, want)
	}
}

func TestReadHTMLMissingTable(t *testing.T) {
	if _, err := ReadHTML(strings.NewReader("<html><body><p>no table</p></body></html>")); err == nil {
		t.Error("expected error for document without a table")
	}
}

func TestReadHTMLMissingColumn(t *testing.T) {
	input := `<table><tr><th>Label</th><th>Text</th></tr><tr><td>a</td><td>b</td></tr></table>`
	if _, err := ReadHTML(strings.NewReader(input)); err == nil {
		t.Error("expected error for header without required columns")
	}
}

func TestIDsAndLabels(t *testing.T) {
	docs := []Document{
		{ID: 1, Text: "a", Label: "spam"},
		{ID: 2, Text: "b", Label: "ham"},
	}
	if !reflect.DeepEqual(IDs(docs), []int{1, 2}) {
		t.Errorf("IDs = %v", IDs(docs))
	}
	labels := Labels(docs)
	if labels[1] != "spam" || labels[2] != "ham" {
		t.Errorf("Labels = %v", labels)
	}
}
