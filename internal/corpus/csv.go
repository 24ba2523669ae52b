package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoadCSV reads a labeled corpus from a CSV file with a header row carrying
// Category and Message columns in any order. A missing file, missing
// required column, or malformed row aborts the load: no partial corpus is
// ever returned.
func LoadCSV(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	docs, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return docs, nil
}

// ReadCSV parses CSV corpus records from a reader.
func ReadCSV(r io.Reader) ([]Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty corpus")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	catIdx, msgIdx, err := headerIndices(header)
	if err != nil {
		return nil, err
	}

	var records []record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		if catIdx >= len(row) || msgIdx >= len(row) {
			return nil, fmt.Errorf("row %d has %d fields, need %d", len(records)+2, len(row), max(catIdx, msgIdx)+1)
		}
		records = append(records, record{
			category: strings.TrimSpace(row[catIdx]),
			message:  row[msgIdx],
		})
	}

	slog.Debug("Corpus loaded", "documents", len(records))
	return assign(records), nil
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
