package corpus

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LoadHTML reads a labeled corpus from an HTML export. The first <table>
// in the document must carry a header row with Category and Message cells;
// every following row contributes one record. Error taxonomy matches
// LoadCSV: any structural problem aborts the load.
func LoadHTML(path string) ([]Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	docs, err := ReadHTML(f)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return docs, nil
}

// ReadHTML parses HTML corpus records from a reader.
func ReadHTML(r io.Reader) ([]Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found")
	}

	rows := table.Find("tr")
	if rows.Length() < 1 {
		return nil, fmt.Errorf("table has no rows")
	}

	var header []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, strings.TrimSpace(cell.Text()))
	})
	catIdx, msgIdx, err := headerIndices(header)
	if err != nil {
		return nil, err
	}

	var records []record
	var rowErr error
	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, row *goquery.Selection) bool {
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cell.Text())
		})
		if catIdx >= len(cells) || msgIdx >= len(cells) {
			rowErr = fmt.Errorf("table row %d has %d cells, need %d", i+2, len(cells), max(catIdx, msgIdx)+1)
			return false
		}
		records = append(records, record{
			category: strings.TrimSpace(cells[catIdx]),
			message:  strings.TrimSpace(cells[msgIdx]),
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	slog.Debug("Corpus loaded", "documents", len(records), "source", "html")
	return assign(records), nil
}
