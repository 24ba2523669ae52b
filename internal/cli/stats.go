package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/happyhackingspace/bow"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCommand() *cobra.Command {
	var (
		input      string
		stopwords  string
		format     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the vocabulary of a labeled corpus",
		Example: `  # Corpus and vocabulary summary
  bow stats --input spam.csv --stopwords english.txt

  # Tune the top-term list via config
  bow stats --input spam.csv --config bow.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runPipeline(input, format, stopwords, configPath)
			if err != nil {
				return err
			}
			fmt.Println(renderSummary(res.Summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Corpus file with Category and Message columns")
	cmd.Flags().StringVar(&stopwords, "stopwords", "", "Line-delimited stopword file")
	cmd.Flags().StringVar(&format, "format", "csv", "Corpus format: csv or html")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML config file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func renderSummary(s bow.Summary) string {
	var b strings.Builder

	corpusRows := [][]string{
		{"Documents", strconv.Itoa(s.Documents)},
		{"Vocabulary size", strconv.Itoa(s.VocabularySize)},
		{"Non-zero cells", strconv.Itoa(s.NonZeroCells)},
		{"Singleton terms", strconv.Itoa(s.Singletons)},
		{fmt.Sprintf("Terms with total > %d", s.HighFreqThreshold), strconv.Itoa(s.HighFrequency)},
		{"Messages with URLs", strconv.Itoa(s.LinkMessages)},
	}
	b.WriteString(renderTable(
		[]string{"Corpus", "Value"},
		corpusRows,
		[]columnAlignment{alignLeft, alignRight},
	))
	b.WriteString("\n\n")

	labelRows := make([][]string, 0, len(s.Labels))
	for _, lc := range s.Labels {
		labelRows = append(labelRows, []string{lc.Label, strconv.Itoa(lc.Count)})
	}
	b.WriteString(renderTable(
		[]string{"Label", "Documents"},
		labelRows,
		[]columnAlignment{alignLeft, alignRight},
	))
	b.WriteString("\n\n")

	termRows := make([][]string, 0, len(s.TopTerms))
	for i, ts := range s.TopTerms {
		termRows = append(termRows, []string{strconv.Itoa(i + 1), ts.Term, strconv.Itoa(ts.Total)})
	}
	b.WriteString(renderTable(
		[]string{"#", "Term", "Total"},
		termRows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	))

	if len(s.LinkDomains) > 0 {
		b.WriteString("\n\nLink domains: ")
		b.WriteString(strings.Join(s.LinkDomains, ", "))
	}
	return b.String()
}
