package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/happyhackingspace/bow"
	"github.com/happyhackingspace/bow/internal/config"
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCommand() *cobra.Command {
	var (
		input      string
		stopwords  string
		output     string
		format     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a document-term matrix from a labeled corpus",
		Example: `  # Build from a CSV corpus
  bow build --input spam.csv --stopwords english.txt --output dtm.csv

  # Build from an HTML table export
  bow build --input export.html --format html --stopwords english.txt --output dtm.csv

  # Use a config file for stopwords and tuning
  bow build --input spam.csv --config bow.toml --output dtm.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runPipeline(input, format, stopwords, configPath)
			if err != nil {
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := res.WriteCSV(f); err != nil {
				_ = f.Close()
				_ = os.Remove(output)
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			slog.Info("Matrix written", "path", output,
				"documents", res.Summary.Documents,
				"vocabulary", res.Summary.VocabularySize,
				"nnz", res.Summary.NonZeroCells)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Corpus file with Category and Message columns")
	cmd.Flags().StringVar(&stopwords, "stopwords", "", "Line-delimited stopword file")
	cmd.Flags().StringVar(&output, "output", "dtm.csv", "Output matrix CSV path")
	cmd.Flags().StringVar(&format, "format", "csv", "Corpus format: csv or html")
	cmd.Flags().StringVar(&configPath, "config", "", "Optional TOML config file")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// runPipeline loads configuration, stopwords, and the corpus, then runs the
// full build. Any missing or unreadable resource aborts before processing.
func runPipeline(input, format, stopwordsFlag, configPath string) (*bow.Result, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, err
		}
	}
	stopwordsPath := cfg.Stopwords
	if stopwordsFlag != "" {
		stopwordsPath = stopwordsFlag
	}

	var stops *bow.Stopwords
	if stopwordsPath != "" {
		var err error
		stops, err = bow.LoadStopwords(stopwordsPath)
		if err != nil {
			return nil, err
		}
		slog.Debug("Stopwords loaded", "path", stopwordsPath, "terms", stops.Len())
	} else {
		slog.Warn("No stopword file configured, keeping all terms")
	}

	var docs []bow.Document
	var err error
	switch format {
	case "csv":
		docs, err = bow.LoadCorpusCSV(input)
	case "html":
		docs, err = bow.LoadCorpusHTML(input)
	default:
		return nil, fmt.Errorf("unknown corpus format %q (want csv or html)", format)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("Corpus loaded", "path", input, "documents", len(docs))

	start := time.Now()
	res, err := bow.Build(docs, stops, &bow.Config{
		Workers:           cfg.Workers,
		TopTerms:          cfg.TopTerms,
		HighFreqThreshold: cfg.HighFreqThreshold,
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("Pipeline complete", "duration", time.Since(start))
	return res, nil
}
