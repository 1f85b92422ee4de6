package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docpipe/internal/config"
	"docpipe/internal/logger"
	"docpipe/internal/pipeline"
	"docpipe/internal/store"
	"docpipe/pkg/models"
)

var (
	extractOutput   string
	extractJSON     bool
	extractLanguage string
	extractForce    bool
	extractTimeout  int
)

var extractCmd = &cobra.Command{
	Use:   "extract [document]",
	Short: "Extract text from a single document",
	Long: `Extract plain text from a PDF document.

The document argument can be a local file path, an http(s) URL, or the
ID of a record in the configured Firestore collection. For record IDs
the extracted text is written back to the record; file paths and URLs
are processed without persistence.

Examples:
  # Extract from a local PDF
  docpipe extract ./invoice.pdf

  # Extract from a URL, forcing the OCR language
  docpipe extract https://example.com/scan.pdf --language hin

  # Re-extract a stored record even if it already has text
  docpipe extract 9f8a2c41 --force

  # Write the result as JSON to a file
  docpipe extract ./invoice.pdf --json -o result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write result to file instead of stdout")
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "Output the result as JSON")
	extractCmd.Flags().StringVar(&extractLanguage, "language", "", "Override the OCR language (name or ISO 639 code)")
	extractCmd.Flags().BoolVar(&extractForce, "force", false, "Re-extract even when the record already has text")
	extractCmd.Flags().IntVar(&extractTimeout, "timeout", 300, "Timeout in seconds for the whole extraction")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract-cmd")
	target := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(extractTimeout)*time.Second)
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := pipeline.NewFromConfig(cfg, st)
	opts := pipeline.Options{
		LanguageOverride: extractLanguage,
		Force:            extractForce,
	}

	var res *models.ExtractionResult
	switch {
	case isURL(target):
		log.Info().Str("url", target).Msg("Extracting from URL")
		res, err = svc.ExtractDocument(ctx, &models.Document{PDFURL: target}, opts)
	case isFile(target):
		log.Info().Str("path", target).Msg("Extracting from local file")
		res, err = svc.ExtractDocument(ctx, &models.Document{PDFPath: target}, opts)
	default:
		log.Info().Str("document_id", target).Msg("Extracting stored record")
		res, err = svc.Extract(ctx, target, opts)
	}
	if err != nil {
		// A persistence failure still carries a usable result.
		if res == nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		log.Warn().Err(err).Msg("Extraction succeeded but persisting the result failed")
	}

	out, err := formatResult(res)
	if err != nil {
		return err
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().Str("path", extractOutput).Msg("Result written")
		return nil
	}

	fmt.Println(out)
	return nil
}

func formatResult(res *models.ExtractionResult) (string, error) {
	if extractJSON {
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(b), nil
	}
	return res.Text, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isFile(s string) bool {
	info, err := os.Stat(s)
	return err == nil && !info.IsDir()
}

// openStore returns the configured Firestore store, or an in-memory one
// when no project is configured so that file and URL extractions work
// without any cloud setup.
func openStore(ctx context.Context, cfg *config.Config) (store.DocumentStore, func(), error) {
	if !cfg.HasStore() {
		return store.NewMemoryStore(), func() {}, nil
	}

	fs, err := store.NewFirestoreStore(ctx, store.FirestoreConfig{
		ProjectID:  cfg.FirestoreProject,
		Database:   cfg.FirestoreDatabase,
		Collection: cfg.FirestoreCollection,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to record store: %w", err)
	}
	return fs, func() { _ = fs.Close() }, nil
}
