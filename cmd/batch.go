package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docpipe/internal/config"
	"docpipe/internal/logger"
	"docpipe/internal/pipeline"
)

var (
	batchLimit   int
	batchWorkers int
	batchTimeout int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract text for all pending records",
	Long: `Extract text for every record in the configured Firestore
collection that does not have extracted text yet.

Records are processed concurrently with a bounded number of workers.
Individual failures are logged and counted but do not stop the batch.

Examples:
  # Process up to 100 pending records with 4 workers
  docpipe batch

  # Process at most 10 records, one at a time
  docpipe batch --limit 10 --workers 1`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchLimit, "limit", 100, "Maximum number of pending records to process")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Number of records processed concurrently")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 3600, "Timeout in seconds for the whole batch")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("batch-cmd")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.HasStore() {
		return fmt.Errorf("batch processing requires a record store: set FIRESTORE_PROJECT_ID")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(batchTimeout)*time.Second)
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := pipeline.NewFromConfig(cfg, st)

	start := time.Now()
	res, err := svc.ProcessPending(ctx, batchLimit, batchWorkers)
	if err != nil {
		return fmt.Errorf("batch processing failed: %w", err)
	}

	log.Info().
		Int("processed", res.Processed).
		Int("succeeded", res.Succeeded).
		Int("used_ocr", res.UsedOCR).
		Int("failed", res.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("Batch completed")

	fmt.Printf("Processed %d records: %d succeeded (%d via OCR), %d failed\n",
		res.Processed, res.Succeeded, res.UsedOCR, res.Failed)
	return nil
}
