package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docpipe/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "docpipe",
	Short: "docpipe - document text extraction with OCR fallback",
	Long: `docpipe extracts plain text from PDF documents.

Structural extraction from the PDF's content streams is tried first;
when a document turns out to be a scan with little or no embedded text,
pages are rasterized and run through Tesseract OCR instead, with the
document's language detected along the way. Results can be persisted to
a Firestore record store so each document is only processed once.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("docpipe executed")

		fmt.Println("docpipe - document text extraction with OCR fallback")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
