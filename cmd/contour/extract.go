package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/heading"
	"github.com/tsawler/contour/model"
)

var extractCmd = &cobra.Command{
	Use:   "extract [input-dir]",
	Short: "Extract outlines from all PDFs in a directory",
	Long: `Extract processes every *.pdf file in the input directory (default
./input) and writes a JSON outline per document to the output
directory, named after the source file.

Failures on individual files are logged and skipped; the command only
fails when no file could be processed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringP("output", "o", "", "output directory (default: ./output)")
	extractCmd.Flags().Int("max-pages", 0, "maximum pages to read per document (default: 50)")
	extractCmd.Flags().String("strictness", "", "candidate filter strictness: lenient, normal, strict")

	_ = viper.BindPFlag("output", extractCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("max_pages", extractCmd.Flags().Lookup("max-pages"))
	_ = viper.BindPFlag("strictness", extractCmd.Flags().Lookup("strictness"))
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputDir := "./input"
	if len(args) > 0 {
		inputDir = args[0]
	}
	outputDir := viper.GetString("output")
	maxPages := viper.GetInt("max_pages")
	strictness := heading.ParseStrictness(viper.GetString("strictness"))

	pdfFiles, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("scan input directory: %w", err)
	}
	if len(pdfFiles) == 0 {
		slog.Warn("no PDF files found", "dir", inputDir)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	slog.Info("processing documents", "count", len(pdfFiles), "input", inputDir, "output", outputDir)

	processed := 0
	for _, pdfFile := range pdfFiles {
		outline, err := contour.Open(pdfFile).
			MaxPages(maxPages).
			Strictness(strictness).
			Outline()
		if err != nil {
			slog.Error("failed to process document", "file", filepath.Base(pdfFile), "error", err)
			continue
		}

		if jumps := heading.LevelJumps(outline.Outline); len(jumps) > 0 {
			slog.Debug("outline has level jumps", "file", filepath.Base(pdfFile), "positions", jumps)
		}

		outPath := outputPath(outputDir, pdfFile)
		if err := writeJSON(outPath, outline); err != nil {
			slog.Error("failed to write outline", "file", outPath, "error", err)
			continue
		}

		slog.Info("processed document",
			"file", filepath.Base(pdfFile),
			"headings", len(outline.Outline),
			"title", outline.Title,
		)
		processed++
	}

	slog.Info("processing complete", "processed", processed, "total", len(pdfFiles))
	if processed == 0 {
		return fmt.Errorf("no documents could be processed")
	}
	return nil
}

// outputPath maps an input PDF path to its JSON output path.
func outputPath(outputDir, pdfFile string) string {
	stem := strings.TrimSuffix(filepath.Base(pdfFile), filepath.Ext(pdfFile))
	return filepath.Join(outputDir, stem+".json")
}

// writeJSON writes the outline as indented UTF-8 JSON, preserving
// non-ASCII text.
func writeJSON(path string, outline *model.DocumentOutline) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(outline)
}
