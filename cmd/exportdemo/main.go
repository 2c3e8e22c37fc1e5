package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"innotools-backend/document/extract"
	"innotools-backend/internal/bootstrap"
	"innotools-backend/internal/export"
	"innotools-backend/internal/recommend"
	"innotools-backend/internal/shared/config"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for generated documents")
	toolID := flag.String("tool", "", "tool id to render (defaults to the first catalog entry)")
	flag.Parse()

	cfg := config.Load()
	// Always demo the deterministic path regardless of local credentials.
	cfg.OpenAIAPIKey = ""

	app, err := bootstrap.Build(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	id := *toolID
	if id == "" {
		tools := app.Catalog.All()
		if len(tools) == 0 {
			fmt.Fprintln(os.Stderr, "catalog is empty")
			os.Exit(1)
		}
		id = tools[0].ID
	}

	uc := &recommend.UserContext{
		Goal:          "improve team ideation sessions",
		TeamSize:      "6 people",
		TimeAvailable: "60",
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	for _, format := range []export.Format{export.FormatPDF, export.FormatDOCX} {
		doc, err := app.ExportService.Render(context.Background(), format, id, uc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "render %s failed: %v\n", format, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, doc.FileName)
		if err := os.WriteFile(path, doc.Bytes, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		if err := validateOutput(format, doc.Bytes); err != nil {
			fmt.Fprintf(os.Stderr, "validation failed for %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", path)
	}
}

func validateOutput(format export.Format, data []byte) error {
	var (
		text string
		err  error
	)
	switch format {
	case export.FormatPDF:
		text, err = extract.PDFText(data)
	case export.FormatDOCX:
		text, err = extract.DOCXText(data)
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no extractable text in %s output", format)
	}
	return nil
}
