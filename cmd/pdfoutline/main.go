package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/urfave/cli/v3"

	"github.com/ivanvanderbyl/pdfoutline"
)

func main() {
	cmd := &cli.Command{
		Name:  "pdfoutline",
		Usage: "Infer document outlines (title + H1/H2/H3 headings) from PDF typography",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input directory containing PDF files",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output directory for JSON outlines",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Number of documents processed concurrently",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "max-pages",
				Usage: "Maximum pages analyzed per document",
				Value: 50,
			},
		},
		Action: extractOutlines,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func extractOutlines(_ context.Context, cmd *cli.Command) error {
	inputDir := cmd.String("input")
	outputDir := cmd.String("output")
	workers := cmd.Int("workers")
	if workers < 1 {
		workers = 1
	}

	config := pdfoutline.DefaultConfig()
	config.MaxPages = cmd.Int("max-pages")

	// Initialise pdfium with one instance per worker
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  workers,
		MaxTotal: workers,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	files, err := pdfoutline.ListPDFFiles(inputDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d PDF files with %d workers...\n", len(files), workers)

	jobs := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var processed, failed int

	for w := 0; w < workers; w++ {
		instance, err := pool.GetInstance(time.Second * 30)
		if err != nil {
			return fmt.Errorf("failed to get pdfium instance: %w", err)
		}
		extractor := pdfoutline.NewExtractorWithConfig(instance, config)

		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				outline, err := extractor.ExtractFile(file)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", file, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}

				outPath := pdfoutline.OutputPathFor(file, outputDir)
				if err := pdfoutline.WriteOutlineFile(outline, outPath); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}

				fmt.Fprintf(os.Stderr, "Processed %s -> %s\n", file, outPath)
				mu.Lock()
				processed++
				mu.Unlock()
			}
		}()
	}

	for _, file := range files {
		jobs <- file
	}
	close(jobs)
	wg.Wait()

	fmt.Fprintf(os.Stderr, "Complete: %d processed, %d failed\n", processed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(files))
	}
	return nil
}
