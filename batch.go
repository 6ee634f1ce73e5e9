package pdfoutline

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// BatchResult summarizes a directory run.
type BatchResult struct {
	Processed int
	Failed    int
	// Errors holds one DocumentError per failed file.
	Errors []error
}

// ProcessDirectory extracts an outline for every PDF in inputDir and writes
// one JSON artifact per input into outputDir, named after the input stem.
// A failing document is recorded and skipped; the remaining files are still
// processed.
func (e *Extractor) ProcessDirectory(inputDir, outputDir string) (*BatchResult, error) {
	files, err := ListPDFFiles(inputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create output directory")
	}

	result := &BatchResult{}
	for _, file := range files {
		outline, err := e.ExtractFile(file)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, err)
			continue
		}
		if err := WriteOutlineFile(outline, OutputPathFor(file, outputDir)); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, &DocumentError{Path: file, Err: err})
			continue
		}
		result.Processed++
	}
	return result, nil
}

// ListPDFFiles returns the paths of all files in dir with a case-insensitive
// .pdf suffix, sorted by name.
func ListPDFFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input directory")
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// OutputPathFor derives the JSON artifact path for an input file: the input
// stem with a .json extension, placed in outputDir.
func OutputPathFor(inputPath, outputDir string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+".json")
}

// WriteOutline serializes an outline as indented JSON. HTML escaping is
// disabled so CJK and other non-ASCII text passes through unchanged.
func WriteOutline(w io.Writer, outline *DocumentOutline) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outline); err != nil {
		return errors.Wrap(err, "failed to encode outline")
	}
	return nil
}

// WriteOutlineFile writes the JSON artifact for an outline to path.
func WriteOutlineFile(outline *DocumentOutline, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create output file")
	}

	if err := WriteOutline(f, outline); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to close output file")
}
