package pdfoutline

import (
	"io"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// Config controls outline extraction behavior.
type Config struct {
	// MaxPages caps the number of pages analyzed per document. Pages beyond
	// the cap are silently ignored (default: 50).
	MaxPages int

	// MinTitleFontSize is the smallest bold span on the first page that can
	// serve as a title when metadata carries none (default: 15).
	MinTitleFontSize float64

	// FallbackTitle is returned when neither metadata nor first-page text
	// yields a title (default: "Untitled PDF").
	FallbackTitle string

	// FormWords overrides the built-in form-field vocabulary used by the
	// heading validity filter. Nil keeps the built-in set.
	FormWords map[string]struct{}
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() Config {
	return Config{
		MaxPages:         50,
		MinTitleFontSize: 15,
		FallbackTitle:    "Untitled PDF",
	}
}

// Extractor infers document outlines from page typography using pdfium
// text extraction.
type Extractor struct {
	instance pdfium.Pdfium
	config   Config
}

// NewExtractor creates a new outline extractor with default configuration.
func NewExtractor(instance pdfium.Pdfium) *Extractor {
	return &Extractor{
		instance: instance,
		config:   DefaultConfig(),
	}
}

// NewExtractorWithConfig creates a new outline extractor with custom configuration.
func NewExtractorWithConfig(instance pdfium.Pdfium, config Config) *Extractor {
	return &Extractor{
		instance: instance,
		config:   config,
	}
}

// ExtractFile infers the outline of a PDF file.
func (e *Extractor) ExtractFile(filePath string) (*DocumentOutline, error) {
	doc, err := e.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, &DocumentError{Path: filePath, Err: errors.Wrap(err, "failed to open PDF document")}
	}
	defer e.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	outline, err := e.extractDocument(doc.Document)
	if err != nil {
		return nil, &DocumentError{Path: filePath, Err: err}
	}
	return outline, nil
}

// ExtractBytes infers the outline of a PDF held in memory.
func (e *Extractor) ExtractBytes(pdfBytes []byte) (*DocumentOutline, error) {
	doc, err := e.instance.OpenDocument(&requests.OpenDocument{
		File: &pdfBytes,
	})
	if err != nil {
		return nil, &DocumentError{Err: errors.Wrap(err, "failed to open PDF document")}
	}
	defer e.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	outline, err := e.extractDocument(doc.Document)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return outline, nil
}

// ExtractReader infers the outline of a PDF from an io.ReadSeeker.
func (e *Extractor) ExtractReader(reader io.ReadSeeker) (*DocumentOutline, error) {
	doc, err := e.instance.OpenDocument(&requests.OpenDocument{
		FileReader: reader,
	})
	if err != nil {
		return nil, &DocumentError{Err: errors.Wrap(err, "failed to open PDF document")}
	}
	defer e.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	outline, err := e.extractDocument(doc.Document)
	if err != nil {
		return nil, &DocumentError{Err: err}
	}
	return outline, nil
}

// extractDocument runs the full pipeline over an open document.
func (e *Extractor) extractDocument(docRef references.FPDF_DOCUMENT) (*DocumentOutline, error) {
	pageCount, err := e.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: docRef,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}
	if pageCount.PageCount == 0 {
		return nil, errors.New("document has no pages")
	}

	numPages := pageCount.PageCount
	if numPages > e.config.MaxPages {
		numPages = e.config.MaxPages
	}

	content := &DocumentContent{
		Pages: make([]PageContent, 0, numPages),
	}

	// Missing or unreadable metadata is not an error; the title chain has
	// first-page fallbacks.
	meta, err := e.instance.FPDF_GetMetaText(&requests.FPDF_GetMetaText{
		Document: docRef,
		Tag:      "Title",
	})
	if err == nil {
		content.MetaTitle = meta.Value
	}

	for i := 0; i < numPages; i++ {
		page, err := e.extractPage(docRef, i)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to extract page %d", i+1)
		}
		content.Pages = append(content.Pages, *page)
	}

	return assembleOutline(content, e.config), nil
}

// extractPage loads a single page and extracts its text lines.
func (e *Extractor) extractPage(docRef references.FPDF_DOCUMENT, pageIndex int) (*PageContent, error) {
	pageResp, err := e.instance.FPDF_LoadPage(&requests.FPDF_LoadPage{
		Document: docRef,
		Index:    pageIndex,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load page")
	}
	defer e.instance.FPDF_ClosePage(&requests.FPDF_ClosePage{
		Page: pageResp.Page,
	})

	page, err := extractPageContent(e.instance, pageResp.Page, pageIndex+1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract page content")
	}
	return page, nil
}

// assembleOutline runs the analysis pipeline over normalized document
// content: collect per-line features, drop page furniture and invalid
// candidates, classify the rest by font size, and resolve the title.
// Entries come out in document (page, vertical) order with no reordering
// or deduplication.
func assembleOutline(doc *DocumentContent, config Config) *DocumentOutline {
	features, pageHeight := collectLineFeatures(doc)
	repeated := findRepeatedElements(features, len(doc.Pages), pageHeight)
	levels := headingLevels(features)

	outline := make([]OutlineEntry, 0)
	for _, feature := range features {
		if _, isFurniture := repeated[feature.Text]; isFurniture {
			continue
		}
		if !isValidHeading(feature.Text, config.FormWords) {
			continue
		}
		if level, ok := levelFor(feature, levels); ok {
			outline = append(outline, OutlineEntry{
				Level: level,
				Text:  feature.Text,
				Page:  feature.Page,
			})
		}
	}

	return &DocumentOutline{
		Title:   extractTitle(doc, config.MinTitleFontSize, config.FallbackTitle),
		Outline: outline,
	}
}

// GetDocumentInfo returns basic information about a PDF without analyzing it.
func (e *Extractor) GetDocumentInfo(filePath string) (*DocumentInfo, error) {
	doc, err := e.instance.OpenDocument(&requests.OpenDocument{
		FilePath: &filePath,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PDF document")
	}
	defer e.instance.FPDF_CloseDocument(&requests.FPDF_CloseDocument{
		Document: doc.Document,
	})

	pageCount, err := e.instance.FPDF_GetPageCount(&requests.FPDF_GetPageCount{
		Document: doc.Document,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page count")
	}

	return &DocumentInfo{
		PageCount: pageCount.PageCount,
	}, nil
}

// DocumentInfo contains basic information about a PDF document.
type DocumentInfo struct {
	PageCount int
}
