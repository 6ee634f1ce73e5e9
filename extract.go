package pdfoutline

import (
	"math"
	"sort"

	"github.com/klippa-app/go-pdfium"
	"github.com/klippa-app/go-pdfium/references"
	"github.com/klippa-app/go-pdfium/requests"
	"github.com/pkg/errors"
)

// extractedChar is a single character with the typographic metadata the
// outline pipeline cares about.
type extractedChar struct {
	Text rune
	Box  Rect
	Size float64
	Bold bool
}

// extractPageContent extracts the text lines of a PDF page with size and
// style metadata.
func extractPageContent(instance pdfium.Pdfium, page references.FPDF_PAGE, pageNumber int) (*PageContent, error) {
	pageWidth, err := instance.FPDF_GetPageWidthF(&requests.FPDF_GetPageWidthF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page width")
	}

	pageHeight, err := instance.FPDF_GetPageHeightF(&requests.FPDF_GetPageHeightF{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get page height")
	}

	result := &PageContent{
		Number: pageNumber,
		Width:  float64(pageWidth.PageWidth),
		Height: float64(pageHeight.PageHeight),
	}

	textPage, err := instance.FPDFText_LoadPage(&requests.FPDFText_LoadPage{
		Page: requests.Page{
			ByReference: &page,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load text page")
	}
	defer instance.FPDFText_ClosePage(&requests.FPDFText_ClosePage{
		TextPage: textPage.TextPage,
	})

	charCount, err := instance.FPDFText_CountChars(&requests.FPDFText_CountChars{
		TextPage: textPage.TextPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count characters")
	}

	if charCount.Count == 0 {
		return result, nil
	}

	chars, err := extractChars(instance, textPage.TextPage, charCount.Count, result.Height)
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract characters")
	}

	spans := groupCharsIntoSpans(chars)
	spans = expandLigatures(spans)
	spans = deduplicateCJKGlyphs(spans)

	result.Lines = groupSpansIntoLines(spans)
	return result, nil
}

// extractChars reads every character of a text page with its font size,
// weight and bounding box. Characters that cannot be read are skipped.
func extractChars(instance pdfium.Pdfium, textPage references.FPDF_TEXTPAGE, count int, pageHeight float64) ([]extractedChar, error) {
	chars := make([]extractedChar, 0, count)

	for i := range count {
		unicodeRes, err := instance.FPDFText_GetUnicode(&requests.FPDFText_GetUnicode{
			TextPage: textPage,
			Index:    i,
		})
		if err != nil || unicodeRes.Unicode == 0 {
			continue
		}

		charBox, err := instance.FPDFText_GetCharBox(&requests.FPDFText_GetCharBox{
			TextPage: textPage,
			Index:    i,
		})
		if err != nil {
			continue
		}

		// Convert PDF coordinates (origin bottom-left) to top-left origin
		box := Rect{
			X0: charBox.Left,
			Y0: pageHeight - charBox.Top,
			X1: charBox.Right,
			Y1: pageHeight - charBox.Bottom,
		}

		fontSize, err := instance.FPDFText_GetFontSize(&requests.FPDFText_GetFontSize{
			TextPage: textPage,
			Index:    i,
		})
		fontSizeVal := 12.0 // Default
		if err == nil {
			fontSizeVal = fontSize.FontSize
		}

		fontWeight, err := instance.FPDFText_GetFontWeight(&requests.FPDFText_GetFontWeight{
			TextPage: textPage,
			Index:    i,
		})
		fontWeightVal := 400 // Default normal weight
		if err == nil {
			fontWeightVal = fontWeight.FontWeight
		}

		chars = append(chars, extractedChar{
			Text: rune(unicodeRes.Unicode),
			Box:  box,
			Size: fontSizeVal,
			Bold: fontWeightVal >= 700,
		})
	}

	return chars, nil
}

// groupCharsIntoSpans splits the character stream on whitespace and
// aggregates each run into a TextSpan. The span size is the maximum
// character size in the run; the span is bold if any character is.
func groupCharsIntoSpans(chars []extractedChar) []TextSpan {
	if len(chars) == 0 {
		return nil
	}

	var spans []TextSpan
	var current []extractedChar
	var box Rect

	flush := func() {
		if len(current) == 0 {
			return
		}
		spans = append(spans, aggregateSpan(current, box))
		current = nil
	}

	for _, char := range chars {
		if char.Text == ' ' || char.Text == '\t' || char.Text == '\n' || char.Text == '\r' {
			flush()
			continue
		}

		if len(current) == 0 {
			box = char.Box
		} else {
			box.X0 = math.Min(box.X0, char.Box.X0)
			box.Y0 = math.Min(box.Y0, char.Box.Y0)
			box.X1 = math.Max(box.X1, char.Box.X1)
			box.Y1 = math.Max(box.Y1, char.Box.Y1)
		}
		current = append(current, char)
	}
	flush()

	return spans
}

func aggregateSpan(chars []extractedChar, box Rect) TextSpan {
	var text string
	var size float64
	var bold bool
	for _, char := range chars {
		text += string(char.Text)
		if char.Size > size {
			size = char.Size
		}
		if char.Bold {
			bold = true
		}
	}
	return TextSpan{
		Text: text,
		Size: size,
		Bold: bold,
		Box:  box,
	}
}

// groupSpansIntoLines groups spans that share a baseline into lines,
// ordered top to bottom and left to right.
func groupSpansIntoLines(spans []TextSpan) []TextLine {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]TextSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		baselineDiff := math.Abs(sorted[i].Box.Y1 - sorted[j].Box.Y1)
		if baselineDiff < 3 { // Same line threshold in points
			return sorted[i].Box.X0 < sorted[j].Box.X0
		}
		return sorted[i].Box.Y1 < sorted[j].Box.Y1
	})

	var lines []TextLine
	var current []TextSpan
	var lineBox Rect
	var baseline float64

	for i, span := range sorted {
		if len(current) == 0 {
			current = []TextSpan{span}
			lineBox = span.Box
			baseline = span.Box.Y1
		} else if math.Abs(span.Box.Y1-baseline) < 3 {
			current = append(current, span)
			lineBox.X0 = math.Min(lineBox.X0, span.Box.X0)
			lineBox.Y0 = math.Min(lineBox.Y0, span.Box.Y0)
			lineBox.X1 = math.Max(lineBox.X1, span.Box.X1)
			lineBox.Y1 = math.Max(lineBox.Y1, span.Box.Y1)
		} else {
			lines = append(lines, TextLine{Spans: current, Box: lineBox})
			current = []TextSpan{span}
			lineBox = span.Box
			baseline = span.Box.Y1
		}

		if i == len(sorted)-1 && len(current) > 0 {
			lines = append(lines, TextLine{Spans: current, Box: lineBox})
		}
	}

	return lines
}

// ligatureMap maps ligature unicode codepoints to their expanded forms
var ligatureMap = map[rune]string{
	0xFB00: "ff",
	0xFB01: "fi",
	0xFB02: "fl",
	0xFB03: "ffi",
	0xFB04: "ffl",
	0xFB05: "ft",
	0xFB06: "st",
}

// expandLigatures expands ligature characters into their component letters
func expandLigatures(spans []TextSpan) []TextSpan {
	for i := range spans {
		span := &spans[i]
		runes := []rune(span.Text)
		hasLigature := false
		for _, r := range runes {
			if _, ok := ligatureMap[r]; ok {
				hasLigature = true
				break
			}
		}
		if !hasLigature {
			continue
		}

		var expanded []rune
		for _, r := range runes {
			if expansion, ok := ligatureMap[r]; ok {
				expanded = append(expanded, []rune(expansion)...)
			} else {
				expanded = append(expanded, r)
			}
		}
		span.Text = string(expanded)
	}
	return spans
}

// isCJKIdeograph checks if a rune is in a CJK ideograph block.
func isCJKIdeograph(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // Extension A
		(r >= 0xF900 && r <= 0xFAFF) // Compatibility Ideographs
}

// deduplicateCJKGlyphs removes duplicate consecutive CJK characters that
// render at nearly identical positions (an artifact in some PDFs).
func deduplicateCJKGlyphs(spans []TextSpan) []TextSpan {
	for i := range spans {
		span := &spans[i]
		runes := []rune(span.Text)
		if len(runes) <= 1 {
			continue
		}

		hasCJKRune := false
		for _, r := range runes {
			if isCJKIdeograph(r) {
				hasCJKRune = true
				break
			}
		}
		if !hasCJKRune {
			continue
		}

		deduplicated := []rune{runes[0]}
		for j := 1; j < len(runes); j++ {
			if runes[j] == runes[j-1] && isCJKIdeograph(runes[j]) {
				// Overlapping duplicate glyphs leave the span narrower than
				// its character count implies.
				avgCharWidth := span.Box.Width() / float64(len(runes))
				if avgCharWidth < span.Size*0.7 {
					continue
				}
			}
			deduplicated = append(deduplicated, runes[j])
		}
		span.Text = string(deduplicated)
	}
	return spans
}
