package pdfoutline

import (
	"strings"
	"unicode"
)

// maxHeadingWords is the longest line, in words, still considered a heading
// candidate. Longer lines are body text.
const maxHeadingWords = 20

// collectLineFeatures turns the extracted pages into one LineFeature per
// usable text line, in (page, vertical) order. It returns the features and
// the height of the first processed page, which sizes the margin zones for
// furniture detection. Empty, unprintable and over-long lines are dropped.
func collectLineFeatures(doc *DocumentContent) ([]LineFeature, float64) {
	var features []LineFeature
	var pageHeight float64

	for i, page := range doc.Pages {
		if i == 0 {
			pageHeight = page.Height
		}

		for _, line := range page.Lines {
			text := strings.TrimSpace(line.Text())
			if text == "" || !isPrintable(text) || len(strings.Fields(text)) > maxHeadingWords {
				continue
			}

			feature := LineFeature{
				Text: text,
				Page: page.Number,
			}
			for j, span := range line.Spans {
				if span.Size > feature.Size {
					feature.Size = span.Size
				}
				if span.Bold {
					feature.Bold = true
				}
				if j == 0 || span.Box.Y0 < feature.Y0 {
					feature.Y0 = span.Box.Y0
				}
				if j == 0 || span.Box.Y1 > feature.Y1 {
					feature.Y1 = span.Box.Y1
				}
			}
			features = append(features, feature)
		}
	}

	return features, pageHeight
}

// isPrintable reports whether every rune in the text is printable.
// Spaces are printable; control characters and tabs are not.
func isPrintable(text string) bool {
	for _, r := range text {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
