package pdfoutline

import "strings"

// metaTitlePrefix is the junk prefix some converters leave in PDF metadata.
const metaTitlePrefix = "Microsoft Word - "

// extractTitle resolves the document title. Priority order: cleaned
// document metadata, then the largest bold span of at least minBoldSize
// points on the first page, then the largest non-empty span on the first
// page, then the fallback. Ties on size keep the first span in document
// order. The result is always non-empty.
func extractTitle(doc *DocumentContent, minBoldSize float64, fallback string) string {
	if title := cleanMetaTitle(doc.MetaTitle); title != "" {
		return title
	}

	if len(doc.Pages) > 0 {
		first := doc.Pages[0]

		var boldText string
		var boldSize float64
		for _, line := range first.Lines {
			for _, span := range line.Spans {
				text := strings.TrimSpace(span.Text)
				if text != "" && span.Bold && span.Size >= minBoldSize && span.Size > boldSize {
					boldText = text
					boldSize = span.Size
				}
			}
		}
		if boldText != "" {
			return boldText
		}

		var largestText string
		var largestSize float64
		for _, line := range first.Lines {
			for _, span := range line.Spans {
				text := strings.TrimSpace(span.Text)
				if text != "" && span.Size > largestSize {
					largestText = text
					largestSize = span.Size
				}
			}
		}
		if largestText != "" {
			return largestText
		}
	}

	return fallback
}

// cleanMetaTitle trims a metadata title and strips the artifacts word
// processors leave behind: a "Microsoft Word - " prefix and a trailing
// ".doc"/".docx" suffix.
func cleanMetaTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	title = strings.TrimPrefix(title, metaTitlePrefix)
	if strings.HasSuffix(title, ".docx") {
		title = strings.TrimSuffix(title, ".docx")
	} else {
		title = strings.TrimSuffix(title, ".doc")
	}
	return title
}
