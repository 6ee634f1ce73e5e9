package pdfoutline

// Margin zones as a fraction of page height. Running headers and footers
// live in the top and bottom 10% of the page.
const (
	topMarginFraction    = 0.1
	bottomMarginFraction = 0.9
)

// findRepeatedElements identifies page furniture: line texts that recur in
// the page margin zones on more than half of the processed pages. Matching
// is by exact trimmed text, case sensitive. The threshold comparison is
// strictly greater than numPages/2 (integer division), so with one page
// nothing repeated enough to be excluded unless it appears twice.
func findRepeatedElements(features []LineFeature, numPages int, pageHeight float64) map[string]struct{} {
	counts := make(map[string]int)
	for _, feature := range features {
		if feature.Y0 < pageHeight*topMarginFraction || feature.Y1 > pageHeight*bottomMarginFraction {
			counts[feature.Text]++
		}
	}

	threshold := numPages / 2
	repeated := make(map[string]struct{})
	for text, count := range counts {
		if count > threshold {
			repeated[text] = struct{}{}
		}
	}
	return repeated
}
