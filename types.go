package pdfoutline

// Rect represents a bounding box in page coordinates.
// Y increases downward (origin top-left, after conversion from PDF coordinates).
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// TextSpan is a run of text with uniform style, produced by the extraction
// layer. Spans are read-only to the analysis pipeline.
type TextSpan struct {
	Text string
	Size float64
	Bold bool
	Box  Rect
}

// TextLine is an ordered sequence of spans sharing a baseline.
type TextLine struct {
	Spans []TextSpan
	Box   Rect
}

// Text returns the joined span text of the line, space separated.
func (l TextLine) Text() string {
	var result string
	for i, span := range l.Spans {
		result += span.Text
		if i < len(l.Spans)-1 {
			result += " "
		}
	}
	return result
}

// PageContent holds the extracted lines of one page.
type PageContent struct {
	Number int // 1-based
	Width  float64
	Height float64
	Lines  []TextLine
}

// DocumentContent is the normalized input to the outline pipeline:
// the processed pages plus document-level metadata.
type DocumentContent struct {
	Pages     []PageContent
	MetaTitle string
}

// LineFeature is the per-line typographic record the pipeline operates on.
// Size is the maximum span size on the line, Bold is true if any span on the
// line is bold, Y0/Y1 span the vertical extent across all spans.
type LineFeature struct {
	Text string
	Size float64
	Bold bool
	Y0   float64
	Y1   float64
	Page int // 1-based
}

// HeadingLevels holds the font sizes assigned to the three heading ranks.
// A size of 0 is padding for documents with fewer than three distinct sizes
// and matches nothing.
type HeadingLevels struct {
	H1 float64
	H2 float64
	H3 float64
}

// Heading level labels used in the output artifact.
const (
	LevelH1 = "H1"
	LevelH2 = "H2"
	LevelH3 = "H3"
)

// OutlineEntry is a single inferred heading.
type OutlineEntry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// DocumentOutline is the terminal artifact: a title plus the inferred
// headings in document order.
type DocumentOutline struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}
