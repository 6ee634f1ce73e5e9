package pdfoutline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMetaTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"plain", "Annual Report", "Annual Report"},
		{"surrounding whitespace", "  Annual Report  ", "Annual Report"},
		{"word prefix", "Microsoft Word - Budget", "Budget"},
		{"doc suffix", "Budget.doc", "Budget"},
		{"docx suffix", "Budget.docx", "Budget"},
		{"prefix and suffix", "Microsoft Word - Budget.docx", "Budget"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMetaTitle(tt.title))
		})
	}
}

func TestExtractTitle_MetadataWins(t *testing.T) {
	doc := &DocumentContent{
		MetaTitle: "Microsoft Word - Budget.docx",
		Pages: []PageContent{
			{Number: 1, Lines: []TextLine{lineOf(TextSpan{Text: "Ignored", Size: 30, Bold: true})}},
		},
	}

	assert.Equal(t, "Budget", extractTitle(doc, 15, "Untitled PDF"))
}

func TestExtractTitle_LargestBoldSpan(t *testing.T) {
	doc := &DocumentContent{
		Pages: []PageContent{
			{
				Number: 1,
				Lines: []TextLine{
					lineOf(TextSpan{Text: "Annual Report 2024", Size: 22, Bold: true}),
					lineOf(TextSpan{Text: "Subtitle", Size: 16, Bold: true}),
					lineOf(TextSpan{Text: "Huge but not bold", Size: 40}),
				},
			},
			{
				Number: 2,
				Lines:  []TextLine{lineOf(TextSpan{Text: "Second page", Size: 50, Bold: true})},
			},
		},
	}

	assert.Equal(t, "Annual Report 2024", extractTitle(doc, 15, "Untitled PDF"))
}

func TestExtractTitle_BoldBelowMinimumIgnored(t *testing.T) {
	doc := &DocumentContent{
		Pages: []PageContent{
			{
				Number: 1,
				Lines: []TextLine{
					lineOf(TextSpan{Text: "Small bold", Size: 14, Bold: true}),
					lineOf(TextSpan{Text: "Large plain", Size: 18}),
				},
			},
		},
	}

	assert.Equal(t, "Large plain", extractTitle(doc, 15, "Untitled PDF"))
}

func TestExtractTitle_SizeTieKeepsFirst(t *testing.T) {
	doc := &DocumentContent{
		Pages: []PageContent{
			{
				Number: 1,
				Lines: []TextLine{
					lineOf(TextSpan{Text: "First", Size: 20, Bold: true}),
					lineOf(TextSpan{Text: "Second", Size: 20, Bold: true}),
				},
			},
		},
	}

	assert.Equal(t, "First", extractTitle(doc, 15, "Untitled PDF"))
}

func TestExtractTitle_Fallback(t *testing.T) {
	t.Run("no pages", func(t *testing.T) {
		assert.Equal(t, "Untitled PDF", extractTitle(&DocumentContent{}, 15, "Untitled PDF"))
	})

	t.Run("no text", func(t *testing.T) {
		doc := &DocumentContent{
			Pages: []PageContent{
				{Number: 1, Lines: []TextLine{lineOf(TextSpan{Text: "   ", Size: 30, Bold: true})}},
			},
		}
		assert.Equal(t, "Untitled PDF", extractTitle(doc, 15, "Untitled PDF"))
	})
}
