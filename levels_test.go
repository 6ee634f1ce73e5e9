package pdfoutline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func featuresWithSizes(sizes ...float64) []LineFeature {
	features := make([]LineFeature, len(sizes))
	for i, size := range sizes {
		features[i] = LineFeature{Text: "line", Size: size}
	}
	return features
}

func TestHeadingLevels(t *testing.T) {
	t.Run("three most frequent sizes ordered largest first", func(t *testing.T) {
		features := featuresWithSizes(
			12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // body
			18, 18, 18, // section headings
			16, 16, // subsections
			24, // one-off cover text
			14, // another one-off
		)

		levels := headingLevels(features)
		assert.Equal(t, HeadingLevels{H1: 18, H2: 16, H3: 12}, levels)
	})

	t.Run("fewer than three distinct sizes padded with zero", func(t *testing.T) {
		features := featuresWithSizes(12, 12, 12, 12, 12, 20, 20)

		levels := headingLevels(features)
		assert.Equal(t, HeadingLevels{H1: 20, H2: 12, H3: 0}, levels)
	})

	t.Run("single size", func(t *testing.T) {
		features := featuresWithSizes(12, 12)

		levels := headingLevels(features)
		assert.Equal(t, HeadingLevels{H1: 12, H2: 0, H3: 0}, levels)
	})

	t.Run("no features", func(t *testing.T) {
		levels := headingLevels(nil)
		assert.Equal(t, HeadingLevels{}, levels)
	})

	t.Run("frequency ties broken by size descending", func(t *testing.T) {
		features := featuresWithSizes(12, 12, 14, 14, 16, 16, 18, 18)

		levels := headingLevels(features)
		assert.Equal(t, HeadingLevels{H1: 18, H2: 16, H3: 14}, levels)
	})
}

func TestLevelFor(t *testing.T) {
	levels := HeadingLevels{H1: 18, H2: 16, H3: 14}

	tests := []struct {
		name    string
		feature LineFeature
		level   string
		ok      bool
	}{
		{"latin h1 without bold", LineFeature{Text: "Overview", Size: 18}, LevelH1, true},
		{"bold h1", LineFeature{Text: "Overview", Size: 18, Bold: true}, LevelH1, true},
		{"cjk h1 requires bold", LineFeature{Text: "概要", Size: 18}, "", false},
		{"cjk bold h1", LineFeature{Text: "概要", Size: 18, Bold: true}, LevelH1, true},
		{"h2", LineFeature{Text: "Details", Size: 16}, LevelH2, true},
		{"cjk h2 needs no bold", LineFeature{Text: "詳細", Size: 16}, LevelH2, true},
		{"h3", LineFeature{Text: "Notes", Size: 14}, LevelH3, true},
		{"body size", LineFeature{Text: "Body text", Size: 12}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := levelFor(tt.feature, levels)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestLevelFor_ZeroPaddingMatchesNothing(t *testing.T) {
	levels := HeadingLevels{H1: 18, H2: 0, H3: 0}

	_, ok := levelFor(LineFeature{Text: "line", Size: 0}, levels)
	assert.False(t, ok)
}

func TestLevelFor_EqualThresholdsFavorH1(t *testing.T) {
	levels := HeadingLevels{H1: 18, H2: 18, H3: 12}

	level, ok := levelFor(LineFeature{Text: "Overview", Size: 18}, levels)
	assert.True(t, ok)
	assert.Equal(t, LevelH1, level)
}

func TestHasCJK(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"latin", "Hello World", false},
		{"chinese", "文档标题", true},
		{"hiragana", "ひらがな", true},
		{"katakana", "カタカナ", true},
		{"hangul", "한국어", true},
		{"mixed", "Chapter 一", true},
		{"empty", "", false},
		{"cyrillic", "Заголовок", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hasCJK(tt.text))
		})
	}
}
