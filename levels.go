package pdfoutline

import "sort"

// headingLevels derives the three heading font sizes from the size
// frequency distribution of the collected features. Body text dominates a
// typical document's size histogram while headings use a few distinct
// larger sizes, so the three most frequent sizes approximate the heading
// ranks once ordered largest first. Equal frequencies are broken by size
// descending to keep the result deterministic. Missing ranks are padded
// with 0, which matches nothing.
func headingLevels(features []LineFeature) HeadingLevels {
	counts := make(map[float64]int)
	for _, feature := range features {
		counts[feature.Size]++
	}

	sizes := make([]float64, 0, len(counts))
	for size := range counts {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool {
		if counts[sizes[i]] != counts[sizes[j]] {
			return counts[sizes[i]] > counts[sizes[j]]
		}
		return sizes[i] > sizes[j]
	})

	if len(sizes) > 3 {
		sizes = sizes[:3]
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	for len(sizes) < 3 {
		sizes = append(sizes, 0)
	}

	return HeadingLevels{H1: sizes[0], H2: sizes[1], H3: sizes[2]}
}

// levelFor assigns a heading level to a line by font size. Branches are
// evaluated H1 first, so when thresholds collide the higher rank wins.
// H1 additionally requires boldness for CJK text: many CJK body fonts
// render without a distinct bold signal at the same size, so size alone
// cannot disambiguate an H1 there.
func levelFor(feature LineFeature, levels HeadingLevels) (string, bool) {
	switch {
	case levels.H1 != 0 && feature.Size == levels.H1 && (feature.Bold || !hasCJK(feature.Text)):
		return LevelH1, true
	case levels.H2 != 0 && feature.Size == levels.H2:
		return LevelH2, true
	case levels.H3 != 0 && feature.Size == levels.H3:
		return LevelH3, true
	}
	return "", false
}

// hasCJK reports whether the text contains a character in the CJK Unified
// Ideographs, Hiragana/Katakana or Hangul syllable ranges.
func hasCJK(text string) bool {
	for _, r := range text {
		if (r >= 0x4E00 && r <= 0x9FFF) ||
			(r >= 0x3040 && r <= 0x30FF) ||
			(r >= 0xAC00 && r <= 0xD7AF) {
			return true
		}
	}
	return false
}
