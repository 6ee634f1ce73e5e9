package pdfoutline

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// numeralPattern matches page numbers and bare section numerals like "3.2.".
var numeralPattern = regexp.MustCompile(`^[\d.]+$`)

// formWords is the closed vocabulary of form-field terms. Lines dominated
// by these words are field labels in government/HR form documents, not
// headings. Treated as configuration data; Config.FormWords overrides it.
var formWords = map[string]struct{}{
	"name": {}, "age": {}, "date": {}, "rs": {}, "s.no": {}, "sno": {},
	"signature": {}, "designation": {}, "service": {}, "pay": {}, "si": {},
	"npa": {}, "permanent": {}, "temporary": {}, "home": {}, "town": {},
	"recorded": {}, "book": {}, "wife": {}, "husband": {}, "employed": {},
	"entitled": {}, "ltc": {}, "concession": {}, "availed": {}, "visiting": {},
	"block": {}, "india": {}, "place": {}, "visited": {}, "single": {},
	"rail": {}, "fare": {}, "bus": {}, "from": {}, "headquarters": {},
	"shortest": {}, "route": {}, "persons": {}, "respect": {}, "whom": {},
	"proposed": {}, "relationship": {}, "amount": {}, "advance": {},
	"required": {}, "declare": {}, "particulars": {}, "furnished": {},
	"true": {}, "correct": {}, "knowledge": {}, "undertake": {},
	"produce": {}, "tickets": {}, "outward": {}, "journey": {},
	"receipt": {}, "refund": {}, "entire": {}, "lump": {}, "sum": {},
}

// isValidHeading reports whether a candidate line text looks like a real
// heading. It rejects very short text, bare numerals, short single words,
// lines dominated by form-field vocabulary, label-style lines ending in a
// colon, and lines too long to be headings. The check is purely textual;
// font size and position play no part.
func isValidHeading(text string, vocabulary map[string]struct{}) bool {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < 3 {
		return false
	}

	words := strings.Fields(text)
	if numeralPattern.MatchString(text) || (len(words) == 1 && utf8.RuneCountInString(text) < 4) {
		return false
	}

	if vocabulary == nil {
		vocabulary = formWords
	}
	formCount := 0
	for _, word := range words {
		if _, ok := vocabulary[strings.ToLower(word)]; ok {
			formCount++
		}
	}
	if float64(formCount) > float64(len(words))*0.8 {
		return false
	}

	if strings.HasSuffix(text, ":") || len(words) > 10 {
		return false
	}
	return true
}
