package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CollapseSpaces trims leading/trailing whitespace and compresses runs of
// whitespace into a single space. Case is preserved.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeText prepares text for comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	return strings.ToLower(CollapseSpaces(text))
}

// TitleCase upper-cases the first letter of every word and lower-cases the
// rest, after collapsing whitespace: "  t-shirt  PRINTING" -> "T-Shirt Printing".
func TitleCase(text string) string {
	text = CollapseSpaces(text)
	if text == "" {
		return ""
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.Und).String(text)
}

// FoldPunctuation lower-cases text and drops everything that is not a
// letter or a digit, so "T-shirt" and "tshirt" fold to the same string.
func FoldPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// DigitsOnly strips every rune that is not an ASCII digit.
func DigitsOnly(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
