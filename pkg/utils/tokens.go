package utils

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{[^{}]+\}\}`)

// ExtractTokens returns every {{...}} placeholder in the text, in
// order of appearance, duplicates included.
func ExtractTokens(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// CountTokens returns the number of distinct placeholders in the text.
func CountTokens(text string) int {
	seen := map[string]bool{}
	for _, tok := range ExtractTokens(text) {
		seen[tok] = true
	}
	return len(seen)
}

// HasToken reports whether the text contains the given placeholder.
func HasToken(text, token string) bool {
	return strings.Contains(text, token)
}
