// Package registry holds the static catalog of template placeholder
// tokens, grouped into categories, plus lookup, filtering and
// context-aware suggestions.
package registry

import (
	"strings"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
)

// Categories returns the built-in categories in display order.
func Categories() []models.Category {
	out := make([]models.Category, 0, len(categoryOrder))
	for _, id := range categoryOrder {
		out = append(out, categoryMeta[id])
	}
	return out
}

// CategoryIDs returns the built-in category ids in display order.
func CategoryIDs() []models.CategoryID {
	ids := make([]models.CategoryID, len(categoryOrder))
	copy(ids, categoryOrder)
	return ids
}

// CategoryByID resolves the metadata for a category id. Unknown ids get
// a synthesized placeholder category rather than an error, so callers
// holding a stale id still render something sensible.
func CategoryByID(id models.CategoryID) models.Category {
	if meta, ok := categoryMeta[id]; ok {
		return meta
	}
	return models.Category{
		ID:          id,
		Name:        string(id),
		Icon:        "•",
		Description: "Custom category",
	}
}

// IsKnownCategory reports whether the id is one of the built-in categories.
func IsKnownCategory(id models.CategoryID) bool {
	_, ok := categoryMeta[id]
	return ok
}

// CategoryTokens returns the ordered token list of a category. The
// returned slice is a copy and safe to mutate.
func CategoryTokens(id models.CategoryID) []models.Token {
	tokens := catalog[id]
	out := make([]models.Token, len(tokens))
	copy(out, tokens)
	return out
}

// Lookup finds a token by its literal placeholder text. It scans the
// categories in display order and returns the first exact match.
func Lookup(token string) (models.Token, bool) {
	for _, id := range categoryOrder {
		for _, t := range catalog[id] {
			if t.Token == token {
				return t, true
			}
		}
	}
	return models.Token{}, false
}

// Matches reports whether a token matches the query: case-insensitive
// substring match against the literal token text, display name and
// description. An empty query matches everything.
func Matches(token models.Token, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(token.Token), q) ||
		strings.Contains(strings.ToLower(token.Name), q) ||
		strings.Contains(strings.ToLower(token.Description), q)
}

// FilterTokens returns the tokens matching the query, preserving order.
func FilterTokens(tokens []models.Token, query string) []models.Token {
	if query == "" {
		out := make([]models.Token, len(tokens))
		copy(out, tokens)
		return out
	}
	var out []models.Token
	for _, t := range tokens {
		if Matches(t, query) {
			out = append(out, t)
		}
	}
	return out
}

// stripBraces turns "{{phase.output}}" into "phase.output" for the
// display-name fallback when a token is not in the catalog.
func stripBraces(token string) string {
	s := strings.TrimPrefix(token, "{{")
	s = strings.TrimSuffix(s, "}}")
	return strings.TrimSpace(s)
}
