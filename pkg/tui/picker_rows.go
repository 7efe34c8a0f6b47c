package tui

import (
	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// rowKind distinguishes the selectable rows of the picker.
type rowKind int

const (
	rowSuggested rowKind = iota
	rowRecent
	rowCategoryHeader
	rowToken
	rowCustomToken
)

// row is one selectable line of the rendered picker. Section labels
// are rendering chrome, not rows.
type row struct {
	kind       rowKind
	category   models.CategoryID
	token      models.Token
	suggestion registry.Suggestion
	matchCount int // header rows: tokens matching the current filter
}

// recentTokens returns the tracked recent list, empty without a tracker.
func (p *Picker) recentTokens() []string {
	if p.cfg.Tracker == nil {
		return nil
	}
	return p.cfg.Tracker.Tokens()
}

// visibleRows computes the selectable rows for the current view state.
// The same computation backs both rendering and key handling, so the
// cursor can never point at something that is not on screen.
func (p *Picker) visibleRows() []row {
	query := p.search.Value()
	var rows []row

	// Suggested and recent strips only exist outside of a search.
	if query == "" {
		for _, s := range registry.SuggestedTokens(p.recentTokens()) {
			rows = append(rows, row{kind: rowSuggested, token: s.Token, suggestion: s})
		}
		if p.cfg.ShowRecent {
			for _, tok := range p.recentTokens() {
				rows = append(rows, row{kind: rowRecent, token: registry.AnnotateToken(tok)})
			}
		}
	}

	for _, id := range p.cfg.Categories {
		matching := registry.FilterTokens(registry.CategoryTokens(id), query)
		if len(matching) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowCategoryHeader, category: id, matchCount: len(matching)})
		if p.isExpanded(id) {
			for _, tok := range matching {
				rows = append(rows, row{kind: rowToken, category: id, token: tok})
			}
		}
	}

	// Custom tokens render unconditionally expanded.
	for _, tok := range registry.FilterTokens(p.cfg.CustomTokens, query) {
		rows = append(rows, row{kind: rowCustomToken, token: tok})
	}

	return rows
}
