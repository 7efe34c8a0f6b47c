package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/tokenpick/tokenpick-terminal/pkg/registry"
)

// tokenDisplayWidth caps how much of a literal token appears on strip
// rows before ellipsis truncation.
const tokenDisplayWidth = 20

// displayToken truncates the literal token text for strip rows.
func displayToken(token string) string {
	return truncate.StringWithTail(token, tokenDisplayWidth, "…")
}

// View renders the picker panel. A closed popup renders nothing; the
// host composes the panel into an overlay.
func (p *Picker) View() string {
	if p.destroyed {
		return ""
	}
	// Inline pickers are always visible; popup and dropdown only while
	// open.
	if p.cfg.Mode != ModeInline && !p.open {
		return ""
	}

	var sections []string

	if p.cfg.ShowSearch {
		sections = append(sections, p.search.View())
	}

	rows := p.visibleRows()
	query := p.search.Value()

	if len(rows) == 0 {
		if query != "" {
			sections = append(sections, DimStyle.Render("  No tokens match "+fmt.Sprintf("%q", query)))
		} else {
			sections = append(sections, DimStyle.Render("  No tokens available"))
		}
	}

	var lastKind rowKind = -1
	for i, r := range rows {
		if label := sectionLabel(r.kind, lastKind); label != "" {
			sections = append(sections, SectionLabelStyle.Render(label))
		}
		lastKind = r.kind
		sections = append(sections, p.renderRow(r, i == p.cursor))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	switch p.cfg.Mode {
	case ModePopup:
		title := PopupTitleStyle.Render("Insert Token")
		help := HelpStyle.Render("↑/↓ navigate · enter insert · esc close")
		panel := lipgloss.JoinVertical(lipgloss.Left, title, body, help)
		return ActiveBorderStyle.Width(p.width).Render(panel)
	case ModeDropdown:
		return InactiveBorderStyle.Width(p.width).Render(body)
	default:
		return body
	}
}

// sectionLabel returns the label to print before a row when the row
// kind changes.
func sectionLabel(kind, last rowKind) string {
	if kind == last {
		return ""
	}
	switch kind {
	case rowSuggested:
		return " SUGGESTED"
	case rowRecent:
		return " RECENT"
	case rowCategoryHeader:
		if last == rowSuggested || last == rowRecent || last == -1 {
			return " CATEGORIES"
		}
	case rowCustomToken:
		return " CUSTOM TOKENS"
	}
	return ""
}

func (p *Picker) renderRow(r row, selected bool) string {
	var line string
	switch r.kind {
	case rowSuggested:
		marker := "  "
		if r.suggestion.IsRecent {
			marker = RecentMarkerStyle.Render("↺ ")
		}
		line = fmt.Sprintf("  %s%s  %s",
			marker,
			TokenTextStyle.Render(padToken(displayToken(r.token.Token))),
			TokenNameStyle.Render(r.token.Name),
		)

	case rowRecent:
		line = fmt.Sprintf("    %s  %s",
			TokenTextStyle.Render(padToken(displayToken(r.token.Token))),
			TokenNameStyle.Render(r.token.Name),
		)

	case rowCategoryHeader:
		meta := registry.CategoryByID(r.category)
		indicator := "▸"
		if p.isExpanded(r.category) {
			indicator = "▾"
		}
		line = fmt.Sprintf(" %s %s %s %s",
			indicator,
			meta.Icon,
			CategoryHeaderStyle.Render(meta.Name),
			DimStyle.Render(fmt.Sprintf("(%d)", r.matchCount)),
		)

	case rowToken, rowCustomToken:
		line = fmt.Sprintf("    %s  %s  %s",
			TokenTextStyle.Render(padToken(displayToken(r.token.Token))),
			TokenNameStyle.Render(r.token.Name),
			TokenDescStyle.Render(truncate.StringWithTail(r.token.Description, 40, "…")),
		)
	}

	if selected {
		return SelectedStyle.Render("›") + line
	}
	return " " + line
}

// padToken right-pads truncated token text so names line up.
func padToken(s string) string {
	if w := runewidth.StringWidth(s); w < tokenDisplayWidth {
		return s + strings.Repeat(" ", tokenDisplayWidth-w)
	}
	return s
}
