package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar is the picker's search input with consistent styling
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search tokens..."
	ti.CharLimit = 100
	ti.Width = 40 // Default width, adjusted by SetWidth

	return &SearchBar{
		input: ti,
	}
}

// SetActive sets whether the search bar has input focus
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Width - borders - padding - icon - clear affordance
	s.input.Width = width - 12
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text and moves the caret to the end, so a
// re-render never loses the typing position
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
	s.input.CursorEnd()
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar. A clear affordance appears only while
// there is search text.
func (s *SearchBar) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(s.width - 2).
		Padding(0, 1)

	var icon string
	if s.isActive {
		icon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		icon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	clear := ""
	if s.input.Value() != "" {
		clear = DimStyle.Render(" ✕ esc")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", s.input.View(), clear)
	return searchStyle.Render(content)
}

// Focus focuses the search input
func (s *SearchBar) Focus() tea.Cmd {
	s.isActive = true
	return s.input.Focus()
}

// Blur removes focus from the search input
func (s *SearchBar) Blur() {
	s.isActive = false
	s.input.Blur()
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}
