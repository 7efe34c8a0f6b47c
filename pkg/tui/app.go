package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
	"github.com/tokenpick/tokenpick-terminal/pkg/utils"
)

// App is the demo editor: a textarea with one token picker attached.
type App struct {
	editor  textarea.Model
	manager *Manager
	picker  *Picker
	keys    AppKeyMap
	status  string
	width   int
	height  int
}

// NewApp builds the demo editor with a picker configured from the
// project settings.
func NewApp(settings *models.Settings, tracker *recent.Tracker) *App {
	ta := textarea.New()
	ta.Placeholder = "Write your template here, ctrl+t opens the token picker..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(16)

	a := &App{
		editor:  ta,
		manager: NewManager(),
		keys:    DefaultAppKeyMap(),
	}

	cfg := DefaultConfig()
	cfg.ShowRecent = settings.Picker.ShowRecent
	cfg.ShowSearch = settings.Picker.ShowSearch
	cfg.Mode = ParseMode(settings.Picker.Mode)
	for _, c := range settings.Picker.Categories {
		cfg.Categories = append(cfg.Categories, models.CategoryID(c))
	}
	cfg.Tracker = tracker
	cfg.Target = NewTextareaTarget(&a.editor)
	a.picker = a.manager.Create(cfg)

	return a
}

// Picker exposes the app's picker instance.
func (a *App) Picker() *Picker { return a.picker }

func (a *App) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, a.editor.Focus())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetWidth(msg.Width - 2)
		a.editor.SetHeight(msg.Height - 4)
		pickerWidth := 56
		if pickerWidth > msg.Width-4 {
			pickerWidth = msg.Width - 4
		}
		a.picker.SetSize(pickerWidth, msg.Height-4)
		return a, nil

	case StatusMsg:
		a.status = string(msg)
		return a, nil

	case InsertedMsg:
		a.status = "Inserted " + msg.Token
		return a, nil

	case focusSearchMsg:
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.TogglePicker) {
			a.status = ""
			return a, a.picker.Toggle()
		}
		if a.picker.IsOpen() {
			var cmd tea.Cmd
			a.picker, cmd = a.picker.Update(msg)
			return a, cmd
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	// An open popup takes over the screen; other modes compose with
	// the editor.
	if a.picker.cfg.Mode == ModePopup && a.picker.IsOpen() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.picker.View())
	}

	count := utils.CountTokens(a.editor.Value())
	suffix := "s"
	if count == 1 {
		suffix = ""
	}
	help := HelpStyle.Render(fmt.Sprintf(" ctrl+t token picker · ctrl+c quit · %d placeholder%s", count, suffix))
	parts := []string{a.editor.View()}
	if a.picker.cfg.Mode != ModePopup {
		if v := a.picker.View(); v != "" {
			parts = append(parts, v)
		}
	}
	parts = append(parts, help)
	if a.status != "" {
		parts = append(parts, StatusStyle.Render(a.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
