package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	app := NewApp(models.DefaultSettings(), recent.NewTracker(recent.NewMemoryStore()))
	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return model.(*App)
}

func TestAppTogglePicker(t *testing.T) {
	app := newTestApp(t)

	if app.Picker().IsOpen() {
		t.Fatal("picker open at startup")
	}

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	app = model.(*App)
	if !app.Picker().IsOpen() {
		t.Fatal("ctrl+t did not open the picker")
	}
	if cmd == nil {
		t.Error("opening should schedule the deferred search focus")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	app = model.(*App)
	if app.Picker().IsOpen() {
		t.Error("second ctrl+t did not close the picker")
	}
}

func TestAppRoutesKeysToOpenPicker(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	app.Picker().search.Focus()

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	if got := app.Picker().Search(); got != "x" {
		t.Errorf("picker search = %q, want %q", got, "x")
	}
	if strings.Contains(app.editor.Value(), "x") {
		t.Error("keystroke leaked into the editor while the picker was open")
	}
}

func TestAppInsertedMsgSetsStatus(t *testing.T) {
	app := newTestApp(t)

	app.Update(InsertedMsg{PickerID: app.Picker().ID(), Token: "{{char}}"})

	if !strings.Contains(app.status, "{{char}}") {
		t.Errorf("status = %q, want it to mention the token", app.status)
	}
	if !strings.Contains(app.View(), "{{char}}") {
		t.Error("status bar missing from view")
	}
}

func TestAppViewShowsPopupOverlay(t *testing.T) {
	app := newTestApp(t)
	app.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	view := app.View()
	if !strings.Contains(view, "Insert Token") {
		t.Error("open popup missing from app view")
	}
}
