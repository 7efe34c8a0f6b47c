package tui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
)

func TestDisplayTokenTruncation(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "short token unchanged",
			token: "{{char}}",
			want:  "{{char}}",
		},
		{
			name:  "exactly at cap unchanged",
			token: "{{phase.instruct.x}}", // 20 cells
			want:  "{{phase.instruct.x}}",
		},
		{
			name:  "long token ellipsis-truncated",
			token: "{{phase.previous.output}}",
			want:  "{{phase.previous.ou…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := displayToken(tt.token)
			if got != tt.want {
				t.Errorf("displayToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
			if w := runewidth.StringWidth(got); w > tokenDisplayWidth {
				t.Errorf("display width = %d, want <= %d", w, tokenDisplayWidth)
			}
		})
	}
}

func TestViewClosedPopupRendersNothing(t *testing.T) {
	p := newTestPicker(DefaultConfig())
	if v := p.View(); v != "" {
		t.Errorf("closed popup rendered %d bytes, want empty", len(v))
	}
}

func TestViewInlineRendersWithoutOpen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeInline
	p := newTestPicker(cfg)

	if p.View() == "" {
		t.Error("inline picker should render without an explicit open")
	}
}

func TestViewSectionsInDefaultState(t *testing.T) {
	tracker := recent.NewTracker(recent.NewMemoryStore())
	tracker.Record("{{char}}")

	cfg := DefaultConfig()
	cfg.Tracker = tracker
	p := newTestPicker(cfg)
	p.Open()

	view := p.View()

	for _, want := range []string{"SUGGESTED", "RECENT", "CATEGORIES", "▸"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewSearchHidesSuggestedAndRecent(t *testing.T) {
	tracker := recent.NewTracker(recent.NewMemoryStore())
	tracker.Record("{{char}}")

	cfg := DefaultConfig()
	cfg.Tracker = tracker
	p := newTestPicker(cfg)
	p.Open()
	p.SetSearch("phase")

	view := p.View()

	if strings.Contains(view, "SUGGESTED") {
		t.Error("suggested strip rendered during a search")
	}
	if strings.Contains(view, "RECENT") {
		t.Error("recent strip rendered during a search")
	}
}

func TestViewCategoryHeaderShowsMatchCount(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Categories = []models.CategoryID{models.CategoryPhase}
	p := newTestPicker(cfg)
	p.Open()
	p.SetSearch("output")

	view := p.View()

	// {{phase.output}} and {{phase.previous.output}} match.
	if !strings.Contains(view, "(2)") {
		t.Errorf("header match count missing from view:\n%s", view)
	}
	if !strings.Contains(view, "▾") {
		t.Error("searched category should render expanded")
	}
}

func TestViewNoMatchesMessage(t *testing.T) {
	p := newTestPicker(DefaultConfig())
	p.Open()
	p.SetSearch("zzz-no-such-token")

	if !strings.Contains(p.View(), "No tokens match") {
		t.Error("empty result message missing")
	}
}

func TestViewRecencyMarkerOnSuggestedStrip(t *testing.T) {
	tracker := recent.NewTracker(recent.NewMemoryStore())
	tracker.Record("{{char}}") // {{char}} is also in the standard suggestions

	cfg := DefaultConfig()
	cfg.Tracker = tracker
	cfg.ShowRecent = false // isolate the suggested strip
	p := newTestPicker(cfg)
	p.Open()

	if !strings.Contains(p.View(), "↺") {
		t.Error("recency marker missing from suggested strip")
	}
}

func TestViewCustomTokensSection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CustomTokens = []models.Token{
		{Token: "{{workspace.root}}", Name: "Workspace Root", Description: "Root directory"},
	}
	p := newTestPicker(cfg)
	p.Open()

	view := p.View()
	if !strings.Contains(view, "CUSTOM TOKENS") {
		t.Error("custom tokens section label missing")
	}
	if !strings.Contains(view, "{{workspace.root}}") {
		t.Error("custom token row missing")
	}
}
