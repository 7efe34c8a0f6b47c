package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
)

// Mode is the picker display mode.
type Mode string

const (
	// ModePopup renders the picker as a centered overlay, opened and
	// closed explicitly.
	ModePopup Mode = "popup"
	// ModeInline renders the picker as a permanently visible panel.
	ModeInline Mode = "inline"
	// ModeDropdown renders the picker underneath the target field.
	ModeDropdown Mode = "dropdown"
)

// ParseMode maps a settings string onto a Mode, defaulting to popup.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeInline:
		return ModeInline
	case ModeDropdown:
		return ModeDropdown
	default:
		return ModePopup
	}
}

// openDelay postpones focusing the search input until the popup has
// been composited at least once.
const openDelay = 50 * time.Millisecond

// Config is the immutable per-instance picker configuration. Start
// from DefaultConfig and override; the zero Config hides search and
// recent, which is almost never what you want.
type Config struct {
	// Target is the field tokens are inserted into. Optional: without
	// it insertion skips the text splice but still runs callbacks and
	// recency tracking.
	Target TargetField
	// OnSelect runs before insertion; returning false vetoes it.
	OnSelect func(token string) bool
	// OnInsert is notified after a successful insertion.
	OnInsert func(token string)
	// Categories restricts which catalog categories are offered.
	// Empty means all of them.
	Categories []models.CategoryID
	// CustomTokens are extra caller-defined tokens, shown in their own
	// always-expanded section.
	CustomTokens []models.Token
	// Tracker records insertions; optional.
	Tracker    *recent.Tracker
	ShowRecent bool
	ShowSearch bool
	Mode       Mode
}

// DefaultConfig returns the baseline picker configuration: all
// categories, search and recent enabled, popup mode.
func DefaultConfig() Config {
	return Config{
		ShowRecent: true,
		ShowSearch: true,
		Mode:       ModePopup,
	}
}

// focusSearchMsg is the deferred focus-after-open callback. It carries
// the open sequence number so that a close or reopen in the meantime
// invalidates it.
type focusSearchMsg struct {
	id  string
	seq int
}

// Picker is one independently configured picker instance. It is a
// self-contained Bubble Tea component: the host routes messages to
// Update while the picker is open and includes View in its output.
type Picker struct {
	id        string
	cfg       Config
	search    *SearchBar
	expanded  models.CategoryID // at most one outside of search
	open      bool
	cursor    int
	openSeq   int
	destroyed bool
	width     int
	height    int
	keys      KeyMap
}

func newPicker(id string, cfg Config) *Picker {
	p := &Picker{
		id:     id,
		cfg:    cfg,
		search: NewSearchBar(),
		keys:   DefaultKeyMap(),
		width:  52,
	}
	p.search.SetWidth(p.width)
	return p
}

// ID returns the generated instance id.
func (p *Picker) ID() string { return p.id }

// Config returns the instance configuration snapshot.
func (p *Picker) Config() Config { return p.cfg }

// IsOpen reports whether the picker is open.
func (p *Picker) IsOpen() bool { return p.open }

// Search returns the current search text.
func (p *Picker) Search() string { return p.search.Value() }

// SetSearch replaces the search text and resets the cursor to the
// first visible row.
func (p *Picker) SetSearch(query string) {
	p.search.SetValue(query)
	p.cursor = 0
}

// ExpandedCategory returns the currently expanded category id, or ""
// when none is expanded.
func (p *Picker) ExpandedCategory() models.CategoryID { return p.expanded }

// SetSize adjusts the picker dimensions.
func (p *Picker) SetSize(width, height int) {
	if width > 0 {
		p.width = width
		p.search.SetWidth(width)
	}
	p.height = height
}

// Open opens the picker and schedules the deferred search focus. The
// returned command must be executed by the host program.
func (p *Picker) Open() tea.Cmd {
	if p.destroyed || p.open {
		return nil
	}
	p.open = true
	p.openSeq++
	seq := p.openSeq
	id := p.id
	return tea.Tick(openDelay, func(time.Time) tea.Msg {
		return focusSearchMsg{id: id, seq: seq}
	})
}

// Close closes the picker. Any pending deferred focus is invalidated.
func (p *Picker) Close() {
	if !p.open {
		return
	}
	p.open = false
	p.openSeq++
	p.search.Blur()
}

// Toggle opens a closed picker and closes an open one.
func (p *Picker) Toggle() tea.Cmd {
	if p.open {
		p.Close()
		return nil
	}
	return p.Open()
}

// ToggleCategory applies the single-expand rule: selecting a collapsed
// category expands it and collapses any other; selecting the expanded
// one collapses it.
func (p *Picker) ToggleCategory(id models.CategoryID) {
	if p.expanded == id {
		p.expanded = ""
	} else {
		p.expanded = id
	}
}

// isExpanded reports whether a category renders expanded: either it is
// the selected one, or a search is active (search forces all matching
// categories open).
func (p *Picker) isExpanded(id models.CategoryID) bool {
	if p.search.Value() != "" {
		return true
	}
	return p.expanded == id
}

func (p *Picker) destroy() {
	p.destroyed = true
	p.open = false
	p.openSeq++
}

// Destroyed reports whether the picker has been destroyed by its
// manager.
func (p *Picker) Destroyed() bool { return p.destroyed }

// Update handles messages while the picker is visible. Unbound
// printable keys flow into the search input.
func (p *Picker) Update(msg tea.Msg) (*Picker, tea.Cmd) {
	if p.destroyed {
		return p, nil
	}

	switch msg := msg.(type) {
	case focusSearchMsg:
		// Stale focus callbacks (closed or reopened since) are dropped.
		if msg.id != p.id || msg.seq != p.openSeq || !p.open {
			return p, nil
		}
		return p, p.search.Focus()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Up):
			p.moveCursor(-1)
			return p, nil

		case key.Matches(msg, p.keys.Down):
			p.moveCursor(1)
			return p, nil

		case key.Matches(msg, p.keys.Select):
			return p, p.selectCurrent()

		case key.Matches(msg, p.keys.Close):
			if p.search.Value() != "" {
				p.SetSearch("")
				return p, nil
			}
			p.Close()
			return p, nil

		case key.Matches(msg, p.keys.Yank):
			if tok, ok := p.tokenUnderCursor(); ok {
				if err := clipboard.WriteAll(tok); err == nil {
					return p, statusCmd("Copied " + tok)
				}
			}
			return p, nil
		}

		// Everything else is typing: forward to the search input and
		// re-filter.
		before := p.search.Value()
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		if p.search.Value() != before {
			p.cursor = 0
		}
		return p, cmd
	}

	return p, nil
}

// selectCurrent acts on the row under the cursor: headers toggle,
// token rows insert.
func (p *Picker) selectCurrent() tea.Cmd {
	rows := p.visibleRows()
	if p.cursor < 0 || p.cursor >= len(rows) {
		return nil
	}
	row := rows[p.cursor]
	if row.kind == rowCategoryHeader {
		p.ToggleCategory(row.category)
		return nil
	}
	return p.InsertToken(row.token.Token)
}

// tokenUnderCursor returns the literal token text of the current row,
// when it is a token row.
func (p *Picker) tokenUnderCursor() (string, bool) {
	rows := p.visibleRows()
	if p.cursor < 0 || p.cursor >= len(rows) {
		return "", false
	}
	if rows[p.cursor].kind == rowCategoryHeader {
		return "", false
	}
	return rows[p.cursor].token.Token, true
}

// moveCursor moves across the selectable rows with wrap-around.
func (p *Picker) moveCursor(delta int) {
	rows := p.visibleRows()
	if len(rows) == 0 {
		p.cursor = 0
		return
	}
	p.cursor = (p.cursor + delta + len(rows)) % len(rows)
}

// statusCmd delivers a status-bar message to the host.
func statusCmd(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

// StatusMsg is a transient message for the host's status bar.
type StatusMsg string
