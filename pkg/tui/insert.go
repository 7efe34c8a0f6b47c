package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// TargetField is any text field the picker can insert into: it exposes
// a value, a caret/selection range in rune offsets, and focus. The
// field is borrowed from the host, never owned by the picker.
type TargetField interface {
	Value() string
	SetValue(value string)
	Selection() (start, end int)
	SetCaret(pos int)
	Focus() tea.Cmd
}

// CaretInserter is implemented by targets that can splice text at their
// own caret. The insertion engine prefers it over the generic
// value/caret round-trip.
type CaretInserter interface {
	InsertAtCaret(text string)
}

// InsertedMsg is the change notification emitted after a token has been
// inserted, so reactive observers of the field are informed.
type InsertedMsg struct {
	PickerID string
	Token    string
}

// Splice inserts text into value at the [start, end) rune selection,
// replacing any selected range, and returns the new value together with
// the caret position immediately after the inserted text.
func Splice(value string, start, end int, text string) (string, int) {
	runes := []rune(value)
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	if end < start {
		end = start
	}
	if end > len(runes) {
		end = len(runes)
	}

	out := string(runes[:start]) + text + string(runes[end:])
	return out, start + len([]rune(text))
}

// InsertToken runs the full insertion sequence for the picker:
//
//  1. The OnSelect callback may veto by returning false; a veto aborts
//     everything (no splice, no recency update, no OnInsert).
//  2. The token is spliced into the target field at the caret and the
//     caret lands right after it. A missing target skips this step only.
//  3. OnInsert is notified.
//  4. The token is recorded in the recency tracker.
//  5. A popup-mode picker closes itself.
//
// The returned command refocuses the target and delivers InsertedMsg.
func (p *Picker) InsertToken(token string) tea.Cmd {
	if p.cfg.OnSelect != nil && !p.cfg.OnSelect(token) {
		return nil
	}

	var cmds []tea.Cmd
	if p.cfg.Target != nil {
		if ci, ok := p.cfg.Target.(CaretInserter); ok {
			ci.InsertAtCaret(token)
		} else {
			start, end := p.cfg.Target.Selection()
			value, caret := Splice(p.cfg.Target.Value(), start, end, token)
			p.cfg.Target.SetValue(value)
			p.cfg.Target.SetCaret(caret)
		}
		cmds = append(cmds, p.cfg.Target.Focus())
	}

	if p.cfg.OnInsert != nil {
		p.cfg.OnInsert(token)
	}
	if p.cfg.Tracker != nil {
		p.cfg.Tracker.Record(token)
	}
	if p.cfg.Mode == ModePopup {
		p.Close()
	}

	id := p.id
	cmds = append(cmds, func() tea.Msg {
		return InsertedMsg{PickerID: id, Token: token}
	})
	return tea.Batch(cmds...)
}

// TextTarget is a plain in-memory TargetField for hosts that manage
// their own rendering, and for tests.
type TextTarget struct {
	value    string
	selStart int
	selEnd   int
	focused  bool
}

// NewTextTarget creates a TextTarget with the given initial value and
// the caret at the end.
func NewTextTarget(value string) *TextTarget {
	n := len([]rune(value))
	return &TextTarget{value: value, selStart: n, selEnd: n}
}

// Value returns the field text.
func (t *TextTarget) Value() string { return t.value }

// SetValue replaces the field text, clamping the selection.
func (t *TextTarget) SetValue(value string) {
	t.value = value
	n := len([]rune(value))
	if t.selStart > n {
		t.selStart = n
	}
	if t.selEnd > n {
		t.selEnd = n
	}
}

// Selection returns the current selection range; caret when collapsed.
func (t *TextTarget) Selection() (int, int) { return t.selStart, t.selEnd }

// SetCaret collapses the selection to pos.
func (t *TextTarget) SetCaret(pos int) {
	t.selStart = pos
	t.selEnd = pos
}

// Select sets the selection range.
func (t *TextTarget) Select(start, end int) {
	t.selStart = start
	t.selEnd = end
}

// Focus marks the field focused.
func (t *TextTarget) Focus() tea.Cmd {
	t.focused = true
	return nil
}

// Focused reports whether the field is focused.
func (t *TextTarget) Focused() bool { return t.focused }

// TextareaTarget adapts a bubbles textarea to TargetField. Insertion
// goes through the textarea's own caret (InsertAtCaret), which keeps
// its cursor bookkeeping intact.
type TextareaTarget struct {
	TA *textarea.Model
}

// NewTextareaTarget wraps a textarea model.
func NewTextareaTarget(ta *textarea.Model) *TextareaTarget {
	return &TextareaTarget{TA: ta}
}

// Value returns the textarea content.
func (t *TextareaTarget) Value() string { return t.TA.Value() }

// SetValue replaces the textarea content.
func (t *TextareaTarget) SetValue(value string) { t.TA.SetValue(value) }

// InsertAtCaret splices text at the textarea's caret.
func (t *TextareaTarget) InsertAtCaret(text string) { t.TA.InsertString(text) }

// Selection returns the caret offset twice; the textarea has no
// selection of its own.
func (t *TextareaTarget) Selection() (int, int) {
	pos := t.caretOffset()
	return pos, pos
}

// SetCaret moves the textarea cursor to the given rune offset.
func (t *TextareaTarget) SetCaret(pos int) {
	row, col := rowColForOffset(t.TA.Value(), pos)
	for t.TA.Line() > row {
		t.TA.CursorUp()
	}
	for t.TA.Line() < row {
		t.TA.CursorDown()
	}
	t.TA.SetCursor(col)
}

// Focus focuses the textarea.
func (t *TextareaTarget) Focus() tea.Cmd { return t.TA.Focus() }

func (t *TextareaTarget) caretOffset() int {
	lines := strings.Split(t.TA.Value(), "\n")
	row := t.TA.Line()
	info := t.TA.LineInfo()
	col := info.StartColumn + info.ColumnOffset

	offset := 0
	for i := 0; i < row && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1 // +1 for the newline
	}
	return offset + col
}

// rowColForOffset converts a rune offset into a line/column pair,
// clamping to the end of the text.
func rowColForOffset(value string, pos int) (row, col int) {
	if pos < 0 {
		pos = 0
	}
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		n := len([]rune(line))
		if pos <= n || i == len(lines)-1 {
			if pos > n {
				pos = n
			}
			return i, pos
		}
		pos -= n + 1
	}
	return 0, 0
}
