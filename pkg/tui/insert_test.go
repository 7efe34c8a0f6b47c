package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenpick/tokenpick-terminal/pkg/recent"
)

func TestSplice(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		start     int
		end       int
		text      string
		wantValue string
		wantCaret int
	}{
		{
			name:      "caret in the middle",
			value:     "Hello world",
			start:     6,
			end:       6,
			text:      "{{user}} ",
			wantValue: "Hello {{user}} world",
			wantCaret: 15,
		},
		{
			name:      "caret at the end",
			value:     "Hello ",
			start:     6,
			end:       6,
			text:      "{{user}}",
			wantValue: "Hello {{user}}",
			wantCaret: 14,
		},
		{
			name:      "replaces selected range",
			value:     "Hello NAME!",
			start:     6,
			end:       10,
			text:      "{{char}}",
			wantValue: "Hello {{char}}!",
			wantCaret: 14,
		},
		{
			name:      "empty value",
			value:     "",
			start:     0,
			end:       0,
			text:      "{{date}}",
			wantValue: "{{date}}",
			wantCaret: 8,
		},
		{
			name:      "out of range offsets are clamped",
			value:     "ab",
			start:     5,
			end:       9,
			text:      "X",
			wantValue: "abX",
			wantCaret: 3,
		},
		{
			name:      "multibyte runes count as one",
			value:     "héllo ",
			start:     6,
			end:       6,
			text:      "{{char}}",
			wantValue: "héllo {{char}}",
			wantCaret: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotValue, gotCaret := Splice(tt.value, tt.start, tt.end, tt.text)
			assert.Equal(t, tt.wantValue, gotValue)
			assert.Equal(t, tt.wantCaret, gotCaret)
		})
	}
}

func newTestPicker(cfg Config) *Picker {
	return NewManager().Create(cfg)
}

func TestInsertTokenSplicesAtCaret(t *testing.T) {
	target := NewTextTarget("Hello ")
	target.SetCaret(6)
	cfg := DefaultConfig()
	cfg.Target = target
	p := newTestPicker(cfg)

	cmd := p.InsertToken("{{user}}")

	require.NotNil(t, cmd)
	assert.Equal(t, "Hello {{user}}", target.Value())
	start, end := target.Selection()
	assert.Equal(t, 14, start)
	assert.Equal(t, 14, end)
	assert.True(t, target.Focused(), "target should be refocused after insertion")
}

func TestInsertTokenOnSelectVetoAbortsEverything(t *testing.T) {
	target := NewTextTarget("Hello ")
	tracker := recent.NewTracker(recent.NewMemoryStore())
	inserted := false

	cfg := DefaultConfig()
	cfg.Target = target
	cfg.Tracker = tracker
	cfg.OnSelect = func(string) bool { return false }
	cfg.OnInsert = func(string) { inserted = true }
	p := newTestPicker(cfg)
	p.Open()

	cmd := p.InsertToken("{{user}}")

	assert.Nil(t, cmd)
	assert.Equal(t, "Hello ", target.Value(), "veto must leave the field untouched")
	assert.Zero(t, tracker.Len(), "veto must not record recency")
	assert.False(t, inserted, "veto must not fire OnInsert")
	assert.True(t, p.IsOpen(), "veto must not close the popup")
}

func TestInsertTokenWithoutTargetStillRunsCallbacks(t *testing.T) {
	tracker := recent.NewTracker(recent.NewMemoryStore())
	var insertedToken string

	cfg := DefaultConfig()
	cfg.Tracker = tracker
	cfg.OnInsert = func(tok string) { insertedToken = tok }
	p := newTestPicker(cfg)

	cmd := p.InsertToken("{{char}}")

	require.NotNil(t, cmd)
	assert.Equal(t, "{{char}}", insertedToken)
	assert.Equal(t, []string{"{{char}}"}, tracker.Tokens())
}

func TestInsertTokenClosesPopupMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = NewTextTarget("")
	p := newTestPicker(cfg)
	p.Open()

	p.InsertToken("{{date}}")

	assert.False(t, p.IsOpen())
}

func TestInsertTokenKeepsInlineModeOpen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeInline
	cfg.Target = NewTextTarget("")
	p := newTestPicker(cfg)
	p.Open()

	p.InsertToken("{{date}}")

	assert.True(t, p.IsOpen())
}

func TestInsertTokenOrderOnSelectBeforeSplice(t *testing.T) {
	target := NewTextTarget("")
	var seenValue string

	cfg := DefaultConfig()
	cfg.Target = target
	cfg.OnSelect = func(string) bool {
		seenValue = target.Value()
		return true
	}
	p := newTestPicker(cfg)

	p.InsertToken("{{char}}")

	assert.Empty(t, seenValue, "OnSelect must run before the splice")
	assert.Equal(t, "{{char}}", target.Value())
}

func TestTextTargetSelectionReplacement(t *testing.T) {
	target := NewTextTarget("Hello NAME!")
	target.Select(6, 10)
	cfg := DefaultConfig()
	cfg.Target = target
	p := newTestPicker(cfg)

	p.InsertToken("{{char}}")

	assert.Equal(t, "Hello {{char}}!", target.Value())
}

func TestRowColForOffset(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		pos     int
		wantRow int
		wantCol int
	}{
		{name: "single line", value: "hello", pos: 3, wantRow: 0, wantCol: 3},
		{name: "start of second line", value: "ab\ncd", pos: 3, wantRow: 1, wantCol: 0},
		{name: "newline boundary belongs to first line", value: "ab\ncd", pos: 2, wantRow: 0, wantCol: 2},
		{name: "beyond end clamps to last line", value: "ab\ncd", pos: 99, wantRow: 1, wantCol: 2},
		{name: "negative clamps to start", value: "ab", pos: -1, wantRow: 0, wantCol: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := rowColForOffset(tt.value, tt.pos)
			assert.Equal(t, tt.wantRow, row, "row")
			assert.Equal(t, tt.wantCol, col, "col")
		})
	}
}
