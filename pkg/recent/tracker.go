package recent

import (
	"github.com/tokenpick/tokenpick-terminal/pkg/logging"
)

// MaxEntries caps the recent-tokens list.
const MaxEntries = 10

// Tracker is the bounded most-recently-used token list. Recording an
// already-present token moves it to the front instead of duplicating
// it. Persistence failures never interrupt the caller: loads fall back
// to an empty list, saves are logged and swallowed.
type Tracker struct {
	store  Store
	tokens []string
}

// NewTracker loads the persisted list from the store. Missing, empty or
// malformed stored data resets the list to empty; that is a recoverable
// condition, not an error.
func NewTracker(store Store) *Tracker {
	t := &Tracker{store: store}
	t.load()
	return t
}

func (t *Tracker) load() {
	if t.store == nil {
		return
	}
	tokens, err := t.store.Load()
	if err != nil {
		logging.Warnf("recent: resetting list, load failed: %v", err)
		t.tokens = nil
		return
	}
	if len(tokens) > MaxEntries {
		tokens = tokens[:MaxEntries]
	}
	t.tokens = tokens
}

// Record puts the token at the front of the list, removing any earlier
// occurrence and trimming to MaxEntries, then persists. The in-memory
// update happens even when persistence fails.
func (t *Tracker) Record(token string) {
	if token == "" {
		return
	}

	for i, existing := range t.tokens {
		if existing == token {
			t.tokens = append(t.tokens[:i], t.tokens[i+1:]...)
			break
		}
	}

	t.tokens = append([]string{token}, t.tokens...)
	if len(t.tokens) > MaxEntries {
		t.tokens = t.tokens[:MaxEntries]
	}

	t.save()
}

// Tokens returns the list, most recent first. The returned slice is a
// copy.
func (t *Tracker) Tokens() []string {
	out := make([]string, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Len returns the number of tracked tokens.
func (t *Tracker) Len() int {
	return len(t.tokens)
}

// Clear empties the list and persists the empty state.
func (t *Tracker) Clear() {
	t.tokens = nil
	t.save()
}

func (t *Tracker) save() {
	if t.store == nil {
		return
	}
	if err := t.store.Save(t.tokens); err != nil {
		logging.Warnf("recent: failed to persist list: %v", err)
	}
}
