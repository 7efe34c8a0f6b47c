package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
)

func TestSuggestedTokensPhaseContext(t *testing.T) {
	t.Cleanup(ResetContext)
	SetContext(models.Context{Type: models.ContextPhase, PhaseID: "p-1"})

	got := SuggestedTokens(nil)

	require.NotEmpty(t, got)
	assert.Equal(t, "{{phase.name}}", got[0].Token.Token)
	assert.Equal(t, "{{phase.output}}", got[1].Token.Token)
	for _, s := range got {
		assert.True(t, s.IsSuggested, "token %q should be flagged as suggested", s.Token.Token)
		assert.False(t, s.IsRecent, "token %q should not be flagged recent before any insertion", s.Token.Token)
	}
}

func TestSuggestedTokensUnsetContextUsesStandardList(t *testing.T) {
	t.Cleanup(ResetContext)
	ResetContext()

	got := SuggestedTokens(nil)

	require.Len(t, got, len(standardSuggestions))
	for i, want := range standardSuggestions {
		assert.Equal(t, want, got[i].Token.Token)
	}
}

func TestSuggestedTokensUnknownContextFallsBack(t *testing.T) {
	got := SuggestedTokensFor(models.Context{Type: "review"}, nil)

	require.Len(t, got, len(standardSuggestions))
	assert.Equal(t, standardSuggestions[0], got[0].Token.Token)
}

func TestSuggestedTokensMergesRecent(t *testing.T) {
	recent := []string{"{{curation.notes}}", "{{date}}"}

	got := SuggestedTokensFor(models.Context{}, recent)

	byToken := map[string]Suggestion{}
	for _, s := range got {
		byToken[s.Token.Token] = s
	}

	// {{date}} is in the standard list and in the recent set: both flags.
	d, ok := byToken["{{date}}"]
	require.True(t, ok)
	assert.True(t, d.IsSuggested)
	assert.True(t, d.IsRecent)

	// {{curation.notes}} comes only from the recent list, appended after
	// the static suggestions.
	n, ok := byToken["{{curation.notes}}"]
	require.True(t, ok)
	assert.False(t, n.IsSuggested)
	assert.True(t, n.IsRecent)
	assert.Equal(t, "{{curation.notes}}", got[len(got)-1].Token.Token)
}

func TestSuggestedTokensNoDuplicatesAndCapped(t *testing.T) {
	recent := []string{
		"{{char}}", "{{user}}", "{{date}}", "{{time}}", "{{chat.history}}",
		"{{phase.output}}", "{{action.input}}", "{{prompt.text}}",
	}

	got := SuggestedTokensFor(models.Context{}, recent)

	assert.LessOrEqual(t, len(got), MaxSuggestions)
	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.Token.Token], "duplicate token %q in suggestions", s.Token.Token)
		seen[s.Token.Token] = true
	}
}

func TestSuggestedTokensTakesAtMostFiveRecent(t *testing.T) {
	recent := []string{
		"{{r.1}}", "{{r.2}}", "{{r.3}}", "{{r.4}}", "{{r.5}}", "{{r.6}}", "{{r.7}}",
	}

	got := SuggestedTokensFor(models.Context{}, recent)

	recentOnly := 0
	for _, s := range got {
		if s.IsRecent && !s.IsSuggested {
			recentOnly++
			assert.NotEqual(t, "{{r.6}}", s.Token.Token)
			assert.NotEqual(t, "{{r.7}}", s.Token.Token)
		}
	}
	assert.LessOrEqual(t, recentOnly, 5)
}

func TestSuggestedTokensSynthesizesUnknownTokenMetadata(t *testing.T) {
	got := SuggestedTokensFor(models.Context{}, []string{"{{my.custom}}"})

	var custom *Suggestion
	for i := range got {
		if got[i].Token.Token == "{{my.custom}}" {
			custom = &got[i]
		}
	}
	require.NotNil(t, custom)
	assert.Equal(t, "my.custom", custom.Token.Name)
	assert.NotEmpty(t, custom.Token.Description)
}

func TestContextHolderLastWriteWins(t *testing.T) {
	var h ContextHolder

	h.Set(models.Context{Type: models.ContextPhase, PhaseID: "p-1", ActionID: "a-1"})
	h.Set(models.Context{Type: models.ContextAction, ActionID: "a-2"})

	got := h.Current()
	assert.Equal(t, models.ContextAction, got.Type)
	assert.Equal(t, "a-2", got.ActionID)
	// Replacement is wholesale: fields from the first write do not leak.
	assert.Empty(t, got.PhaseID)
}
