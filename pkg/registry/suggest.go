package registry

import (
	"sync"

	"github.com/tokenpick/tokenpick-terminal/pkg/models"
)

const (
	// MaxSuggestions caps the combined suggested+recent output.
	MaxSuggestions = 10
	// recentInSuggestions is how many recent tokens are considered for
	// the merge before deduplication against the static list.
	recentInSuggestions = 5
)

// Suggestion is a token annotated for the suggested-tokens strip. Both
// flags may be set at once when a statically suggested token was also
// recently used.
type Suggestion struct {
	models.Token
	IsSuggested bool
	IsRecent    bool
}

// standardSuggestions is used when no context is set or the context
// type has no list of its own.
var standardSuggestions = []string{
	"{{char}}",
	"{{user}}",
	"{{chat.history}}",
	"{{date}}",
	"{{time}}",
}

var contextSuggestions = map[models.ContextType][]string{
	models.ContextPhase: {
		"{{phase.name}}",
		"{{phase.output}}",
		"{{phase.previous.output}}",
		"{{phase.index}}",
		"{{pipeline.name}}",
	},
	models.ContextAction: {
		"{{action.name}}",
		"{{action.type}}",
		"{{action.input}}",
		"{{action.output}}",
		"{{phase.name}}",
	},
	models.ContextPrompt: {
		"{{prompt.text}}",
		"{{prompt.variables}}",
		"{{char}}",
		"{{user}}",
		"{{chat.history}}",
	},
	models.ContextCuration: {
		"{{curation.item}}",
		"{{curation.score}}",
		"{{curation.criteria}}",
		"{{chat.summary}}",
	},
	models.ContextCharacter: {
		"{{char}}",
		"{{char.description}}",
		"{{char.personality}}",
		"{{user}}",
		"{{user.persona}}",
	},
}

// ContextHolder is the single process-wide slot for the editing
// context. Writes replace the previous value wholesale; the last write
// wins.
type ContextHolder struct {
	mu  sync.RWMutex
	ctx models.Context
}

// Set replaces the held context.
func (h *ContextHolder) Set(ctx models.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
}

// Current returns the held context.
func (h *ContextHolder) Current() models.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

// Reset clears the held context back to unset.
func (h *ContextHolder) Reset() {
	h.Set(models.Context{})
}

var defaultHolder ContextHolder

// SetContext replaces the process-wide editing context.
func SetContext(ctx models.Context) {
	defaultHolder.Set(ctx)
}

// CurrentContext returns the process-wide editing context.
func CurrentContext() models.Context {
	return defaultHolder.Current()
}

// ResetContext clears the process-wide editing context.
func ResetContext() {
	defaultHolder.Reset()
}

// suggestionsFor picks the static suggestion list for a context type,
// falling back to the standard list for unset or unknown types.
func suggestionsFor(ct models.ContextType) []string {
	if list, ok := contextSuggestions[ct]; ok && len(list) > 0 {
		return list
	}
	return standardSuggestions
}

// SuggestedTokens merges the static suggestion list for the current
// process-wide context with the caller's recent tokens. Static
// suggestions come first in list order, then up to five recent tokens
// not already present, and the combined result is capped at
// MaxSuggestions. Output never contains duplicate token strings.
func SuggestedTokens(recent []string) []Suggestion {
	return SuggestedTokensFor(CurrentContext(), recent)
}

// SuggestedTokensFor is SuggestedTokens with an explicit context.
func SuggestedTokensFor(ctx models.Context, recent []string) []Suggestion {
	static := suggestionsFor(ctx.Type)

	topRecent := recent
	if len(topRecent) > recentInSuggestions {
		topRecent = topRecent[:recentInSuggestions]
	}
	recentSet := make(map[string]bool, len(topRecent))
	for _, r := range topRecent {
		recentSet[r] = true
	}

	out := make([]Suggestion, 0, MaxSuggestions)
	seen := make(map[string]bool, MaxSuggestions)

	for _, token := range static {
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, Suggestion{
			Token:       AnnotateToken(token),
			IsSuggested: true,
			IsRecent:    recentSet[token],
		})
	}

	for _, token := range topRecent {
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, Suggestion{
			Token:    AnnotateToken(token),
			IsRecent: true,
		})
	}

	if len(out) > MaxSuggestions {
		out = out[:MaxSuggestions]
	}
	return out
}

// AnnotateToken attaches display name and description from the
// catalog, synthesizing both when the token is not registered (custom
// tokens end up in the recent list too).
func AnnotateToken(token string) models.Token {
	if t, ok := Lookup(token); ok {
		return t
	}
	return models.Token{
		Token:       token,
		Name:        stripBraces(token),
		Description: "Template token",
	}
}
