package models

// CategoryID identifies one of the built-in token categories.
type CategoryID string

const (
	CategoryCharacter CategoryID = "character"
	CategoryChat      CategoryID = "chat"
	CategoryPipeline  CategoryID = "pipeline"
	CategoryPhase     CategoryID = "phase"
	CategoryAction    CategoryID = "action"
	CategoryPrompt    CategoryID = "prompt"
	CategoryCuration  CategoryID = "curation"
	CategorySystem    CategoryID = "system"
)

// Token is a single insertable placeholder. The Token field holds the
// literal placeholder text (e.g. "{{char}}") that gets spliced into the
// target field; Name and Description are display-only.
type Token struct {
	Token       string `json:"token" yaml:"token"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Category is the display metadata for a group of related tokens.
type Category struct {
	ID          CategoryID `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Icon        string     `json:"icon" yaml:"icon"`
	Description string     `json:"description" yaml:"description"`
}

// ContextType is the kind of editing surface the picker is serving.
// It biases which tokens are suggested first.
type ContextType string

const (
	ContextNone      ContextType = ""
	ContextPhase     ContextType = "phase"
	ContextAction    ContextType = "action"
	ContextPrompt    ContextType = "prompt"
	ContextCuration  ContextType = "curation"
	ContextCharacter ContextType = "character"
)

// Context is the process-wide editing context. Setting it replaces the
// previous value wholesale; unfilled fields stay at their zero value.
type Context struct {
	Type       ContextType
	PhaseID    string
	ActionID   string
	ActionType string
}
