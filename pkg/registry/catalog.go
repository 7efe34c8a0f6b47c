package registry

import "github.com/tokenpick/tokenpick-terminal/pkg/models"

// categoryOrder fixes the display and lookup priority order of the
// built-in categories.
var categoryOrder = []models.CategoryID{
	models.CategoryCharacter,
	models.CategoryChat,
	models.CategoryPipeline,
	models.CategoryPhase,
	models.CategoryAction,
	models.CategoryPrompt,
	models.CategoryCuration,
	models.CategorySystem,
}

var categoryMeta = map[models.CategoryID]models.Category{
	models.CategoryCharacter: {
		ID:          models.CategoryCharacter,
		Name:        "Character",
		Icon:        "☻",
		Description: "Character and persona placeholders",
	},
	models.CategoryChat: {
		ID:          models.CategoryChat,
		Name:        "Chat",
		Icon:        "✉",
		Description: "Conversation history and messages",
	},
	models.CategoryPipeline: {
		ID:          models.CategoryPipeline,
		Name:        "Pipeline",
		Icon:        "⧉",
		Description: "Pipeline-level metadata",
	},
	models.CategoryPhase: {
		ID:          models.CategoryPhase,
		Name:        "Phase",
		Icon:        "▶",
		Description: "Current and previous phase data",
	},
	models.CategoryAction: {
		ID:          models.CategoryAction,
		Name:        "Action",
		Icon:        "⚡",
		Description: "Action inputs, outputs and parameters",
	},
	models.CategoryPrompt: {
		ID:          models.CategoryPrompt,
		Name:        "Prompt",
		Icon:        "✎",
		Description: "Prompt text and variables",
	},
	models.CategoryCuration: {
		ID:          models.CategoryCuration,
		Name:        "Curation",
		Icon:        "✓",
		Description: "Curation items, scores and criteria",
	},
	models.CategorySystem: {
		ID:          models.CategorySystem,
		Name:        "System",
		Icon:        "⚙",
		Description: "Dates, times and generated values",
	},
}

var catalog = map[models.CategoryID][]models.Token{
	models.CategoryCharacter: {
		{Token: "{{char}}", Name: "Character Name", Description: "Name of the active character"},
		{Token: "{{char.description}}", Name: "Character Description", Description: "Full description of the active character"},
		{Token: "{{char.personality}}", Name: "Character Personality", Description: "Personality summary of the active character"},
		{Token: "{{char.scenario}}", Name: "Character Scenario", Description: "Scenario text attached to the character"},
		{Token: "{{char.greeting}}", Name: "Character Greeting", Description: "First message the character opens with"},
		{Token: "{{user}}", Name: "User Name", Description: "Name of the user persona"},
		{Token: "{{user.persona}}", Name: "User Persona", Description: "Description of the user persona"},
	},
	models.CategoryChat: {
		{Token: "{{chat.history}}", Name: "Chat History", Description: "Full conversation history"},
		{Token: "{{chat.last_message}}", Name: "Last Message", Description: "Most recent message in the conversation"},
		{Token: "{{chat.message_count}}", Name: "Message Count", Description: "Number of messages exchanged so far"},
		{Token: "{{chat.summary}}", Name: "Chat Summary", Description: "Condensed summary of the conversation"},
	},
	models.CategoryPipeline: {
		{Token: "{{pipeline.id}}", Name: "Pipeline ID", Description: "Unique identifier of the running pipeline"},
		{Token: "{{pipeline.name}}", Name: "Pipeline Name", Description: "Display name of the running pipeline"},
		{Token: "{{pipeline.description}}", Name: "Pipeline Description", Description: "Description of the running pipeline"},
		{Token: "{{pipeline.phase_count}}", Name: "Phase Count", Description: "Number of phases in the pipeline"},
		{Token: "{{pipeline.output}}", Name: "Pipeline Output", Description: "Final output of the pipeline run"},
	},
	models.CategoryPhase: {
		{Token: "{{phase.id}}", Name: "Phase ID", Description: "Identifier of the current phase"},
		{Token: "{{phase.name}}", Name: "Phase Name", Description: "Display name of the current phase"},
		{Token: "{{phase.index}}", Name: "Phase Index", Description: "Position of the current phase in the pipeline"},
		{Token: "{{phase.output}}", Name: "Phase Output", Description: "Output produced by the current phase"},
		{Token: "{{phase.previous.output}}", Name: "Previous Phase Output", Description: "Output of the phase that ran before this one"},
		{Token: "{{phase.instructions}}", Name: "Phase Instructions", Description: "Instructions configured for the current phase"},
	},
	models.CategoryAction: {
		{Token: "{{action.id}}", Name: "Action ID", Description: "Identifier of the current action"},
		{Token: "{{action.name}}", Name: "Action Name", Description: "Display name of the current action"},
		{Token: "{{action.type}}", Name: "Action Type", Description: "Kind of the current action"},
		{Token: "{{action.input}}", Name: "Action Input", Description: "Input handed to the current action"},
		{Token: "{{action.output}}", Name: "Action Output", Description: "Output produced by the current action"},
		{Token: "{{action.params}}", Name: "Action Parameters", Description: "Parameter block of the current action"},
	},
	models.CategoryPrompt: {
		{Token: "{{prompt.name}}", Name: "Prompt Name", Description: "Display name of the active prompt"},
		{Token: "{{prompt.text}}", Name: "Prompt Text", Description: "Body text of the active prompt"},
		{Token: "{{prompt.system}}", Name: "System Prompt", Description: "System portion of the active prompt"},
		{Token: "{{prompt.variables}}", Name: "Prompt Variables", Description: "Variables defined by the active prompt"},
	},
	models.CategoryCuration: {
		{Token: "{{curation.item}}", Name: "Curation Item", Description: "Item currently under review"},
		{Token: "{{curation.score}}", Name: "Curation Score", Description: "Score assigned to the current item"},
		{Token: "{{curation.criteria}}", Name: "Curation Criteria", Description: "Criteria the item is judged against"},
		{Token: "{{curation.notes}}", Name: "Curation Notes", Description: "Reviewer notes on the current item"},
	},
	models.CategorySystem: {
		{Token: "{{date}}", Name: "Date", Description: "Current date"},
		{Token: "{{time}}", Name: "Time", Description: "Current time"},
		{Token: "{{datetime}}", Name: "Date and Time", Description: "Current date and time"},
		{Token: "{{random.uuid}}", Name: "Random UUID", Description: "Freshly generated UUID"},
		{Token: "{{random.number}}", Name: "Random Number", Description: "Freshly generated random number"},
		{Token: "{{newline}}", Name: "Newline", Description: "Literal line break"},
	},
}
