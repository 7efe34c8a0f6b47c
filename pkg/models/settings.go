package models

// Settings represents the application configuration
type Settings struct {
	Picker PickerSettings `yaml:"picker"`
	UI     UISettings     `yaml:"ui"`
}

// PickerSettings controls the default picker behavior
type PickerSettings struct {
	Mode       string   `yaml:"mode"` // "popup", "inline" or "dropdown"
	ShowRecent bool     `yaml:"show_recent"`
	ShowSearch bool     `yaml:"show_search"`
	Categories []string `yaml:"categories,omitempty"` // empty means all categories
}

// UISettings controls UI preferences
type UISettings struct {
	ShowDescriptions bool `yaml:"show_descriptions"`
	CompactRows      bool `yaml:"compact_rows"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Picker: PickerSettings{
			Mode:       "popup",
			ShowRecent: true,
			ShowSearch: true,
			Categories: nil,
		},
		UI: UISettings{
			ShowDescriptions: true,
			CompactRows:      false,
		},
	}
}
