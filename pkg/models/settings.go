package models

// Settings represents the application configuration
type Settings struct {
	UI     UISettings     `yaml:"ui"`
	Editor EditorSettings `yaml:"editor"`
}

// UISettings controls layout and notifications
type UISettings struct {
	NotificationSeconds int  `yaml:"notification_seconds"`
	LabelWidth          int  `yaml:"label_width"`
	InputWidth          int  `yaml:"input_width"`
	ShowHelp            bool `yaml:"show_help"`
}

// EditorSettings controls what happens to committed values
type EditorSettings struct {
	AutoSave bool `yaml:"auto_save"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		UI: UISettings{
			NotificationSeconds: 3,
			LabelWidth:          18,
			InputWidth:          32,
			ShowHelp:            true,
		},
		Editor: EditorSettings{
			AutoSave: false,
		},
	}
}

// ApplyDefaults fills zero values left by a partial settings file
func (s *Settings) ApplyDefaults() {
	defaults := DefaultSettings()
	if s.UI.NotificationSeconds <= 0 {
		s.UI.NotificationSeconds = defaults.UI.NotificationSeconds
	}
	if s.UI.LabelWidth <= 0 {
		s.UI.LabelWidth = defaults.UI.LabelWidth
	}
	if s.UI.InputWidth <= 0 {
		s.UI.InputWidth = defaults.UI.InputWidth
	}
}
