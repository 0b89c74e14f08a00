package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Rename RenameConfig `json:"rename" yaml:"rename"`
	UI     UIConfig     `json:"ui" yaml:"ui"`
}

type AIConfig struct {
	Model           string `json:"model" yaml:"model"`                         // Default: gemini-2.5-flash
	SummaryMaxChars int    `json:"summary_max_chars" yaml:"summary_max_chars"` // Default: 10000
}

type RenameConfig struct {
	MaxCollisionAttempts int    `json:"max_collision_attempts" yaml:"max_collision_attempts"` // Default: 10000
	Start                int    `json:"start" yaml:"start"`                                   // Default: 1
	Digits               int    `json:"digits" yaml:"digits"`                                 // Default: 3
	DateFormat           string `json:"date_format" yaml:"date_format"`                       // Default: %Y-%m-%d_%H%M%S
	DateKind             string `json:"date_kind" yaml:"date_kind"`                           // Default: modified
}

type UIConfig struct {
	NoColor bool `json:"no_color" yaml:"no_color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Model:           "gemini-2.5-flash",
			SummaryMaxChars: 10000,
		},
		Rename: RenameConfig{
			MaxCollisionAttempts: 10000,
			Start:                1,
			Digits:               3,
			DateFormat:           "%Y-%m-%d_%H%M%S",
			DateKind:             "modified",
		},
	}
}
