package config

// OutputFormat selects how games are written.
type OutputFormat int

const (
	TextOutput OutputFormat = iota // Rendered boards and move text
	JSONOutput                     // JSON game views
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSONOutput {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch s {
	case "text", "":
		return TextOutput, true
	case "json":
		return JSONOutput, true
	}
	return TextOutput, false
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format chooses text boards or JSON views
	Format OutputFormat

	// MaxLineLength is the maximum line length for move text
	MaxLineLength uint

	// ShowBoard renders the board before each prompt and after each game
	ShowBoard bool

	// ShowMoves includes the legal move list in game views
	ShowMoves bool

	// Indent pretty-prints JSON output
	Indent bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:        TextOutput,
		MaxLineLength: 80,
		ShowBoard:     true,
		ShowMoves:     true,
	}
}
