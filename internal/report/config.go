package report

// Format selects the output flavor of a report.
type Format string

// Supported output formats.
const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// Marks are the glyphs printed in front of an issue to show its state.
type Marks struct {
	Open   string
	Closed string
}

// DefaultMarks returns the marks used when Config.Marks is left empty.
func DefaultMarks() Marks {
	return Marks{Open: "✗", Closed: "✓"}
}

// Config holds the settings of one report run. It is not modified while
// rendering.
type Config struct {
	Format    Format
	MaxLength int
	Crop      bool
	Wrap      bool
	Heading   string
	NoHeading bool
	// Repo is OWNER/NAME, HOST/OWNER/NAME, or a repository URL. When empty,
	// links are derived from each issue's URL.
	Repo  string
	Marks Marks
}

// marks returns the configured marks with defaults filled in.
func (c Config) marks() Marks {
	marks := c.Marks
	defaults := DefaultMarks()
	if marks.Open == "" {
		marks.Open = defaults.Open
	}
	if marks.Closed == "" {
		marks.Closed = defaults.Closed
	}
	return marks
}
