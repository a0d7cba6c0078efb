package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// List row styles
	RowName = lipgloss.NewStyle().
		Bold(true)

	RowPath = lipgloss.NewStyle().
		Foreground(Muted)

	RowTags = lipgloss.NewStyle().
		Foreground(Secondary)

	RowSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	RowGrabbed = lipgloss.NewStyle().
			Background(Warning).
			Foreground(White).
			Bold(true)

	RowStale = lipgloss.NewStyle().
			Foreground(Error).
			Strikethrough(true)

	// Cursor indicators
	CursorMarker  = "▸ "
	GrabbedMarker = "┃ "
	RowIndent     = "  "

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusInfo = lipgloss.NewStyle().
			Foreground(Secondary)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)
