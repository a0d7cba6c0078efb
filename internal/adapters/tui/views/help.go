package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/tui/styles"
)

// HelpModel shows the full key binding reference
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, func() tea.Msg {
			return SwitchToListMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	entries := []struct{ keys, desc string }{
		{"j/↓, k/↑", "move the cursor"},
		{"enter", "open the link in the file browser"},
		{"a", "add a link"},
		{"e", "edit the selected link"},
		{"d", "delete the selected link (asks first)"},
		{"m", "grab the selected link, j/k to move, enter to drop, esc to cancel"},
		{"p", "paste paths from the clipboard as new links"},
		{"y", "copy the selected link's path"},
		{"/", "filter by name, path or tags"},
		{"r", "reload from the store"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keys"))
	b.WriteString("\n")
	for _, e := range entries {
		b.WriteString("  ")
		b.WriteString(styles.HelpKey.Render(e.keys))
		b.WriteString("  ")
		b.WriteString(styles.HelpDesc.Render(e.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Press any key to go back."))

	return styles.App.Render(b.String())
}
