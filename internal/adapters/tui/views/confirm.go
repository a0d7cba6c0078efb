package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/tui/styles"
	"linkhoard/internal/application/commands"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// ConfirmKeyMap defines key bindings for the delete confirmation
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmModel asks before deleting a link
type ConfirmModel struct {
	ViewState
	store  ports.LinkStore
	target domain.Link
	Keys   ConfirmKeyMap
}

// NewConfirmModel creates a new confirmation view model
func NewConfirmModel(store ports.LinkStore) *ConfirmModel {
	return &ConfirmModel{
		store: store,
		Keys:  DefaultConfirmKeys,
	}
}

// SetTarget sets the link up for deletion
func (m *ConfirmModel) SetTarget(link domain.Link) {
	m.target = link
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if e, ok := msg.(errMsg); ok {
		m.SetMessage(e.err.Error(), true)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}

		case key.Matches(keyMsg, m.Keys.Confirm):
			return m, m.remove()
		}
	}
	return m, nil
}

func (m *ConfirmModel) remove() tea.Cmd {
	cmd := commands.NewRemoveLinkCommand(m.store, m.target.ID)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return DeleteDoneMsg{Message: result.Message}
	}
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete link"))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Delete:"))
	b.WriteString("\n  ")
	b.WriteString(m.target.DisplayName())
	b.WriteString("  ")
	b.WriteString(styles.RowPath.Render(m.target.Path))
	b.WriteString("\n\n")
	if m.Message != "" {
		b.WriteString(styles.StatusError.Render(m.Message))
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))

	return styles.App.Render(b.String())
}
