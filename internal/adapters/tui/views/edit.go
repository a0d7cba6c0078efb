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

const (
	fieldName = iota
	fieldPath
	fieldTags
)

// EditModel is the add/edit form for a link. A nil target means a new link
// is being created.
type EditModel struct {
	ViewState
	store   ports.LinkStore
	form    *InputForm
	target  *domain.Link
	autoTag bool
}

// NewEditModel creates a new edit view model
func NewEditModel(store ports.LinkStore, autoTag bool) *EditModel {
	return &EditModel{
		store:   store,
		autoTag: autoTag,
	}
}

// SetTarget prepares the form for the given link, or for a new link when
// target is nil.
func (m *EditModel) SetTarget(target *domain.Link) {
	m.target = target
	name, path, tags := "", "", ""
	if target != nil {
		name, path, tags = target.Name, target.Path, target.Tags
	}
	m.form = NewInputForm(
		NewInputField("Name", "display name (defaults to base name)", name),
		NewInputField("Path", "file or directory path", path),
		NewInputField("Tags", "comma-separated tags", tags),
	)
	m.ClearMessage()
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	if m.form == nil {
		m.SetTarget(nil)
	}
	return m.form.Init()
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A failed submit keeps the form open with the error shown
	if e, ok := msg.(errMsg); ok {
		m.HandleError(e.err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToListMsg{}
			}

		case key.Matches(keyMsg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *EditModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.form.Value(fieldName))
	path := strings.TrimSpace(m.form.Value(fieldPath))
	tags := strings.TrimSpace(m.form.Value(fieldTags))

	if m.target == nil {
		cmd := commands.NewAddLinkCommand(m.store, name, path, tags)
		cmd.AutoTag = m.autoTag
		return func() tea.Msg {
			result, err := cmd.Execute(context.Background())
			if err != nil {
				return errMsg{err}
			}
			return EditDoneMsg{Message: result.Message}
		}
	}

	cmd := commands.NewEditLinkCommand(m.store, m.target.ID, ports.UpdateFields{
		Name: &name,
		Path: &path,
		Tags: &tags,
	})
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return EditDoneMsg{Message: result.Message}
	}
}

// HandleError shows a failed submit without leaving the form
func (m *EditModel) HandleError(err error) {
	m.SetMessage(err.Error(), true)
}

// View renders the edit view
func (m *EditModel) View() string {
	var b strings.Builder

	title := "Add link"
	if m.target != nil {
		title = "Edit link"
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(m.form.View())
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString(styles.StatusError.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpKey.Render("tab") + styles.HelpDesc.Render(" next field  ") +
		styles.HelpKey.Render("enter") + styles.HelpDesc.Render(" save  ") +
		styles.HelpKey.Render("esc") + styles.HelpDesc.Render(" cancel"))

	return styles.App.Render(b.String())
}
