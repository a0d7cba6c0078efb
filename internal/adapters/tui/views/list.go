package views

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/tui/styles"
	"linkhoard/internal/application/commands"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// ListKeyMap defines key bindings for the list view
type ListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Grab   key.Binding
	Cancel key.Binding
	Filter key.Binding
	Copy   key.Binding
	Paste  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var ListKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open / drop"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Grab: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "grab/move"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste paths"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ListModel is the model for the ordered link list. It owns the drag state
// machine: idle → grabbed (drag-in-progress) → dropped or cancelled → idle.
// Commits go through the gesture classifier so a drop issues exactly one
// store call sequence.
type ListModel struct {
	ViewState
	store    ports.LinkStore
	revealer ports.Revealer

	defaultTags string
	autoTag     bool

	links  []domain.Link
	cursor int

	// drag-in-progress state
	grabbed   bool
	grabbedID int64
	dropIndex int

	// filter state
	filterInput   textinput.Model
	filtering     bool
	appliedFilter string
}

// NewListModel creates a new list view model
func NewListModel(store ports.LinkStore, revealer ports.Revealer, defaultTags string, autoTag bool) *ListModel {
	input := textinput.New()
	input.Placeholder = "Filter..."
	input.Prompt = "/ "

	return &ListModel{
		store:       store,
		revealer:    revealer,
		defaultTags: defaultTags,
		autoTag:     autoTag,
		filterInput: input,
	}
}

// Init initializes the list view
func (m *ListModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-queries the store with the applied filter
func (m *ListModel) Reload() tea.Cmd {
	filter := m.appliedFilter
	return func() tea.Msg {
		links, err := m.store.List(filter)
		if err != nil {
			return errMsg{err}
		}
		return linksLoadedMsg{links}
	}
}

// Grabbed reports whether a drag is in progress (for tests and app routing).
func (m *ListModel) Grabbed() bool {
	return m.grabbed
}

// Links returns the currently displayed rows.
func (m *ListModel) Links() []domain.Link {
	return m.links
}

// Update handles messages for the list view
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case linksLoadedMsg:
		m.links = msg.links
		if m.cursor >= len(m.links) {
			m.cursor = len(m.links) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case opDoneMsg:
		m.SetMessage(msg.message, false)
		return m, m.Reload()

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		if m.filtering {
			return m.updateFiltering(msg)
		}
		if m.grabbed {
			return m.updateGrabbed(msg)
		}
		return m.updateIdle(msg)
	}

	return m, nil
}

// updateFiltering handles keys while the filter input is focused
func (m *ListModel) updateFiltering(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListKeys.Cancel):
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.appliedFilter = ""
		return m, m.Reload()

	case msg.Type == tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)

	// Filter live as the user types
	if value := m.filterInput.Value(); value != m.appliedFilter {
		m.appliedFilter = value
		return m, tea.Batch(cmd, m.Reload())
	}
	return m, cmd
}

// updateGrabbed handles keys during drag-in-progress. Only three things can
// happen: the insertion preview moves, the drop commits, or the drag cancels.
func (m *ListModel) updateGrabbed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListKeys.Up):
		if m.dropIndex > 0 {
			m.dropIndex--
		}
		return m, nil

	case key.Matches(msg, ListKeys.Down):
		if m.dropIndex < len(m.links)-1 {
			m.dropIndex++
		}
		return m, nil

	case key.Matches(msg, ListKeys.Open):
		payload := domain.DropPayload{
			HasInternal: true,
			InternalID:  m.grabbedID,
			TargetIndex: m.dropIndex,
		}
		m.grabbed = false
		m.cursor = m.dropIndex
		return m, m.ingest(payload)

	case key.Matches(msg, ListKeys.Cancel), key.Matches(msg, ListKeys.Quit):
		// Released outside the list: no store mutation
		m.grabbed = false
		m.SetMessage("Move cancelled", false)
		return m, nil
	}

	return m, nil
}

// updateIdle handles keys in the idle state
func (m *ListModel) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ListKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, ListKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, ListKeys.Down):
		if m.cursor < len(m.links)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, ListKeys.Open):
		if link := m.selected(); link != nil {
			return m, m.reveal(link.Path)
		}
		return m, nil

	case key.Matches(msg, ListKeys.Add):
		return m, func() tea.Msg {
			return SwitchToEditMsg{Link: nil}
		}

	case key.Matches(msg, ListKeys.Edit):
		if link := m.selected(); link != nil {
			return m, func() tea.Msg {
				return SwitchToEditMsg{Link: link}
			}
		}
		return m, nil

	case key.Matches(msg, ListKeys.Delete):
		if link := m.selected(); link != nil {
			target := *link
			return m, func() tea.Msg {
				return SwitchToConfirmMsg{Link: target}
			}
		}
		return m, nil

	case key.Matches(msg, ListKeys.Grab):
		if m.appliedFilter != "" {
			m.SetMessage("Clear the filter before reordering", true)
			return m, nil
		}
		if link := m.selected(); link != nil {
			m.grabbed = true
			m.grabbedID = link.ID
			m.dropIndex = m.cursor
		}
		return m, nil

	case key.Matches(msg, ListKeys.Copy):
		if link := m.selected(); link != nil {
			if err := clipboard.WriteAll(link.Path); err != nil {
				m.SetMessage(fmt.Sprintf("clipboard write failed: %v", err), true)
			} else {
				m.SetMessage("Copied path", false)
			}
		}
		return m, nil

	case key.Matches(msg, ListKeys.Paste):
		return m, m.pasteFromClipboard()

	case key.Matches(msg, ListKeys.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, ListKeys.Cancel):
		if m.appliedFilter != "" {
			m.appliedFilter = ""
			m.filterInput.SetValue("")
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, ListKeys.Reload):
		return m, m.Reload()

	case key.Matches(msg, ListKeys.Help):
		return m, func() tea.Msg {
			return SwitchToHelpMsg{}
		}
	}

	return m, nil
}

func (m *ListModel) selected() *domain.Link {
	if m.cursor < 0 || m.cursor >= len(m.links) {
		return nil
	}
	return &m.links[m.cursor]
}

// ingest commits a drop payload through the gesture classifier
func (m *ListModel) ingest(payload domain.DropPayload) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewIngestDropCommand(m.store, payload)
		cmd.DefaultTags = m.defaultTags
		cmd.AutoTag = m.autoTag
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return opDoneMsg{result.Message}
	}
}

// pasteFromClipboard treats the clipboard contents as an external drop;
// terminals deliver dragged files as pasted (often quoted) paths.
func (m *ListModel) pasteFromClipboard() tea.Cmd {
	defaultTags, autoTag := m.defaultTags, m.autoTag
	store := m.store
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		if err != nil {
			return errMsg{fmt.Errorf("clipboard read failed: %w", err)}
		}
		cmd := commands.NewIngestDropCommand(store, domain.DropPayload{Text: text})
		cmd.DefaultTags = defaultTags
		cmd.AutoTag = autoTag
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		if result.Gesture.Kind == domain.GestureCancel {
			return errMsg{fmt.Errorf("clipboard holds no paths")}
		}
		return opDoneMsg{result.Message}
	}
}

// reveal opens a link target in the platform file browser
func (m *ListModel) reveal(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.revealer.Reveal(path); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{fmt.Sprintf("Opened %s", path)}
	}
}

// displayLinks returns the rows in render order. During a drag the grabbed
// row is shown at the insertion preview index.
func (m *ListModel) displayLinks() []domain.Link {
	if !m.grabbed {
		return m.links
	}
	var grabbed domain.Link
	rest := make([]domain.Link, 0, len(m.links))
	for _, l := range m.links {
		if l.ID == m.grabbedID {
			grabbed = l
			continue
		}
		rest = append(rest, l)
	}
	idx := m.dropIndex
	if idx > len(rest) {
		idx = len(rest)
	}
	out := make([]domain.Link, 0, len(m.links))
	out = append(out, rest[:idx]...)
	out = append(out, grabbed)
	out = append(out, rest[idx:]...)
	return out
}

// View renders the list view
func (m *ListModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("linkhoard — %d link(s)", len(m.links))
	if m.appliedFilter != "" {
		title += fmt.Sprintf(" (filter: %q)", m.appliedFilter)
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	rows := m.displayLinks()
	if len(rows) == 0 {
		b.WriteString(styles.Subtitle.Render("No links yet. Press a to add one, or p to paste paths."))
		b.WriteString("\n")
	}

	start, end := m.visibleRange(len(rows))
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n")
	}
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.StatusError.Render(m.Message))
		} else {
			b.WriteString(styles.StatusInfo.Render(m.Message))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelp())

	return styles.App.Render(b.String())
}

func (m *ListModel) renderRow(link domain.Link, index int) string {
	marker := styles.RowIndent
	nameStyle := styles.RowName
	pathStyle := styles.RowPath

	switch {
	case m.grabbed && link.ID == m.grabbedID:
		marker = styles.GrabbedMarker
		nameStyle = styles.RowGrabbed
	case !m.grabbed && index == m.cursor:
		marker = styles.CursorMarker
		nameStyle = styles.RowSelected
	}

	if _, err := os.Stat(link.Path); err != nil {
		// Target moved or deleted since the link was added
		pathStyle = styles.RowStale
	}

	row := marker + nameStyle.Render(link.DisplayName())
	if link.Tags != "" {
		row += "  " + styles.RowTags.Render("["+link.Tags+"]")
	}
	row += "  " + pathStyle.Render(link.Path)
	return row
}

func (m *ListModel) renderHelp() string {
	if m.grabbed {
		return styles.HelpKey.Render("j/k") + styles.HelpDesc.Render(" move  ") +
			styles.HelpKey.Render("enter") + styles.HelpDesc.Render(" drop  ") +
			styles.HelpKey.Render("esc") + styles.HelpDesc.Render(" cancel")
	}
	return styles.HelpKey.Render("a") + styles.HelpDesc.Render(" add  ") +
		styles.HelpKey.Render("e") + styles.HelpDesc.Render(" edit  ") +
		styles.HelpKey.Render("d") + styles.HelpDesc.Render(" delete  ") +
		styles.HelpKey.Render("m") + styles.HelpDesc.Render(" move  ") +
		styles.HelpKey.Render("/") + styles.HelpDesc.Render(" filter  ") +
		styles.HelpKey.Render("?") + styles.HelpDesc.Render(" help  ") +
		styles.HelpKey.Render("q") + styles.HelpDesc.Render(" quit")
}

// visibleRange returns a window of rows that fits the terminal height,
// keeping the active row in view.
func (m *ListModel) visibleRange(total int) (int, int) {
	avail := m.Height - 8
	if avail < 1 || total <= avail {
		return 0, total
	}
	active := m.cursor
	if m.grabbed {
		active = m.dropIndex
	}
	start := active - avail/2
	if start < 0 {
		start = 0
	}
	end := start + avail
	if end > total {
		end = total
		start = end - avail
	}
	return start, end
}
