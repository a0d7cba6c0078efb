package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/tui/views"
	"linkhoard/internal/config"
	"linkhoard/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewList ViewState = iota
	ViewEdit
	ViewConfirm
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store    ports.LinkStore
	revealer ports.Revealer

	state   ViewState
	list    *views.ListModel
	edit    *views.EditModel
	confirm *views.ConfirmModel
	help    *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.LinkStore, revealer ports.Revealer, settings *config.Settings) *App {
	return &App{
		store:    store,
		revealer: revealer,
		state:    ViewList,
		list:     views.NewListModel(store, revealer, settings.DefaultTags, settings.AutoTag),
		edit:     views.NewEditModel(store, settings.AutoTag),
		confirm:  views.NewConfirmModel(store),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToEditMsg:
		a.state = ViewEdit
		a.edit.SetTarget(msg.Link)
		return a, a.edit.Init()

	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm.SetTarget(msg.Link)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToListMsg:
		a.state = ViewList
		return a, a.list.Reload()

	case views.EditDoneMsg:
		a.state = ViewList
		a.list.SetMessage(msg.Message, false)
		return a, a.list.Reload()

	case views.DeleteDoneMsg:
		a.state = ViewList
		a.list.SetMessage(msg.Message, false)
		return a, a.list.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewList:
		_, cmd = a.list.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewEdit:
		return a.edit.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.list.View()
	}
}
