package views

import "linkhoard/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages shared across views

type errMsg struct {
	err error
}

type linksLoadedMsg struct {
	links []domain.Link
}

// opDoneMsg reports a completed store mutation; the list reloads on it.
type opDoneMsg struct {
	message string
}

// SwitchToEditMsg opens the edit form; a nil Link means "add new".
type SwitchToEditMsg struct {
	Link *domain.Link
}

// SwitchToConfirmMsg opens the delete confirmation for a link.
type SwitchToConfirmMsg struct {
	Link domain.Link
}

// SwitchToHelpMsg opens the help view.
type SwitchToHelpMsg struct{}

// SwitchToListMsg returns to the list view.
type SwitchToListMsg struct{}

// EditDoneMsg reports a committed add or edit.
type EditDoneMsg struct {
	Message string
}

// DeleteDoneMsg reports a committed delete.
type DeleteDoneMsg struct {
	Message string
}
