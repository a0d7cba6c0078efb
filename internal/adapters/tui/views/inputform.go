package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"linkhoard/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
}

// InputField represents a single input field with label and textinput
type InputField struct {
	Label string
	Input textinput.Model
}

// InputForm manages multiple text input fields with focus handling
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputField creates a new input field with the given label and value
func NewInputField(label, placeholder, value string) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.SetValue(value)
	return InputField{Label: label, Input: input}
}

// NewInputForm creates a new input form with the given fields
func NewInputForm(fields ...InputField) *InputForm {
	form := &InputForm{
		Fields: fields,
		Keys:   DefaultInputFormKeys,
	}
	if len(fields) > 0 {
		form.Fields[0].Input.Focus()
	}
	return form
}

// Init returns the blink command for the focused input
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the input form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *InputForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, f.Keys.Tab) {
			f.NextField()
			return true, nil
		}
	}

	var cmd tea.Cmd
	if f.FocusedField >= 0 && f.FocusedField < len(f.Fields) {
		f.Fields[f.FocusedField].Input, cmd = f.Fields[f.FocusedField].Input.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the next field
func (f *InputForm) NextField() {
	if len(f.Fields) <= 1 {
		return
	}
	f.Fields[f.FocusedField].Input.Blur()
	f.FocusedField = (f.FocusedField + 1) % len(f.Fields)
	f.Fields[f.FocusedField].Input.Focus()
}

// Value returns the trimmed value of the field at index
func (f *InputForm) Value(index int) string {
	if index < 0 || index >= len(f.Fields) {
		return ""
	}
	return f.Fields[index].Input.Value()
}

// View renders the form fields with labels
func (f *InputForm) View() string {
	var out string
	for i, field := range f.Fields {
		if i > 0 {
			out += "\n"
		}
		out += styles.InputLabel.Render(field.Label) + "\n" + field.Input.View() + "\n"
	}
	return out
}
