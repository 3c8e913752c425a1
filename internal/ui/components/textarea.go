package components

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextArea wraps bubbles/textarea for multi-line reflection responses.
type TextArea struct {
	Model textarea.Model
}

// NewTextArea creates a new styled text area.
func NewTextArea(placeholder string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 2000
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text area.
func (t TextArea) View() string {
	return t.Model.View()
}

// Value returns the current text, trimmed of surrounding whitespace.
func (t TextArea) Value() string {
	return strings.TrimSpace(t.Model.Value())
}

// SetSize resizes the text area.
func (t *TextArea) SetSize(width, height int) {
	t.Model.SetWidth(width)
	t.Model.SetHeight(height)
}
