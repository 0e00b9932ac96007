package tui

import (
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

const (
	defaultInputWidth = 32
	inputCharLimit    = 256
	numberRunes       = "+-.eE"
)

var lastInputID int64

func nextInputID() int {
	return int(atomic.AddInt64(&lastInputID, 1))
}

// UpdateFunc receives a committed value and may return a follow-up command
type UpdateFunc func(value any) tea.Cmd

// CustomInputModel edits a single property value with the control that
// matches its type: a text field, a numeric field or a toggle.
//
// Keystrokes are validated as they arrive and only reach OnUpdate at blur,
// once per edit session. Toggles commit as soon as they flip.
type CustomInputModel struct {
	id       int
	name     string
	state    *properties.EditState
	input    textinput.Model
	keys     KeyMap
	focused  bool
	width    int
	onUpdate UpdateFunc
}

// NewCustomInput creates the control for a property
func NewCustomInput(name string, pt models.PropertyType, value any, onUpdate UpdateFunc) *CustomInputModel {
	m := &CustomInputModel{
		id:       nextInputID(),
		name:     name,
		state:    properties.NewEditState(pt, value),
		input:    textinput.New(),
		keys:     DefaultKeyMap(),
		width:    defaultInputWidth,
		onUpdate: onUpdate,
	}

	m.input.Prompt = ""
	m.input.CharLimit = inputCharLimit
	m.input.Width = m.width
	m.input.PlaceholderStyle = PlaceholderStyle
	if m.state.InputType() == models.InputTypeNumber {
		m.input.Placeholder = "0"
	}
	m.input.SetValue(m.state.Value())

	return m
}

func (m *CustomInputModel) Name() string                      { return m.name }
func (m *CustomInputModel) InputType() models.InputType       { return m.state.InputType() }
func (m *CustomInputModel) PropertyType() models.PropertyType { return m.state.PropertyType() }
func (m *CustomInputModel) Value() string                     { return m.state.Value() }
func (m *CustomInputModel) Committed() any                    { return m.state.Committed() }
func (m *CustomInputModel) Status() models.Status             { return m.state.Status() }
func (m *CustomInputModel) Focused() bool                     { return m.focused }

// SetWidth sets the width of text and number fields
func (m *CustomInputModel) SetWidth(width int) {
	if width <= 0 {
		return
	}
	m.width = width
	m.input.Width = width
}

// SetKeyMap replaces the control bindings
func (m *CustomInputModel) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// SetValue receives a committed value from the owner
func (m *CustomInputModel) SetValue(v any) {
	m.state.SetCommitted(v)
	if !m.focused {
		m.input.SetValue(m.state.Value())
	}
}

func (m *CustomInputModel) usesTextInput() bool {
	it := m.state.InputType()
	return it == models.InputTypeString || it == models.InputTypeNumber
}

// Focus starts an edit session
func (m *CustomInputModel) Focus() tea.Cmd {
	m.focused = true
	m.state.Focus()
	if m.usesTextInput() {
		m.input.CursorEnd()
		return m.input.Focus()
	}
	return nil
}

// Blur ends the edit session, committing the value if it changed. The
// validity flag is cleared by a message delivered on the next loop tick.
func (m *CustomInputModel) Blur() tea.Cmd {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.input.Blur()

	value, commit, err := m.state.Blur()
	m.input.SetValue(m.state.Value())

	cmds := []tea.Cmd{m.resetStatus()}
	if err != nil {
		cmds = append(cmds, notifyWarning(err))
	}
	if commit && m.onUpdate != nil {
		cmds = append(cmds, m.onUpdate(value))
	}
	return tea.Batch(cmds...)
}

func (m *CustomInputModel) resetStatus() tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return statusResetMsg{id: id}
	}
}

// Update handles a message for this control
func (m *CustomInputModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statusResetMsg:
		if msg.id == m.id {
			m.state.ResetStatus()
		}
		return nil

	case tea.KeyMsg:
		if !m.focused {
			return nil
		}

		switch m.state.InputType() {
		case models.InputTypeBoolean:
			if key.Matches(msg, m.keys.Toggle) {
				return m.toggle()
			}
			return nil

		case models.InputTypeString:
			if key.Matches(msg, m.keys.Clear) {
				return m.clear()
			}

		case models.InputTypeNumber:
			filtered, ok := filterNumberKey(msg)
			if !ok {
				return nil
			}
			msg = filtered
		}

		return m.edit(msg)
	}

	// cursor blinks and clipboard pastes
	if m.usesTextInput() {
		return m.edit(msg)
	}
	return nil
}

// edit applies msg to the text field and keeps the result only if the new
// text passes validation. textinput copies share their rune buffer, so a
// rejected edit is undone by restoring the previous text and cursor.
func (m *CustomInputModel) edit(msg tea.Msg) tea.Cmd {
	prev := m.input.Value()
	pos := m.input.Position()

	next, cmd := m.input.Update(msg)
	if next.Value() == prev {
		m.input = next
		return cmd
	}

	if _, _, err := m.state.Change(next.Value()); err != nil {
		m.input.SetValue(prev)
		m.input.SetCursor(pos)
		return notifyWarning(err)
	}
	m.input = next
	return cmd
}

func (m *CustomInputModel) clear() tea.Cmd {
	if _, _, err := m.state.Change(""); err != nil {
		return notifyWarning(err)
	}
	m.input.SetValue("")
	return nil
}

func (m *CustomInputModel) toggle() tea.Cmd {
	value, commit, err := m.state.Toggle()
	if err != nil {
		return notifyWarning(err)
	}
	if commit && m.onUpdate != nil {
		return m.onUpdate(value)
	}
	return nil
}

// filterNumberKey drops runes a numeric field can never contain. Editing
// keys (backspace, arrows) pass through untouched.
func filterNumberKey(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	switch msg.Type {
	case tea.KeySpace:
		return msg, false
	case tea.KeyRunes:
	default:
		return msg, true
	}

	kept := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if unicode.IsDigit(r) || strings.ContainsRune(numberRunes, r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return msg, false
	}
	msg.Runes = kept
	return msg, true
}

// View renders the control, or nothing for an unknown input type
func (m *CustomInputModel) View() string {
	switch m.state.InputType() {
	case models.InputTypeString, models.InputTypeNumber:
		return m.textView()
	case models.InputTypeBoolean:
		return m.toggleView()
	}
	return ""
}

func (m *CustomInputModel) textView() string {
	style := InputFieldStyle
	if m.focused {
		style = FocusedInputFieldStyle
	}
	switch m.state.Status() {
	case models.StatusError:
		style = ErrorInputFieldStyle
	case models.StatusWarning:
		style = WarningInputFieldStyle
	}

	field := style.Width(m.width + 1).Render(m.input.View())

	switch {
	case m.state.Status() == models.StatusError:
		field += " " + ErrorStyle.Render("✗")
	case m.focused && m.state.InputType() == models.InputTypeString && m.state.Value() != "":
		field += " " + DescriptionStyle.Render("⌫ ^x")
	}
	return field
}

func (m *CustomInputModel) toggleView() string {
	if m.state.Checked() {
		box := ToggleOnStyle.Render("[✓]") + " on"
		if m.focused {
			return CursorStyle.Render(box)
		}
		return box
	}
	box := ToggleOffStyle.Render("[ ]") + " off"
	if m.focused {
		return CursorStyle.Render(box)
	}
	return box
}
