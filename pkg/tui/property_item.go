package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

const defaultLabelWidth = 18

// PropertyItemModel is one label + control row. Without a property type
// it renders nothing and ignores every message.
type PropertyItemModel struct {
	Name         string
	PropertyType models.PropertyType

	// Style wraps the whole row
	Style      lipgloss.Style
	LabelWidth int

	input *CustomInputModel
}

// NewPropertyItem creates a row for a property. An empty pt yields an
// invisible item.
func NewPropertyItem(name string, pt models.PropertyType, value any, onUpdate UpdateFunc) *PropertyItemModel {
	item := &PropertyItemModel{
		Name:         name,
		PropertyType: pt,
		Style:        lipgloss.NewStyle(),
		LabelWidth:   defaultLabelWidth,
	}
	if pt != "" {
		item.input = NewCustomInput(name, pt, value, onUpdate)
	}
	return item
}

// Visible reports whether the item renders anything
func (m *PropertyItemModel) Visible() bool {
	return m.input != nil
}

// Input exposes the control, nil for an invisible item
func (m *PropertyItemModel) Input() *CustomInputModel {
	return m.input
}

func (m *PropertyItemModel) Focus() tea.Cmd {
	if m.input == nil {
		return nil
	}
	return m.input.Focus()
}

func (m *PropertyItemModel) Blur() tea.Cmd {
	if m.input == nil {
		return nil
	}
	return m.input.Blur()
}

func (m *PropertyItemModel) Focused() bool {
	return m.input != nil && m.input.Focused()
}

// SetValue forwards a committed value pushed by the owner
func (m *PropertyItemModel) SetValue(v any) {
	if m.input != nil {
		m.input.SetValue(v)
	}
}

func (m *PropertyItemModel) SetInputWidth(width int) {
	if m.input != nil {
		m.input.SetWidth(width)
	}
}

func (m *PropertyItemModel) Update(msg tea.Msg) tea.Cmd {
	if m.input == nil {
		return nil
	}
	return m.input.Update(msg)
}

func (m *PropertyItemModel) View() string {
	if m.input == nil {
		return ""
	}

	width := m.LabelWidth
	if width <= 0 {
		width = defaultLabelWidth
	}

	labelStyle := LabelStyle
	if m.input.Focused() {
		labelStyle = FocusedLabelStyle
	}
	label := truncate.StringWithTail(m.Name+":", uint(width-1), "…")
	label = labelStyle.Width(width).Render(label)

	row := lipgloss.JoinHorizontal(lipgloss.Top, label, m.input.View())
	return m.Style.Render(row)
}
