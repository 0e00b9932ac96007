package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

// PropertyPanelModel edits every property of a node, one row per property.
// Committed values are written into the node; saving is explicit unless
// auto save is enabled.
type PropertyPanelModel struct {
	PanelDocument
	PanelUIComponents
	PanelLayout
	PanelEnvironment
}

// NewPropertyPanel builds the rows for node. settings and logger may be nil.
func NewPropertyPanel(node *models.Node, settings *models.Settings, save SaveFunc, logger *slog.Logger) *PropertyPanelModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &PropertyPanelModel{
		PanelDocument: PanelDocument{
			node: node,
			save: save,
		},
		PanelUIComponents: PanelUIComponents{
			help:    help.New(),
			confirm: NewConfirmation(),
			keys:    DefaultKeyMap(),
		},
		PanelLayout: PanelLayout{
			focusIndex: -1,
		},
		PanelEnvironment: PanelEnvironment{
			settings: settings,
			logger:   logger,
		},
	}

	m.items = make([]*PropertyItemModel, len(node.Properties))
	for i, p := range node.Properties {
		item := NewPropertyItem(p.Name, p.Type, p.Value, m.commitFunc(i))
		item.LabelWidth = settings.UI.LabelWidth
		item.SetInputWidth(settings.UI.InputWidth)
		m.items[i] = item
	}

	return m
}

func (m *PropertyPanelModel) Node() *models.Node { return m.node }

// Dirty reports whether commits happened since the last successful save
func (m *PropertyPanelModel) Dirty() bool { return m.revision != m.saved }

// Items returns the property rows in document order
func (m *PropertyPanelModel) Items() []*PropertyItemModel { return m.items }

// FocusedItem returns the row being edited, or nil
func (m *PropertyPanelModel) FocusedItem() *PropertyItemModel {
	if m.focusIndex < 0 || m.focusIndex >= len(m.items) {
		return nil
	}
	return m.items[m.focusIndex]
}

// commitFunc writes a committed value into the node and pushes it back
// into the row so its edit state re-seeds from the owner.
func (m *PropertyPanelModel) commitFunc(index int) UpdateFunc {
	return func(value any) tea.Cmd {
		p := &m.node.Properties[index]
		m.logger.Debug("property committed",
			"node", m.node.Name,
			"property", p.Name,
			"type", string(p.Type),
			"value", value)

		p.Value = value
		m.items[index].SetValue(value)
		m.revision++

		if m.settings.Editor.AutoSave {
			return m.saveCmd()
		}
		return statusCmd(fmt.Sprintf("%s = %s", p.Name, properties.FormatValue(value)))
	}
}

func (m *PropertyPanelModel) Init() tea.Cmd {
	return m.moveFocus(1)
}

// moveFocus blurs the current row, committing its edit, and focuses the
// next visible row in direction dir.
func (m *PropertyPanelModel) moveFocus(dir int) tea.Cmd {
	n := len(m.items)
	if n == 0 {
		return nil
	}

	next := m.focusIndex
	for step := 0; step < n; step++ {
		next = (next + dir + n) % n
		if m.items[next].Visible() {
			break
		}
	}
	if !m.items[next].Visible() || next == m.focusIndex {
		return nil
	}

	var cmds []tea.Cmd
	if current := m.FocusedItem(); current != nil {
		cmds = append(cmds, current.Blur())
	}
	m.focusIndex = next
	cmds = append(cmds, m.items[next].Focus())
	return tea.Batch(cmds...)
}

func (m *PropertyPanelModel) snapshot() *models.Node {
	node := *m.node
	node.Properties = make([]models.Property, len(m.node.Properties))
	copy(node.Properties, m.node.Properties)
	return &node
}

func (m *PropertyPanelModel) saveCmd() tea.Cmd {
	if m.save == nil {
		return notify(NotifyWarning, "Saving is not available for this document")
	}
	node := m.snapshot()
	revision := m.revision
	save := m.save
	return func() tea.Msg {
		return documentSavedMsg{revision: revision, path: node.Path, err: save(node)}
	}
}

func (m *PropertyPanelModel) handleSaved(msg documentSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Error("failed to save document", "path", msg.path, "error", msg.err)
		return notify(NotifyError, fmt.Sprintf("Failed to save: %v", msg.err))
	}
	if msg.revision > m.saved {
		m.saved = msg.revision
	}
	m.logger.Info("document saved", "path", msg.path, "revision", msg.revision)
	return statusCmd("✓ Saved " + msg.path)
}

func (m *PropertyPanelModel) copyCmd() tea.Cmd {
	item := m.FocusedItem()
	if item == nil {
		return nil
	}
	name := item.Name
	value := properties.FormatValue(item.Input().Committed())
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return NotifyMsg{Level: NotifyError, Text: fmt.Sprintf("Failed to copy to clipboard: %v", err)}
		}
		return StatusMsg(fmt.Sprintf("✓ Copied %s to clipboard", name))
	}
}

// quit ends the pending edit first so its commit is not lost
func (m *PropertyPanelModel) quit() tea.Cmd {
	var blur tea.Cmd
	if item := m.FocusedItem(); item != nil {
		blur = item.Blur()
	}

	if !m.Dirty() {
		return tea.Quit
	}

	if m.settings.Editor.AutoSave && m.save != nil {
		if err := m.save(m.snapshot()); err != nil {
			m.logger.Error("failed to save document", "path", m.node.Path, "error", err)
			return tea.Batch(blur, notify(NotifyError, fmt.Sprintf("Failed to save: %v", err)))
		}
		m.saved = m.revision
		return tea.Quit
	}

	m.confirm.Show(ConfirmationConfig{
		Title:       "EXIT CONFIRMATION",
		Message:     "You have unsaved changes in " + m.node.Name + ".",
		Warning:     "Are you sure you want to exit?",
		Destructive: true,
		Width:       m.dialogWidth(),
	},
		func() tea.Cmd {
			m.logger.Info("discarding unsaved changes", "path", m.node.Path)
			return tea.Quit
		},
		func() tea.Cmd {
			if item := m.FocusedItem(); item != nil {
				return item.Focus()
			}
			return nil
		},
	)
	return blur
}

func (m *PropertyPanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case documentSavedMsg:
		return m, m.handleSaved(msg)

	case statusResetMsg:
		for _, item := range m.items {
			item.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Next):
			return m, m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.moveFocus(-1)
		case key.Matches(msg, m.keys.Save):
			return m, m.saveAll()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copyCmd()
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		}
	}

	if item := m.FocusedItem(); item != nil {
		return m, item.Update(msg)
	}
	return m, nil
}

// saveAll commits the row being edited, then saves. The row keeps focus.
func (m *PropertyPanelModel) saveAll() tea.Cmd {
	var cmds []tea.Cmd
	if item := m.FocusedItem(); item != nil {
		cmds = append(cmds, item.Blur())
		cmds = append(cmds, item.Focus())
	}
	cmds = append(cmds, m.saveCmd())
	return tea.Batch(cmds...)
}

func (m *PropertyPanelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	inputWidth := m.settings.UI.InputWidth
	if width > 0 {
		if room := width - m.settings.UI.LabelWidth - 10; room < inputWidth {
			inputWidth = room
		}
	}
	for _, item := range m.items {
		item.SetInputWidth(inputWidth)
	}
}

func (m *PropertyPanelModel) dialogWidth() int {
	if m.width > 8 && m.width-8 < 60 {
		return m.width - 8
	}
	return 60
}

func (m *PropertyPanelModel) View() string {
	if m.confirm.Active() {
		return HeaderPaddingStyle.Render(m.confirm.View())
	}

	var content strings.Builder

	heading := strings.ToUpper(m.node.Name)
	if m.Dirty() {
		heading += " *"
	}
	rule := ""
	if remaining := m.width - 8 - lipgloss.Width(heading); remaining > 0 {
		rule = " " + HeaderStyle.UnsetBold().Render(strings.Repeat(":", remaining))
	}
	content.WriteString(HeaderPaddingStyle.Render(HeaderStyle.Render(heading) + rule))
	content.WriteString("\n\n")

	for i, item := range m.items {
		if !item.Visible() {
			continue
		}
		marker := "  "
		if i == m.focusIndex {
			marker = CursorStyle.Render("▸ ")
		}
		content.WriteString(marker + item.View())
		content.WriteString("\n")
	}

	border := ActiveBorderStyle
	if m.width > 4 {
		border = border.Width(m.width - 2)
	}
	view := border.Render(content.String())

	if m.settings.UI.ShowHelp {
		view += "\n" + HeaderPaddingStyle.Render(m.help.View(m.keys))
	}
	return view
}
