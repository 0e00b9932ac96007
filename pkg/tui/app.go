package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// App is the root model: it owns the window size, the status bar and the
// global quit key, and routes everything else to the property panel.
type App struct {
	panel  *PropertyPanelModel
	width  int
	height int

	statusMsg      string
	statusLevel    NotifyLevel
	statusSeq      int
	statusDuration time.Duration
}

func NewApp(panel *PropertyPanelModel, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	return &App{
		panel:          panel,
		statusDuration: time.Duration(settings.UI.NotificationSeconds) * time.Second,
	}
}

func (a *App) Init() tea.Cmd {
	return a.panel.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.panel.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		return a, a.showStatus(NotifyInfo, string(msg))

	case NotifyMsg:
		return a, a.showStatus(msg.Level, msg.Text)

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil
	}

	_, cmd := a.panel.Update(msg)
	return a, cmd
}

// showStatus replaces the current notification and schedules its expiry.
// Later notifications invalidate earlier timers through the sequence number.
func (a *App) showStatus(level NotifyLevel, text string) tea.Cmd {
	a.statusSeq++
	a.statusMsg = text
	a.statusLevel = level

	seq := a.statusSeq
	return tea.Tick(a.statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (a *App) View() string {
	content := a.panel.View()

	if a.statusMsg != "" {
		text := a.statusMsg
		if a.width > 4 {
			text = wordwrap.String(text, a.width-4)
		}
		statusBar := statusBarStyle(a.statusLevel).Render(text)
		content = lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
	}

	return content
}
