package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorVeryDim  = "242"
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196"
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorInfo     = "62"
	ColorError    = "196" // Red for errors (same as danger)
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorActive))

	HeaderPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// Property rows
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)

	InputFieldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	FocusedInputFieldStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Foreground(lipgloss.Color(ColorWhite))

	ErrorInputFieldStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Foreground(lipgloss.Color(ColorError))

	WarningInputFieldStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(ColorSelected)).
				Foreground(lipgloss.Color(ColorWarning))

	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorVeryDim)).
				Italic(true)
)

// statusBarStyle picks the status bar colors for a notification level
func statusBarStyle(level NotifyLevel) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch level {
	case NotifyWarning:
		return style.
			Background(lipgloss.Color(ColorWarning)).
			Foreground(lipgloss.Color(ColorDark))
	case NotifyError:
		return style.
			Background(lipgloss.Color(ColorDanger)).
			Foreground(lipgloss.Color(ColorWhite))
	default:
		return style.
			Background(lipgloss.Color(ColorInfo)).
			Foreground(lipgloss.Color("230"))
	}
}
