package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"

	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// SaveFunc persists a snapshot of the node
type SaveFunc func(node *models.Node) error

// PanelDocument owns the node and its save state
type PanelDocument struct {
	node     *models.Node
	save     SaveFunc
	revision int // bumped on every commit
	saved    int // revision last written
}

// PanelUIComponents holds widgets rendered around the property rows
type PanelUIComponents struct {
	items   []*PropertyItemModel
	help    help.Model
	confirm *ConfirmationModel
	keys    KeyMap
}

// PanelLayout tracks size and focus
type PanelLayout struct {
	width      int
	height     int
	focusIndex int
}

// PanelEnvironment carries settings and logging
type PanelEnvironment struct {
	settings *models.Settings
	logger   *slog.Logger
}
