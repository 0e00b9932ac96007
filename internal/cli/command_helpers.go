package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pluqqy/pluqqy-props/pkg/files"
	"github.com/pluqqy/pluqqy-props/pkg/models"
)

// CommandContext carries the settings and logger shared by all commands
type CommandContext struct {
	ConfigPath string
	Settings   *models.Settings
	Logger     *slog.Logger

	logFile io.Closer
}

// NewCommandContext creates a command context from the global flags.
// The logger writes to the --log-file path, or nowhere.
func NewCommandContext() (*CommandContext, error) {
	ctx := &CommandContext{
		ConfigPath: configPath,
	}

	if logPath == "" {
		ctx.Logger = NewLogger(nil, debug)
		return ctx, nil
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	ctx.logFile = f
	ctx.Logger = NewLogger(f, debug)
	return ctx, nil
}

// NewLogger returns a text logger writing to w. A nil writer discards.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close releases the log file, if any
func (c *CommandContext) Close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings(c.ConfigPath)
	if err != nil {
		c.Logger.Warn("using default settings", "path", c.ConfigPath, "error", err)
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadDocument validates path and reads the node stored there
func (c *CommandContext) LoadDocument(path string) (*models.Node, error) {
	if err := ValidateDocumentPath(path); err != nil {
		return nil, err
	}

	node, err := files.ReadNode(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("document loaded", "path", path, "properties", len(node.Properties))
	return node, nil
}

// SaveDocument writes node back to the path it was read from
func (c *CommandContext) SaveDocument(node *models.Node) error {
	if err := files.WriteNode(node.Path, node); err != nil {
		return err
	}
	c.Logger.Info("document saved", "path", node.Path)
	return nil
}
