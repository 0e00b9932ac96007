package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/tui"
)

// NewEditCommand creates the edit command
func NewEditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <document>",
		Short: "Edit the properties of a node document",
		Long: `Open a node document in the interactive property editor.

Every typed property gets a control matching its type: a text field for
strings, a numeric field for integers and floats, and a toggle for booleans.
Values are validated while typing and committed when the field loses focus.

Keys:
  tab / shift+tab   move between properties (commits the edit)
  space / enter     toggle a boolean
  ctrl+x            clear a text field
  ctrl+s            save the document
  ctrl+y            copy the focused value
  esc               quit

Examples:
  # Edit a document
  pluqqy-props edit resize.yaml

  # Edit with debug logging
  pluqqy-props edit resize.yaml --log-file props.log --debug`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateDocumentPath(args[0])
		},
		RunE: runEdit,
	}

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	settings := ctx.LoadSettingsWithDefault()
	node, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	panel := tui.NewPropertyPanel(node, settings, ctx.SaveDocument, ctx.Logger)
	app := tui.NewApp(panel, settings)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if panel.Dirty() {
		cli.PrintWarning(cmd.ErrOrStderr(), "Changes to %s were not saved", node.Path)
	}
	return nil
}
