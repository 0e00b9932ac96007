package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

var (
	setDryRun bool
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <document> <property> <value>",
		Short: "Set one property without opening the editor",
		Long: `Set the value of one property of a node document.

The value goes through the same checks as the interactive editor: unsigned
properties reject negative numbers, integer properties reject decimal
points, and the text must convert to the property's type. The document is
only written when the value actually changes.

Examples:
  # Set a number
  pluqqy-props set resize.yaml width 800

  # Toggle a boolean off
  pluqqy-props set resize.yaml enabled false

  # Negative numbers are values, not flags
  pluqqy-props set resize.yaml offset -4

  # Check a value without writing (flags go before the document)
  pluqqy-props set --dry-run resize.yaml offset -4`,
		Args: cobra.ExactArgs(3),
		RunE: runSet,
	}

	cmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Validate the value without writing the document")
	// flag parsing stops at the document so a value like -4 stays positional
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	docPath, name, text := args[0], args[1], args[2]

	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	node, err := ctx.LoadDocument(docPath)
	if err != nil {
		return err
	}

	index := node.Property(name)
	if index < 0 {
		return fmt.Errorf("property '%s' not found in %s", name, node.Path)
	}
	p := node.Properties[index]

	value, changed, err := applyEdit(p, text)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", p.Name, err)
	}
	if !changed {
		cli.PrintInfo(cmd.OutOrStdout(), "%s is already %s", p.Name, properties.FormatValue(p.Value))
		return nil
	}

	ctx.Logger.Debug("property committed", "node", node.Name, "property", p.Name, "value", value)
	if setDryRun {
		cli.PrintInfo(cmd.OutOrStdout(), "%s would be set to %s", p.Name, properties.FormatValue(value))
		return nil
	}

	node.Properties[index].Value = value
	if err := ctx.SaveDocument(node); err != nil {
		return err
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Set %s = %s", p.Name, properties.FormatValue(value))
	return nil
}

// applyEdit runs text through a single edit session on p, as if it had been
// typed into p's control and the control had lost focus.
func applyEdit(p models.Property, text string) (any, bool, error) {
	if p.Type == "" {
		return nil, false, fmt.Errorf("property has no type and cannot be edited")
	}

	state := properties.NewEditState(p.Type, p.Value)
	state.Focus()

	value, commit, err := state.Change(text)
	if err != nil {
		return nil, false, err
	}

	if state.InputType() == models.InputTypeBoolean {
		if properties.Equal(value, p.Value, p.Type) {
			return nil, false, nil
		}
		return value, commit, nil
	}

	return state.Blur()
}
