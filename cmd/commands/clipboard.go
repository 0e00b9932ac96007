package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clipboard <document> <property>",
		Short: "Copy a property value to the clipboard",
		Long: `Copy the committed value of one property to the system clipboard.

Examples:
  # Copy a value
  pluqqy-props clipboard resize.yaml width

  # Same, using the alias
  pluqqy-props copy resize.yaml label`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}

	return cmd
}

func runClipboard(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	node, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	index := node.Property(args[1])
	if index < 0 {
		return fmt.Errorf("property '%s' not found in %s", args[1], node.Path)
	}
	p := node.Properties[index]

	if err := clipboard.WriteAll(properties.FormatValue(p.Value)); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	cli.PrintSuccess(cmd.OutOrStdout(), "Copied %s to clipboard", p.Name)
	return nil
}
