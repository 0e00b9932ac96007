package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document>",
		Short: "Check every stored value against its property type",
		Long: `Check that every value stored in a node document could have been
entered through the editor: unsigned values are not negative, integer values
have no decimal point, and each value converts to its property's type.

Properties without a type are reported as warnings; they are never shown in
the editor. The command fails when any value is invalid.

Examples:
  pluqqy-props validate resize.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	node, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failures := 0
	for _, p := range node.Properties {
		if p.Type == "" {
			cli.PrintWarning(out, "%s: no type, not editable", p.Name)
			continue
		}
		if err := checkStoredValue(p); err != nil {
			ctx.Logger.Debug("stored value rejected", "property", p.Name, "error", err)
			cli.PrintError(out, "%s: %v", p.Name, err)
			failures++
			continue
		}
		cli.PrintSuccess(out, "%s (%s) = %s", p.Name, p.Type, properties.FormatValue(p.Value))
	}

	if failures > 0 {
		return fmt.Errorf("%d invalid propert%s in %s", failures, pluralY(failures), node.Path)
	}
	return nil
}

func checkStoredValue(p models.Property) error {
	text := properties.FormatValue(p.Value)
	if err := properties.CheckValue(text, p.Type, properties.InputTypeFor(p.Type)); err != nil {
		return err
	}
	_, err := properties.ParseValue(text, p.Type)
	return err
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
