package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

var (
	typesFormat string
)

type typeInfo struct {
	Type    models.PropertyType `json:"type" yaml:"type"`
	Control models.InputType    `json:"control" yaml:"control"`
	Notes   string              `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// NewTypesCommand creates the types command
func NewTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the property types the editor understands",
		Long: `List every known property type with the control used to edit it.

Unknown types found in documents are edited as plain strings.

Examples:
  pluqqy-props types
  pluqqy-props types -o yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(typesFormat)
		},
		RunE: runTypes,
	}

	cmd.Flags().StringVarP(&typesFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runTypes(cmd *cobra.Command, args []string) error {
	infos := make([]typeInfo, 0, len(models.KnownPropertyTypes))
	for _, pt := range models.KnownPropertyTypes {
		infos = append(infos, typeInfo{
			Type:    pt,
			Control: properties.InputTypeFor(pt),
			Notes:   typeNotes(pt),
		})
	}

	if typesFormat != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), typesFormat, infos)
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("TYPE", "CONTROL", "NOTES")
	for _, info := range infos {
		table.Row(string(info.Type), string(info.Control), info.Notes)
	}
	table.Flush()
	return nil
}

func typeNotes(pt models.PropertyType) string {
	switch {
	case properties.IsUnsignedType(pt):
		return "no negative values, no decimal point"
	case properties.IsIntegerType(pt):
		return "no decimal point"
	case pt == models.PropertyTypeBool:
		return "commits on toggle"
	}
	return ""
}
