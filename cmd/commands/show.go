package commands

import (
	"bytes"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/models"
	"github.com/pluqqy/pluqqy-props/pkg/properties"
)

var (
	showFormat string
	showCopy   bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <document>",
		Short: "Display the properties of a node document",
		Long: `Display every property of a node document with its type, the control
used to edit it and its current value.

Examples:
  # Show a document as a table
  pluqqy-props show resize.yaml

  # Output as JSON
  pluqqy-props show resize.yaml -o json

  # Copy the YAML form to the clipboard
  pluqqy-props show resize.yaml -o yaml --copy`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(showFormat)
		},
		RunE: runShow,
	}

	cmd.Flags().StringVarP(&showFormat, "output", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&showCopy, "copy", false, "Also copy the output to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	node, err := ctx.LoadDocument(args[0])
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if showFormat == string(cli.FormatText) {
		writePropertyTable(&buf, node)
	} else if err := cli.OutputResults(&buf, showFormat, node); err != nil {
		return err
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if showCopy {
		if err := clipboard.WriteAll(buf.String()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess(cmd.ErrOrStderr(), "Copied %s to clipboard", node.Name)
	}
	return nil
}

func writePropertyTable(w io.Writer, node *models.Node) {
	fmt.Fprintf(w, "Node: %s\n\n", node.Name)

	table := cli.NewTableFormatter(w)
	table.Header("NAME", "TYPE", "CONTROL", "VALUE")
	for _, p := range node.Properties {
		table.Row(p.Name, typeLabel(p.Type), controlLabel(p.Type), properties.FormatValue(p.Value))
	}
	table.Flush()
}

func typeLabel(pt models.PropertyType) string {
	if pt == "" {
		return "-"
	}
	return string(pt)
}

// controlLabel names the editor control of pt; untyped properties are not editable
func controlLabel(pt models.PropertyType) string {
	if pt == "" {
		return "none"
	}
	return string(properties.InputTypeFor(pt))
}
