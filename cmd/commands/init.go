package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/files"
	"github.com/pluqqy/pluqqy-props/pkg/models"
)

var (
	initName     string
	initSettings bool
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <document>",
		Short: "Create a sample node document",
		Long: `Create a node document with one property of each control kind.

An existing document is never overwritten.

Examples:
  # Create resize.yaml with a node named "resize"
  pluqqy-props init resize.yaml

  # Pick the node name and also write the default settings file
  pluqqy-props init nodes/thumb.yaml --name thumbnail --settings`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateDocumentExtension(args[0]); err != nil {
				return err
			}
			if initName != "" {
				return cli.ValidateNodeName(initName)
			}
			return nil
		},
		RunE: runInit,
	}

	cmd.Flags().StringVar(&initName, "name", "", "Node name (default: the file name)")
	cmd.Flags().BoolVar(&initSettings, "settings", false, "Also write "+files.SettingsFile+" with the default settings")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	node, err := files.InitNode(args[0], initName)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	ctx.Logger.Info("document created", "path", node.Path, "node", node.Name)
	cli.PrintSuccess(cmd.OutOrStdout(), "Created %s with %d properties", node.Path, len(node.Properties))

	if initSettings {
		path := ctx.ConfigPath
		if path == "" {
			path = files.SettingsFile
		}
		if _, err := os.Stat(path); err == nil {
			cli.PrintWarning(cmd.OutOrStdout(), "%s already exists, left unchanged", path)
		} else if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
			return err
		} else {
			cli.PrintSuccess(cmd.OutOrStdout(), "Created %s", path)
		}
	}

	cli.PrintInfo(cmd.OutOrStdout(), "Run 'pluqqy-props edit %s' to edit it", node.Path)
	return nil
}
