package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/pluqqy-props/cmd/commands"
	"github.com/pluqqy/pluqqy-props/internal/cli"
	"github.com/pluqqy/pluqqy-props/pkg/files"
)

// Version is set during build with -ldflags
var version = "dev"

var globalFlags cli.GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "pluqqy-props",
	Short: "Terminal editor for typed node properties",
	Long: `Pluqqy Props edits the typed properties of node documents stored as YAML.
Each property is shown with a control matching its type, values are checked
while typing, and only changed values are written back.

Run 'pluqqy-props <document>' or 'pluqqy-props edit <document>' to open the editor.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(globalFlags)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		edit := commands.NewEditCommand()
		edit.SetArgs(args)
		edit.SetOut(cmd.OutOrStdout())
		edit.SetErr(cmd.ErrOrStderr())
		return edit.Execute()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Pluqqy Props",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Pluqqy Props version %s\n", version)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&globalFlags.Config, "config", files.SettingsFile, "Settings file")
	flags.StringVar(&globalFlags.LogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&globalFlags.Debug, "debug", false, "Log debug messages")
	flags.BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&globalFlags.NoColor, "no-color", false, "Plain text output markers")

	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewTypesCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
