package cli

import (
	"fmt"
	"io"
)

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "✓ %s\n", msg)
		} else {
			fmt.Fprintf(w, "OK: %s\n", msg)
		}
	}
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if !quiet {
		msg := fmt.Sprintf(format, args...)
		if !noColor {
			fmt.Fprintf(w, "ℹ %s\n", msg)
		} else {
			fmt.Fprintf(w, "INFO: %s\n", msg)
		}
	}
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "⚠ %s\n", msg)
	} else {
		fmt.Fprintf(w, "WARNING: %s\n", msg)
	}
}

// PrintError prints an error message
func PrintError(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if !noColor {
		fmt.Fprintf(w, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(w, "ERROR: %s\n", msg)
	}
}

// Global flags (will be set from cmd package)
var (
	quiet      bool
	noColor    bool
	debug      bool
	configPath string
	logPath    string
)

// GlobalFlags mirrors the persistent flags of the root command
type GlobalFlags struct {
	Quiet   bool
	NoColor bool
	Debug   bool
	Config  string
	LogFile string
}

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(flags GlobalFlags) {
	quiet = flags.Quiet
	noColor = flags.NoColor
	debug = flags.Debug
	configPath = flags.Config
	logPath = flags.LogFile
}
