package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gencat/internal/diag"
	"gencat/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "gencat",
	Short:         "Localization catalog generator front end",
	Long:          `gencat loads a project's compilation configuration and prepares it for catalog generation`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(escapeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		// A KnownError is already explained; print its message and stop.
		// Anything else is unexpected and surfaces with full context.
		if diag.IsKnown(err) {
			fmt.Fprintln(os.Stderr, err.Error())
		} else {
			fmt.Fprintf(os.Stderr, "gencat: %+v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor maps the --color mode to an on/off decision for out.
func resolveColor(mode string, out *os.File) bool {
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return isTerminal(out)
	}
}
