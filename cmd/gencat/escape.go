package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gencat/internal/synth"
)

var escapeCmd = &cobra.Command{
	Use:   "escape [string]",
	Short: "Render a string as a template literal",
	Long: `Escape an arbitrary string and print it as the template literal the
generator would splice into output. Reads stdin when no argument is given.
Doubles as a manual round-trip check for the escaping rules.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEscape,
}

func runEscape(cmd *cobra.Command, args []string) error {
	var value string
	if len(args) == 1 {
		value = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		value = string(data)
	}

	lit, err := synth.TemplateLiteral(value)
	if err != nil {
		return err
	}
	fmt.Println(lit.SourceText())
	return nil
}
