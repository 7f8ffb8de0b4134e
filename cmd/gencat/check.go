package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gencat/internal/config"
	"gencat/internal/diagfmt"
	"gencat/internal/project"
	"gencat/internal/unit"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [config-file]",
	Short: "Load a compilation configuration and report problems",
	Long:  `Load and resolve a tsconfig-style configuration, preload its sources and print any diagnostics`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int8("context", 1, "source lines of context per diagnostic (0 disables)")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("no-cache", false, "disable the unit digest cache")
	checkCmd.Flags().Bool("quiet", false, "suppress the summary line")
}

func runCheck(cmd *cobra.Command, args []string) error {
	configPath, err := resolveConfigPath(args)
	if err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	var cache *unit.DiskCache
	if !noCache {
		// cache failures are not worth failing a check over
		cache, _ = unit.OpenDiskCache("gencat")
	}

	u, err := config.Load(configPath, cache)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	context, err := cmd.Flags().GetInt8("context")
	if err != nil {
		return fmt.Errorf("failed to get context flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	opts := diagfmt.PrettyOpts{
		Color:     resolveColor(colorMode, os.Stderr),
		Context:   context,
		PathMode:  diagfmt.PathModeStored,
		ShowNotes: true,
	}
	if fullPath {
		opts.PathMode = diagfmt.PathModeAbsolute
	}
	if wd, werr := os.Getwd(); werr == nil {
		opts.BaseDir = wd
	}

	items := u.Bag.Items()
	if len(items) > maxDiagnostics {
		items = items[:maxDiagnostics]
	}
	diagfmt.Pretty(os.Stderr, items, u.FileSet, opts)

	if !quiet {
		if u.Changed != nil {
			fmt.Printf("checked %d files (%d changed since last run)\n", len(u.Files), len(u.Changed))
		} else {
			fmt.Printf("checked %d files\n", len(u.Files))
		}
	}

	if u.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// resolveConfigPath picks the config file: an explicit argument wins,
// otherwise the workspace manifest's setting, otherwise tsconfig.json in
// the current directory.
func resolveConfigPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	manifestPath, ok, err := project.FindManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "tsconfig.json", nil
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return "", err
	}
	return manifest.ConfigPath, nil
}
