package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default card game config",
	Long: `Prints the built-in memory.yaml: timings, scoring, the custom grid
size and the card catalog.

With --write the file is saved to ~/.memory/configs/memory.yaml, where
play, menu and serve pick it up without --config.

Examples:
  memory config > my.yaml
  memory config --write`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if !flagConfigWrite {
			os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
			return
		}
		path, err := config.UserConfigPath()
		if err == nil {
			err = installConfig(os.Stdout, path, flagConfigForce)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "save the default config to the user config path")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "overwrite an existing user config")
}

// installConfig writes the default YAML to path. An existing file is kept
// unless force is set.
func installConfig(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to replace it", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
