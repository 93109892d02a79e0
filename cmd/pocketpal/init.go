package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pocketpal-dev/pocketpal/internal/paths"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	DataDir string `yaml:"data_dir,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize PocketPal storage",
	Long:  "Create the configuration and data directories and write empty snapshots.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// openBooks already created the config directory and default
	// config.yaml. Record an explicit data_dir when one was given.
	if flagDataDir != "" {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		if err := writeConfigDataDir(configDir, flagDataDir); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	// The shutdown flush writes both snapshots, creating them if absent.
	fmt.Fprintln(cmd.OutOrStdout(), "PocketPal initialized successfully")
	return nil
}

// writeConfigDataDir rewrites config.yaml with the given data directory.
func writeConfigDataDir(configDir, dataDir string) error {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&configFile{DataDir: abs})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(configDir, configFileExt), data, 0o644)
}
