package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pocketpal-dev/pocketpal/internal/paths"
	"github.com/pocketpal-dev/pocketpal/internal/snapshot"
	"github.com/pocketpal-dev/pocketpal/internal/store"
	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Process-wide state, constructed once in openBooks and flushed in
// closeBooks. The stores are owned by this process for its lifetime.
var (
	configDataDir string
	logger        *zap.Logger
	gateway       *snapshot.Gateway
	contacts      *store.ContactStore
	notes         *store.NoteStore

	// skipSave suppresses the shutdown flush; set by cleanup so removed
	// snapshots are not immediately rewritten.
	skipSave bool
)

var rootCmd = &cobra.Command{
	Use:     "pocketpal",
	Short:   "PocketPal is a local address book and note manager",
	Version: version,
	Long: `PocketPal stores contacts (name, phones, email, address, birthday)
and free-standing notes (title, body, tags) on your own disk. It supports
exact lookup, substring search, tag search, and birthday-window queries,
and keeps all state between sessions.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openBooks,
	PersistentPostRunE: closeBooks,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(phoneCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(addBirthdayCmd)
	rootCmd.AddCommand(showBirthdayCmd)
	rootCmd.AddCommand(birthdaysCmd)
	rootCmd.AddCommand(addEmailCmd)
	rootCmd.AddCommand(removeEmailCmd)
	rootCmd.AddCommand(addAddressCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(cleanupCmd)
}

// openBooks loads config, builds the logger and gateway, and loads both
// stores from their snapshots. A corrupt snapshot fails the command before
// any mutation; the on-disk state is left untouched for inspection.
func openBooks(cmd *cobra.Command, args []string) error {
	if skipBooks(cmd) {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	configDataDir = cfg.GetString(cfgKeyDataDir)

	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	logger = newLogger(flagVerbose)

	gateway, err = snapshot.New(types.Config{DataDir: dataDir}, logger)
	if err != nil {
		return err
	}

	contacts, notes, err = gateway.Load()
	if err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}
	return nil
}

// skipBooks reports whether a command runs without loaded stores: help,
// version, and cobra's completion machinery (the completion command, its
// per-shell subcommands, and the hidden __complete commands).
func skipBooks(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "version", "completion",
		cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	return cmd.HasParent() && cmd.Parent().Name() == "completion"
}

// closeBooks flushes both stores back to disk unless the command opted out.
func closeBooks(cmd *cobra.Command, args []string) error {
	if logger != nil {
		defer logger.Sync() //nolint:errcheck
	}
	if gateway == nil || skipSave {
		return nil
	}
	if err := gateway.Save(contacts, notes); err != nil {
		return fmt.Errorf("save snapshots: %w", err)
	}
	return nil
}

// newLogger returns a development logger in verbose mode and a no-op
// logger otherwise.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
