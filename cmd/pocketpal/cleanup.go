package main

import (
	"github.com/spf13/cobra"

	"github.com/pocketpal-dev/pocketpal/internal/snapshot"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup SCOPE",
	Short: "Delete persisted snapshots (all, contacts, or notes)",
	Long: `Cleanup deletes the persisted snapshot files for the given scope.
Deleting one snapshot never touches the other; a missing file is not an
error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCleanup,
}

func runCleanup(cmd *cobra.Command, args []string) error {
	scope, err := snapshot.ParseScope(args[0])
	if err != nil {
		return err
	}
	if err := gateway.Cleanup(scope); err != nil {
		return err
	}
	// Without this, the shutdown flush would rewrite what was just removed.
	skipSave = true
	return ok("Snapshots removed.", nil)
}
