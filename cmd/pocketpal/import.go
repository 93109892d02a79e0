package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketpal-dev/pocketpal/internal/csvimport"
	"github.com/pocketpal-dev/pocketpal/internal/paths"
)

var importCmd = &cobra.Command{
	Use:   "import [DIR]",
	Short: "Import contacts.csv and notes.csv",
	Long: `Import reads contacts.csv and notes.csv from the given directory (the
data directory by default). Every row passes through the same validation as
interactive entry; rejected rows are reported and skipped, never partially
applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else {
		resolved, err := paths.ResolveDataDir(flagDataDir, configDataDir)
		if err != nil {
			return fmt.Errorf("resolve data dir: %w", err)
		}
		dir = resolved
	}

	report, err := csvimport.New(contacts, notes, logger).ImportDir(dir)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(report)
	}
	fmt.Printf("Imported %d contacts and %d notes.\n", report.ContactsAdded, report.NotesAdded)
	for _, rowErr := range report.Errors {
		fmt.Printf("skipped %s\n", rowErr)
	}
	return nil
}
