package main

import "github.com/spf13/cobra"

var removeCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a contact",
	Long: `Remove deletes the contact. Notes attached to the contact are kept;
their links simply read as unlinked afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	if err := contacts.Remove(args[0]); err != nil {
		return err
	}
	return ok("Contact removed.", nil)
}
