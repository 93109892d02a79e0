package main

import "github.com/spf13/cobra"

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Show all contacts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printContacts(contacts.ListAll())
	},
}
