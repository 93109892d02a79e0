package main

import "github.com/spf13/cobra"

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search contacts by partial name",
	Long: `Search matches the query as a case-insensitive substring of contact
names and returns the matches in the order the contacts were added. An
empty query matches every contact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return printContacts(contacts.SearchByPartialName(query))
	},
}
