// Note command group: create, edit, delete, and list notes.
package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteReplaceCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteSearchCmd)
	noteCmd.AddCommand(noteTagCmd)
	noteCmd.AddCommand(noteUntagCmd)
	noteCmd.AddCommand(noteFindTagCmd)
	noteCmd.AddCommand(noteSortTagCmd)
	noteCmd.AddCommand(noteAttachCmd)
	noteCmd.AddCommand(noteDetachCmd)
	noteCmd.AddCommand(noteForContactCmd)
}

var noteAddCmd = &cobra.Command{
	Use:   "add TITLE BODY...",
	Short: "Create a note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := notes.Add(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return ok("Note added.", n)
	},
}

var noteEditCmd = &cobra.Command{
	Use:   "edit TITLE BODY...",
	Short: "Overwrite a note's body",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Edit(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		n, _ := notes.Get(args[0])
		return ok("Note updated.", n)
	},
}

// Replace mirrors edit; both overwrite the body wholesale.
var noteReplaceCmd = &cobra.Command{
	Use:   "replace TITLE BODY...",
	Short: "Overwrite a note's body",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Replace(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		n, _ := notes.Get(args[0])
		return ok("Note updated.", n)
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete TITLE",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Delete(args[0]); err != nil {
			return err
		}
		return ok("Note deleted.", nil)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNotes(notes.ListAll())
	},
}

var noteSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search notes by title and body",
	Long: `Search matches the query as a case-insensitive substring of note
titles and bodies. An empty query matches every note.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return printNotes(notes.SearchByText(query))
	},
}
