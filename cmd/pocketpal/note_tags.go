// Note tag commands: add, remove, and query by tag.
package main

import "github.com/spf13/cobra"

var noteTagCmd = &cobra.Command{
	Use:   "tag TITLE TAG",
	Short: "Add a tag to a note",
	Long:  "Tag adds a tag to the note. Adding a tag that is already present is an error.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.AddTag(args[0], args[1]); err != nil {
			return err
		}
		n, _ := notes.Get(args[0])
		return ok("Tag added.", n)
	},
}

var noteUntagCmd = &cobra.Command{
	Use:   "untag TITLE TAG",
	Short: "Remove a tag from a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.RemoveTag(args[0], args[1]); err != nil {
			return err
		}
		n, _ := notes.Get(args[0])
		return ok("Tag removed.", n)
	},
}

var noteFindTagCmd = &cobra.Command{
	Use:   "find-tag TAG",
	Short: "Show notes carrying a tag, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNotes(notes.FindByTag(args[0]))
	},
}

var noteSortTagCmd = &cobra.Command{
	Use:   "sort-tag TAG",
	Short: "Show notes carrying a tag, ordered by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNotes(notes.SortByTag(args[0]))
	},
}
