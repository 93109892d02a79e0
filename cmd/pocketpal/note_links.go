// Note link commands: attach notes to contacts and query by contact.
package main

import "github.com/spf13/cobra"

var noteAttachCmd = &cobra.Command{
	Use:   "attach TITLE NAME",
	Short: "Link a note to a contact",
	Long: `Attach links the note to a contact by name. The contact does not have
to exist yet; the link is resolved when the note is read.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Attach(args[0], args[1]); err != nil {
			return err
		}
		n, _ := notes.Get(args[0])
		return ok("Note attached.", n)
	},
}

var noteDetachCmd = &cobra.Command{
	Use:   "detach TITLE",
	Short: "Unlink a note from its contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notes.Detach(args[0]); err != nil {
			return err
		}
		return ok("Note detached.", nil)
	},
}

var noteForContactCmd = &cobra.Command{
	Use:   "for-contact NAME",
	Short: "Show notes linked to a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printNotes(notes.NotesForContact(args[0], contacts))
	},
}
