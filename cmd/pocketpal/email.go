// Email commands: set and remove the single email slot.
package main

import "github.com/spf13/cobra"

var addEmailCmd = &cobra.Command{
	Use:   "add-email NAME EMAIL",
	Short: "Set a contact's email",
	Long:  "Add-email sets the contact's single email slot, replacing any previous value.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := contacts.SetEmail(args[0], args[1]); err != nil {
			return err
		}
		c, _ := contacts.Get(args[0])
		return ok("Email added.", c)
	},
}

var removeEmailCmd = &cobra.Command{
	Use:   "remove-email NAME EMAIL",
	Short: "Remove a contact's email",
	Long:  "Remove-email clears the email slot when the given address matches the stored one.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := contacts.RemoveEmail(args[0], args[1]); err != nil {
			return err
		}
		return ok("Email removed.", nil)
	},
}
