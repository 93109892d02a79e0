package main

import "github.com/spf13/cobra"

var changeCmd = &cobra.Command{
	Use:   "change NAME OLD_PHONE NEW_PHONE",
	Short: "Replace a contact's phone number",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := contacts.ChangePhone(args[0], args[1], args[2]); err != nil {
			return err
		}
		c, _ := contacts.Get(args[0])
		return ok("Phone number updated.", c)
	},
}
