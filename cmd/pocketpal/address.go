package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var addAddressCmd = &cobra.Command{
	Use:   "add-address NAME ADDRESS...",
	Short: "Set a contact's address",
	Long:  "Add-address sets the contact's free-text address, replacing any previous value.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		address := strings.Join(args[1:], " ")
		if err := contacts.SetAddress(args[0], address); err != nil {
			return err
		}
		c, _ := contacts.Get(args[0])
		return ok("Address added.", c)
	},
}
