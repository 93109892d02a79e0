package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var phoneCmd = &cobra.Command{
	Use:   "phone NAME",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := contacts.Get(args[0])
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(c.Phones)
		}
		fmt.Printf("%s's phones: %s\n", c.Name, strings.Join(c.Phones, ", "))
		return nil
	},
}
