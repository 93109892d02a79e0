package main

import "github.com/spf13/cobra"

var addCmd = &cobra.Command{
	Use:   "add NAME PHONE",
	Short: "Add a contact, or another phone to an existing contact",
	Long: `Add creates a contact with one phone number. If the contact already
exists, the phone number is appended instead.

Example:
  pocketpal add "Jane Doe" 0501234567
  pocketpal add jane_doe 0507654321`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, phone := args[0], args[1]

	if contacts.Exists(name) {
		if err := contacts.AddPhone(name, phone); err != nil {
			return err
		}
		c, _ := contacts.Get(name)
		return ok("Contact updated.", c)
	}

	c, err := contacts.Add(name, phone)
	if err != nil {
		return err
	}
	return ok("Contact added.", c)
}
