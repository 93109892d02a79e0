// Shared output helpers for pocketpal CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pocketpal-dev/pocketpal/internal/store"
	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// absent marks an unset optional field in text output.
const absent = "N/A"

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// formatContact renders one contact as a single text line.
func formatContact(c *types.Contact) string {
	phones := absent
	if len(c.Phones) > 0 {
		phones = strings.Join(c.Phones, ", ")
	}
	email, address, birthday := c.Email, c.Address, absent
	if email == "" {
		email = absent
	}
	if address == "" {
		address = absent
	}
	if c.Birthday != nil {
		birthday = c.Birthday.String()
	}
	return fmt.Sprintf("%s | phones: %s | email: %s | address: %s | birthday: %s",
		c.Name, phones, email, address, birthday)
}

// printContacts renders a contact list as text or JSON per the global flag.
func printContacts(list []*types.Contact) error {
	if flagJSON {
		return printJSON(list)
	}
	if len(list) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}
	for _, c := range list {
		fmt.Println(formatContact(c))
	}
	return nil
}

// formatNote renders one note as a single text line, resolving the contact
// link against the live contact store.
func formatNote(n *types.Note) string {
	tags := absent
	if len(n.Tags) > 0 {
		tags = strings.Join(n.Tags, ", ")
	}
	linked := store.ResolveLink(n, contacts)
	if linked == "" {
		linked = "unlinked"
	}
	return fmt.Sprintf("%s | %s | tags: %s | contact: %s", n.Title, n.Body, tags, linked)
}

// printNotes renders a note list as text or JSON per the global flag.
func printNotes(list []*types.Note) error {
	if flagJSON {
		return printJSON(list)
	}
	if len(list) == 0 {
		fmt.Println("No notes found.")
		return nil
	}
	for _, n := range list {
		fmt.Println(formatNote(n))
	}
	return nil
}

// ok prints a plain confirmation message unless JSON output is requested,
// in which case the affected entity is printed instead.
func ok(msg string, entity any) error {
	if flagJSON && entity != nil {
		return printJSON(entity)
	}
	fmt.Println(msg)
	return nil
}
