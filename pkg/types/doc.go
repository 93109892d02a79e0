// Package types defines the Contact and Note entity types, the calendar
// date value type, field validation rules, and standard error values shared
// by the PocketPal stores, the snapshot gateway, and the CLI.
package types
