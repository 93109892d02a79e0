package types

import (
	"strings"
	"time"
)

// Note holds one free-standing note. Tags are stored normalized and
// deduplicated. LinkedContact is a plain name reference, never ownership: a
// link whose contact has been removed reads as unlinked.
type Note struct {
	ID            string    // UUID v7, generated on creation.
	Title         string    // Display title as entered, trimmed.
	Body          string    // Free text, overwritable.
	Tags          []string  // Normalized, unique, insertion order.
	LinkedContact string    // Normalized contact name; empty means unlinked.
	CreatedAt     time.Time // Timestamp of creation.
}

// Key returns the normalized uniqueness key for the note.
func (n *Note) Key() string { return NormalizeTitle(n.Title) }

// HasTag reports whether the note carries the tag, compared
// case-insensitively.
func (n *Note) HasTag(tag string) bool {
	norm := NormalizeTag(tag)
	for _, t := range n.Tags {
		if t == norm {
			return true
		}
	}
	return false
}

// AddTag appends a normalized tag. A tag already present is an error, not a
// silent no-op. Returns ErrInvalidTag or ErrDuplicateTag; the tag set is
// unchanged on error.
func (n *Note) AddTag(tag string) error {
	if err := ValidateTag(tag); err != nil {
		return err
	}
	if n.HasTag(tag) {
		return ErrDuplicateTag
	}
	n.Tags = append(n.Tags, NormalizeTag(tag))
	return nil
}

// RemoveTag deletes the tag. Returns ErrTagNotFound if it is not present.
func (n *Note) RemoveTag(tag string) error {
	norm := NormalizeTag(tag)
	for i, t := range n.Tags {
		if t == norm {
			n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
			return nil
		}
	}
	return ErrTagNotFound
}

// AttachTo stores an optimistic link to a contact by normalized name. The
// contact is not required to exist; the link resolves lazily at read time.
func (n *Note) AttachTo(contactName string) {
	n.LinkedContact = NormalizeName(contactName)
}

// Detach clears the contact link.
func (n *Note) Detach() {
	n.LinkedContact = ""
}

// MatchesText reports whether the query occurs in the title or body,
// case-insensitively. The empty query matches every note.
func (n *Note) MatchesText(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Body), q)
}
