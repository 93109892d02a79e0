// JSON record structures mirroring the on-disk snapshot format.
package snapshot

import (
	"fmt"
	"time"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// contactRecord represents a contact in contacts.jsonl.
type contactRecord struct {
	ContactID string   `json:"contact_id"`
	Name      string   `json:"name"`
	Phones    []string `json:"phones"`
	Email     string   `json:"email,omitempty"`
	Address   string   `json:"address,omitempty"`
	Birthday  string   `json:"birthday,omitempty"`
	CreatedAt string   `json:"created_at"`
}

// noteRecord represents a note in notes.jsonl.
type noteRecord struct {
	NoteID        string   `json:"note_id"`
	Title         string   `json:"title"`
	Body          string   `json:"body"`
	Tags          []string `json:"tags"`
	LinkedContact string   `json:"linked_contact,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

func contactToRecord(c *types.Contact) contactRecord {
	rec := contactRecord{
		ContactID: c.ID,
		Name:      c.Name,
		Phones:    c.Phones,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.Phones == nil {
		rec.Phones = []string{}
	}
	if c.Birthday != nil {
		rec.Birthday = c.Birthday.String()
	}
	return rec
}

// contactFromRecord rebuilds a contact by feeding each field through the
// entity's own operations, so a snapshot record obeys the same invariants
// as interactive entry: validated phones without duplicates, a validated
// email, a calendar-valid birthday.
func contactFromRecord(rec contactRecord) (*types.Contact, error) {
	c := &types.Contact{
		ID:      rec.ContactID,
		Name:    rec.Name,
		Phones:  []string{},
		Address: rec.Address,
	}
	for _, phone := range rec.Phones {
		if err := c.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("phone %q: %w", phone, err)
		}
	}
	if rec.Email != "" {
		if err := c.SetEmail(rec.Email); err != nil {
			return nil, fmt.Errorf("email %q: %w", rec.Email, err)
		}
	}
	if rec.Birthday != "" {
		d, err := types.ParseDate(rec.Birthday)
		if err != nil {
			return nil, fmt.Errorf("birthday: %w", err)
		}
		c.Birthday = &d
	}
	if rec.CreatedAt != "" {
		tm, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("created_at: %w", err)
		}
		c.CreatedAt = tm
	}
	return c, nil
}

func noteToRecord(n *types.Note) noteRecord {
	rec := noteRecord{
		NoteID:        n.ID,
		Title:         n.Title,
		Body:          n.Body,
		Tags:          n.Tags,
		LinkedContact: n.LinkedContact,
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return rec
}

// noteFromRecord rebuilds a note through the entity's own operations, so
// the loaded tag set is validated, normalized, and free of duplicates.
func noteFromRecord(rec noteRecord) (*types.Note, error) {
	n := &types.Note{
		ID:    rec.NoteID,
		Title: rec.Title,
		Body:  rec.Body,
		Tags:  []string{},
	}
	for _, tag := range rec.Tags {
		if err := n.AddTag(tag); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
	}
	if rec.LinkedContact != "" {
		n.AttachTo(rec.LinkedContact)
	}
	if rec.CreatedAt != "" {
		tm, err := time.Parse(time.RFC3339, rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("created_at: %w", err)
		}
		n.CreatedAt = tm
	}
	return n, nil
}
