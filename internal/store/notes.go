package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// NoteStore owns the collection of notes, keyed by normalized title.
// Insertion order is preserved for listing and search results.
type NoteStore struct {
	order []string
	items map[string]*types.Note

	now func() time.Time
}

// NewNoteStore returns an empty note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		items: make(map[string]*types.Note),
		now:   time.Now,
	}
}

// Len returns the number of notes.
func (s *NoteStore) Len() int { return len(s.order) }

// Get returns the note with the given title by exact normalized-key lookup.
// Returns ErrNoteNotFound.
func (s *NoteStore) Get(title string) (*types.Note, error) {
	n, ok := s.items[types.NormalizeTitle(title)]
	if !ok {
		return nil, fmt.Errorf("note %q: %w", title, types.ErrNoteNotFound)
	}
	return n, nil
}

// Add creates a note with the given title and body.
// Returns ErrInvalidTitle or ErrDuplicateNote; the store is unchanged on
// error.
func (s *NoteStore) Add(title, body string) (*types.Note, error) {
	if err := types.ValidateTitle(title); err != nil {
		return nil, err
	}
	key := types.NormalizeTitle(title)
	if _, ok := s.items[key]; ok {
		return nil, fmt.Errorf("note %q: %w", title, types.ErrDuplicateNote)
	}

	n := &types.Note{
		ID:        newID(),
		Title:     displayName(title),
		Body:      body,
		CreatedAt: s.now(),
	}
	s.items[key] = n
	s.order = append(s.order, key)
	return n, nil
}

// Put inserts a fully formed note, used by snapshot loading. The same
// uniqueness invariant applies as for Add.
func (s *NoteStore) Put(n *types.Note) error {
	if err := types.ValidateTitle(n.Title); err != nil {
		return err
	}
	key := n.Key()
	if _, ok := s.items[key]; ok {
		return fmt.Errorf("note %q: %w", n.Title, types.ErrDuplicateNote)
	}
	s.items[key] = n
	s.order = append(s.order, key)
	return nil
}

// Edit overwrites the note body. Edit and Replace are the same operation
// under two verbs, kept for command symmetry.
func (s *NoteStore) Edit(title, newBody string) error {
	return s.Replace(title, newBody)
}

// Replace overwrites the note body wholesale.
func (s *NoteStore) Replace(title, newBody string) error {
	n, err := s.Get(title)
	if err != nil {
		return err
	}
	n.Body = newBody
	return nil
}

// Delete removes the note. Returns ErrNoteNotFound.
func (s *NoteStore) Delete(title string) error {
	key := types.NormalizeTitle(title)
	if _, ok := s.items[key]; !ok {
		return fmt.Errorf("note %q: %w", title, types.ErrNoteNotFound)
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddTag adds a tag to the note. A tag already present is an error.
func (s *NoteStore) AddTag(title, tag string) error {
	n, err := s.Get(title)
	if err != nil {
		return err
	}
	if err := n.AddTag(tag); err != nil {
		return fmt.Errorf("note %q, tag %q: %w", title, tag, err)
	}
	return nil
}

// RemoveTag deletes a tag from the note.
func (s *NoteStore) RemoveTag(title, tag string) error {
	n, err := s.Get(title)
	if err != nil {
		return err
	}
	if err := n.RemoveTag(tag); err != nil {
		return fmt.Errorf("note %q, tag %q: %w", title, tag, err)
	}
	return nil
}

// FindByTag returns notes carrying the tag, compared case-insensitively,
// in insertion order.
func (s *NoteStore) FindByTag(tag string) []*types.Note {
	results := make([]*types.Note, 0)
	for _, key := range s.order {
		if n := s.items[key]; n.HasTag(tag) {
			results = append(results, n)
		}
	}
	return results
}

// SortByTag returns notes carrying the tag, ordered by normalized title
// ascending.
func (s *NoteStore) SortByTag(tag string) []*types.Note {
	results := s.FindByTag(tag)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Key() < results[j].Key()
	})
	return results
}

// SearchByText returns notes whose title or body contains the trimmed
// query, case-insensitively, in insertion order. An empty or
// whitespace-only query matches all notes.
func (s *NoteStore) SearchByText(query string) []*types.Note {
	q := strings.TrimSpace(query)
	results := make([]*types.Note, 0)
	for _, key := range s.order {
		if n := s.items[key]; n.MatchesText(q) {
			results = append(results, n)
		}
	}
	return results
}

// Attach links the note to a contact by name. The contact is not required
// to exist; the link is stored optimistically and resolved at read time.
func (s *NoteStore) Attach(title, contactName string) error {
	n, err := s.Get(title)
	if err != nil {
		return err
	}
	n.AttachTo(contactName)
	return nil
}

// Detach clears the note's contact link.
func (s *NoteStore) Detach(title string) error {
	n, err := s.Get(title)
	if err != nil {
		return err
	}
	n.Detach()
	return nil
}

// NotesForContact returns notes linked to the given contact name, in
// insertion order. Links are resolved against the contact store's current
// key set: once the contact is removed, its dangling links read as unlinked
// and the result is empty, never an error. A nil contact store skips the
// existence check and matches on the stored link alone.
func (s *NoteStore) NotesForContact(contactName string, contacts *ContactStore) []*types.Note {
	key := types.NormalizeName(contactName)
	results := make([]*types.Note, 0)
	if contacts != nil && !contacts.Exists(contactName) {
		return results
	}
	for _, k := range s.order {
		if n := s.items[k]; n.LinkedContact != "" && n.LinkedContact == key {
			results = append(results, n)
		}
	}
	return results
}

// ResolveLink returns the live display name of the note's linked contact,
// or the empty string when the note is unlinked or the link dangles.
func ResolveLink(n *types.Note, contacts *ContactStore) string {
	if n.LinkedContact == "" || contacts == nil {
		return ""
	}
	c, err := contacts.Get(n.LinkedContact)
	if err != nil {
		return ""
	}
	return c.Name
}

// ListAll returns every note in insertion order.
func (s *NoteStore) ListAll() []*types.Note {
	results := make([]*types.Note, 0, len(s.order))
	for _, key := range s.order {
		results = append(results, s.items[key])
	}
	return results
}
