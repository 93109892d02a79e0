package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// displayName trims a name and collapses internal whitespace runs for
// display; the uniqueness key is derived separately by NormalizeName.
func displayName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ContactStore owns the collection of contacts, keyed by normalized name.
// Insertion order is preserved for listing and search results.
type ContactStore struct {
	order []string
	items map[string]*types.Contact

	// now supplies the current time for birthday math; overridable in tests.
	now func() time.Time
}

// NewContactStore returns an empty contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		items: make(map[string]*types.Contact),
		now:   time.Now,
	}
}

// Len returns the number of contacts.
func (s *ContactStore) Len() int { return len(s.order) }

// Get returns the contact with the given name by exact normalized-key
// lookup. Returns ErrContactNotFound.
func (s *ContactStore) Get(name string) (*types.Contact, error) {
	c, ok := s.items[types.NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("contact %q: %w", name, types.ErrContactNotFound)
	}
	return c, nil
}

// Exists reports whether a contact with the given name is present.
func (s *ContactStore) Exists(name string) bool {
	_, ok := s.items[types.NormalizeName(name)]
	return ok
}

// Add creates a contact with one validated phone number.
// Returns ErrInvalidName, ErrDuplicateContact, or ErrInvalidPhone; the
// store is unchanged on error.
func (s *ContactStore) Add(name, phone string) (*types.Contact, error) {
	if err := types.ValidateName(name); err != nil {
		return nil, err
	}
	key := types.NormalizeName(name)
	if _, ok := s.items[key]; ok {
		return nil, fmt.Errorf("contact %q: %w", name, types.ErrDuplicateContact)
	}
	if err := types.ValidatePhone(phone); err != nil {
		return nil, fmt.Errorf("phone %q: %w", phone, err)
	}

	c := &types.Contact{
		ID:        newID(),
		Name:      displayName(name),
		Phones:    []string{phone},
		CreatedAt: s.now(),
	}
	s.items[key] = c
	s.order = append(s.order, key)
	return c, nil
}

// Put inserts a fully formed contact, used by snapshot loading and bulk
// import. The same uniqueness invariant applies as for Add.
func (s *ContactStore) Put(c *types.Contact) error {
	if err := types.ValidateName(c.Name); err != nil {
		return err
	}
	key := c.Key()
	if _, ok := s.items[key]; ok {
		return fmt.Errorf("contact %q: %w", c.Name, types.ErrDuplicateContact)
	}
	s.items[key] = c
	s.order = append(s.order, key)
	return nil
}

// AddPhone appends a phone number to an existing contact.
func (s *ContactStore) AddPhone(name, phone string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := c.AddPhone(phone); err != nil {
		return fmt.Errorf("contact %q, phone %q: %w", name, phone, err)
	}
	return nil
}

// ChangePhone atomically swaps oldPhone for newPhone on the contact.
func (s *ContactStore) ChangePhone(name, oldPhone, newPhone string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := c.ChangePhone(oldPhone, newPhone); err != nil {
		return fmt.Errorf("contact %q: %w", name, err)
	}
	return nil
}

// RemovePhone deletes a phone number from the contact.
func (s *ContactStore) RemovePhone(name, phone string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := c.RemovePhone(phone); err != nil {
		return fmt.Errorf("contact %q, phone %q: %w", name, phone, err)
	}
	return nil
}

// SetBirthday overwrites the contact's birthday slot. A date after today is
// rejected with ErrBirthdayInFuture.
func (s *ContactStore) SetBirthday(name string, birthday types.Date) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := types.ValidateBirthday(birthday, s.now()); err != nil {
		return fmt.Errorf("contact %q: %w", name, err)
	}
	c.SetBirthday(birthday)
	return nil
}

// SetEmail overwrites the contact's single email slot.
func (s *ContactStore) SetEmail(name, email string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := c.SetEmail(email); err != nil {
		return fmt.Errorf("contact %q, email %q: %w", name, email, err)
	}
	return nil
}

// RemoveEmail clears the email slot when the supplied email matches.
func (s *ContactStore) RemoveEmail(name, email string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	if err := c.RemoveEmail(email); err != nil {
		return fmt.Errorf("contact %q, email %q: %w", name, email, err)
	}
	return nil
}

// SetAddress overwrites the contact's free-text address slot.
func (s *ContactStore) SetAddress(name, address string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}
	c.SetAddress(address)
	return nil
}

// Remove deletes the contact. Notes referencing the name are left alone;
// their links dangle and resolve to unlinked on the next read.
func (s *ContactStore) Remove(name string) error {
	key := types.NormalizeName(name)
	if _, ok := s.items[key]; !ok {
		return fmt.Errorf("contact %q: %w", name, types.ErrContactNotFound)
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

// SearchByPartialName returns contacts whose normalized key or display name
// contains the query, case-insensitively, in insertion order. The empty
// query matches all contacts.
func (s *ContactStore) SearchByPartialName(query string) []*types.Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]*types.Contact, 0)
	for _, key := range s.order {
		c := s.items[key]
		if q == "" || strings.Contains(key, q) || strings.Contains(strings.ToLower(c.Name), q) {
			results = append(results, c)
		}
	}
	return results
}

// ListAll returns every contact in insertion order.
func (s *ContactStore) ListAll() []*types.Contact {
	results := make([]*types.Contact, 0, len(s.order))
	for _, key := range s.order {
		results = append(results, s.items[key])
	}
	return results
}

// BirthdayEntry is one row of an upcoming-birthdays query.
type BirthdayEntry struct {
	Contact *types.Contact
	// Occurrence is the next calendar occurrence of the birthday on or
	// after today.
	Occurrence time.Time
	// Congratulation is the occurrence moved to the following Monday when
	// it lands on a weekend.
	Congratulation time.Time
}

// UpcomingBirthdays returns contacts whose next birthday occurrence falls
// within [today, today+days] inclusive, sorted by occurrence ascending with
// ties broken by name.
//
// The next occurrence is the birthday's month/day in the current year, or
// in the next year if that day has already passed. A Feb 29 birthday is
// observed on Mar 1 in non-leap years.
func (s *ContactStore) UpcomingBirthdays(days int) []BirthdayEntry {
	y, m, d := s.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, days)

	entries := make([]BirthdayEntry, 0)
	for _, key := range s.order {
		c := s.items[key]
		if c.Birthday == nil {
			continue
		}
		occ := nextOccurrence(*c.Birthday, today)
		if occ.After(horizon) {
			continue
		}
		entries = append(entries, BirthdayEntry{
			Contact:        c,
			Occurrence:     occ,
			Congratulation: shiftOffWeekend(occ),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Occurrence.Equal(entries[j].Occurrence) {
			return entries[i].Occurrence.Before(entries[j].Occurrence)
		}
		return entries[i].Contact.Key() < entries[j].Contact.Key()
	})
	return entries
}

// nextOccurrence computes the first occurrence of the birthday's month/day
// on or after today. time.Date normalization maps Feb 29 to Mar 1 in
// non-leap years.
func nextOccurrence(birthday types.Date, today time.Time) time.Time {
	occ := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return occ
}

// shiftOffWeekend moves a Saturday or Sunday date to the following Monday.
func shiftOffWeekend(day time.Time) time.Time {
	switch day.Weekday() {
	case time.Saturday:
		return day.AddDate(0, 0, 2)
	case time.Sunday:
		return day.AddDate(0, 0, 1)
	default:
		return day
	}
}
