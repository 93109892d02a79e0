package types

import "time"

// Contact holds one address-book entry. The display name is kept as
// entered; uniqueness is decided on the normalized key. Optional fields are
// absent by default: an empty Email or Address and a nil Birthday mean the
// slot is unset.
type Contact struct {
	ID        string    // UUID v7, generated on creation.
	Name      string    // Display name as entered, trimmed.
	Phones    []string  // Unique per contact, insertion order.
	Email     string    // At most one; empty means absent.
	Address   string    // Free text; empty means absent.
	Birthday  *Date     // nil means absent.
	CreatedAt time.Time // Timestamp of creation.
}

// Key returns the normalized uniqueness key for the contact.
func (c *Contact) Key() string { return NormalizeName(c.Name) }

// HasPhone reports whether the exact phone number is present.
func (c *Contact) HasPhone(phone string) bool {
	for _, p := range c.Phones {
		if p == phone {
			return true
		}
	}
	return false
}

// AddPhone appends a validated phone number.
// Returns ErrInvalidPhone or ErrDuplicatePhone; the phone list is unchanged
// on error.
func (c *Contact) AddPhone(phone string) error {
	if err := ValidatePhone(phone); err != nil {
		return err
	}
	if c.HasPhone(phone) {
		return ErrDuplicatePhone
	}
	c.Phones = append(c.Phones, phone)
	return nil
}

// ChangePhone swaps oldPhone for newPhone in place, preserving position.
// Returns ErrInvalidPhone, ErrPhoneNotFound, or ErrDuplicatePhone.
func (c *Contact) ChangePhone(oldPhone, newPhone string) error {
	if err := ValidatePhone(newPhone); err != nil {
		return err
	}
	pos := -1
	for i, p := range c.Phones {
		if p == oldPhone {
			pos = i
			break
		}
	}
	if pos == -1 {
		return ErrPhoneNotFound
	}
	if oldPhone != newPhone && c.HasPhone(newPhone) {
		return ErrDuplicatePhone
	}
	c.Phones[pos] = newPhone
	return nil
}

// RemovePhone deletes the given phone number.
// Returns ErrPhoneNotFound if it is not present.
func (c *Contact) RemovePhone(phone string) error {
	for i, p := range c.Phones {
		if p == phone {
			c.Phones = append(c.Phones[:i], c.Phones[i+1:]...)
			return nil
		}
	}
	return ErrPhoneNotFound
}

// SetEmail overwrites the single email slot with a validated address.
func (c *Contact) SetEmail(email string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	c.Email = email
	return nil
}

// RemoveEmail clears the email slot. Returns ErrEmailMismatch if the stored
// email differs from the one supplied.
func (c *Contact) RemoveEmail(email string) error {
	if c.Email == "" || c.Email != email {
		return ErrEmailMismatch
	}
	c.Email = ""
	return nil
}

// SetAddress overwrites the single free-text address slot.
func (c *Contact) SetAddress(address string) {
	c.Address = address
}

// SetBirthday overwrites the birthday slot. The not-in-the-future rule is
// checked by the store, which owns the clock.
func (c *Contact) SetBirthday(d Date) {
	c.Birthday = &d
}
