package types

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// maxTagLength bounds tag size after normalization.
const maxTagLength = 20

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// NormalizeName canonicalizes a contact name into its uniqueness key:
// case-folded, surrounding whitespace trimmed, and internal whitespace runs
// joined with underscores. "Jane  Doe" and "jane doe" share the key
// "jane_doe".
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	return strings.ToLower(strings.Join(fields, "_"))
}

// NormalizeTitle canonicalizes a note title into its uniqueness key.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// NormalizeTag canonicalizes a tag. Tags compare case-insensitively.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// ValidateName checks that a contact name yields a non-empty key.
func ValidateName(name string) error {
	if NormalizeName(name) == "" {
		return ErrInvalidName
	}
	return nil
}

// ValidateTitle checks that a note title yields a non-empty key.
func ValidateTitle(title string) error {
	if NormalizeTitle(title) == "" {
		return ErrInvalidTitle
	}
	return nil
}

// ValidatePhone checks that a phone number is exactly 10 digits.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// ValidateEmail checks that an email has a name@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateTag checks a tag after normalization: a single token, non-empty
// and at most 20 characters.
func ValidateTag(tag string) error {
	norm := NormalizeTag(tag)
	if norm == "" || utf8.RuneCountInString(norm) > maxTagLength {
		return ErrInvalidTag
	}
	if strings.ContainsAny(norm, " \t") {
		return ErrInvalidTag
	}
	return nil
}

// ValidateBirthday checks that a birthday does not lie after the given
// reference day.
func ValidateBirthday(d Date, today time.Time) error {
	y, m, day := today.Date()
	ref := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	if d.Time().After(ref) {
		return ErrBirthdayInFuture
	}
	return nil
}
