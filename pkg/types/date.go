package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "02.01.2006"

// Date is a calendar date without a time component. The zero value is the
// absent date.
type Date struct {
	tm time.Time
}

// NewDate builds a Date from year, month, and day. Out-of-range values are
// normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{tm: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a DD.MM.YYYY string. Returns ErrInvalidDate on malformed
// input or an impossible calendar date.
func ParseDate(value string) (Date, error) {
	tm, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", value, ErrInvalidDate)
	}
	return Date{tm: tm}, nil
}

// Time returns the date as a UTC midnight time.Time.
func (d Date) Time() time.Time { return d.tm }

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool { return d.tm.IsZero() }

// Year returns the calendar year.
func (d Date) Year() int { return d.tm.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.tm.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.tm.Day() }

// Equal reports whether two dates name the same calendar day.
func (d Date) Equal(other Date) bool { return d.tm.Equal(other.tm) }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.tm.Format(DateLayout)
}

// MarshalJSON encodes the date as a DD.MM.YYYY string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a DD.MM.YYYY string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
