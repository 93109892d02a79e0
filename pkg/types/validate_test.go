package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple name lowercased", input: "Jane", want: "jane"},
		{name: "two tokens joined with underscore", input: "Jane Doe", want: "jane_doe"},
		{name: "surrounding whitespace trimmed", input: "  Jane Doe  ", want: "jane_doe"},
		{name: "internal runs collapsed", input: "Jane \t  Doe", want: "jane_doe"},
		{name: "underscore input preserved", input: "Jane_Doe", want: "jane_doe"},
		{name: "empty input", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		wantErr error
	}{
		{name: "ten digits accepted", phone: "0501234567"},
		{name: "too short rejected", phone: "123456789", wantErr: ErrInvalidPhone},
		{name: "too long rejected", phone: "12345678901", wantErr: ErrInvalidPhone},
		{name: "letters rejected", phone: "05012345ab", wantErr: ErrInvalidPhone},
		{name: "dashes rejected", phone: "050-123-4567", wantErr: ErrInvalidPhone},
		{name: "empty rejected", phone: "", wantErr: ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhone(tt.phone)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr error
	}{
		{name: "plain address accepted", email: "jane@example.com"},
		{name: "dots and plus accepted", email: "jane.doe+tag@mail.example.org"},
		{name: "missing at rejected", email: "jane.example.com", wantErr: ErrInvalidEmail},
		{name: "missing tld rejected", email: "jane@example", wantErr: ErrInvalidEmail},
		{name: "single letter tld rejected", email: "jane@example.c", wantErr: ErrInvalidEmail},
		{name: "empty rejected", email: "", wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		wantErr error
	}{
		{name: "short tag accepted", tag: "work"},
		{name: "mixed case accepted", tag: "Work"},
		{name: "twenty characters accepted", tag: strings.Repeat("a", 20)},
		{name: "twenty one characters rejected", tag: strings.Repeat("a", 21), wantErr: ErrInvalidTag},
		{name: "empty rejected", tag: "", wantErr: ErrInvalidTag},
		{name: "whitespace only rejected", tag: "   ", wantErr: ErrInvalidTag},
		{name: "internal whitespace rejected", tag: "two words", wantErr: ErrInvalidTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTag(tt.tag)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBirthday(t *testing.T) {
	today := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)

	t.Run("past date accepted", func(t *testing.T) {
		assert.NoError(t, ValidateBirthday(NewDate(1990, time.January, 1), today))
	})

	t.Run("today accepted", func(t *testing.T) {
		assert.NoError(t, ValidateBirthday(NewDate(2025, time.June, 15), today))
	})

	t.Run("future date rejected", func(t *testing.T) {
		err := ValidateBirthday(NewDate(2025, time.June, 16), today)
		assert.ErrorIs(t, err, ErrBirthdayInFuture)
	})
}
