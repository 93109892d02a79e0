package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactAddPhone(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		phone   string
		wantErr error
		want    []string
	}{
		{
			name:  "first phone added",
			phone: "0501234567",
			want:  []string{"0501234567"},
		},
		{
			name:    "second phone appended",
			initial: []string{"0501234567"},
			phone:   "0507654321",
			want:    []string{"0501234567", "0507654321"},
		},
		{
			name:    "duplicate rejected",
			initial: []string{"0501234567"},
			phone:   "0501234567",
			wantErr: ErrDuplicatePhone,
		},
		{
			name:    "invalid format rejected",
			initial: []string{"0501234567"},
			phone:   "123",
			wantErr: ErrInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{Name: "Jane Doe", Phones: tt.initial}

			err := c.AddPhone(tt.phone)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, c.Phones, "phones must not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, c.Phones)
			}
		})
	}
}

func TestContactChangePhone(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		oldPhone string
		newPhone string
		wantErr  error
		want     []string
	}{
		{
			name:     "swap preserves position",
			initial:  []string{"0501111111", "0502222222", "0503333333"},
			oldPhone: "0502222222",
			newPhone: "0509999999",
			want:     []string{"0501111111", "0509999999", "0503333333"},
		},
		{
			name:     "old phone absent",
			initial:  []string{"0501111111"},
			oldPhone: "0500000000",
			newPhone: "0509999999",
			wantErr:  ErrPhoneNotFound,
		},
		{
			name:     "new phone already present",
			initial:  []string{"0501111111", "0502222222"},
			oldPhone: "0501111111",
			newPhone: "0502222222",
			wantErr:  ErrDuplicatePhone,
		},
		{
			name:     "new phone invalid",
			initial:  []string{"0501111111"},
			oldPhone: "0501111111",
			newPhone: "bad",
			wantErr:  ErrInvalidPhone,
		},
		{
			name:     "swap to same value is a no-op",
			initial:  []string{"0501111111"},
			oldPhone: "0501111111",
			newPhone: "0501111111",
			want:     []string{"0501111111"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Contact{Name: "Jane Doe", Phones: append([]string(nil), tt.initial...)}

			err := c.ChangePhone(tt.oldPhone, tt.newPhone)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, c.Phones, "phones must not change on error")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, c.Phones)
			}
		})
	}
}

func TestContactRemovePhone(t *testing.T) {
	c := &Contact{Name: "Jane Doe", Phones: []string{"0501111111", "0502222222"}}

	require.NoError(t, c.RemovePhone("0501111111"))
	assert.Equal(t, []string{"0502222222"}, c.Phones)

	err := c.RemovePhone("0501111111")
	assert.ErrorIs(t, err, ErrPhoneNotFound)
}

func TestContactEmailSlot(t *testing.T) {
	c := &Contact{Name: "Jane Doe"}

	require.NoError(t, c.SetEmail("jane@example.com"))
	assert.Equal(t, "jane@example.com", c.Email)

	// Setting again replaces, not appends.
	require.NoError(t, c.SetEmail("doe@example.com"))
	assert.Equal(t, "doe@example.com", c.Email)

	assert.ErrorIs(t, c.SetEmail("not-an-email"), ErrInvalidEmail)
	assert.Equal(t, "doe@example.com", c.Email, "email must not change on error")

	assert.ErrorIs(t, c.RemoveEmail("jane@example.com"), ErrEmailMismatch)
	require.NoError(t, c.RemoveEmail("doe@example.com"))
	assert.Empty(t, c.Email)

	// Removing from an empty slot is a mismatch as well.
	assert.ErrorIs(t, c.RemoveEmail("doe@example.com"), ErrEmailMismatch)
}

func TestContactKey(t *testing.T) {
	c := &Contact{Name: "Jane Doe"}
	assert.Equal(t, "jane_doe", c.Key())
}
