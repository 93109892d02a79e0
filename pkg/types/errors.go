package types

import "errors"

// Contact operation errors.
var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrDuplicateContact = errors.New("contact already exists")
	ErrPhoneNotFound    = errors.New("phone number not found")
	ErrDuplicatePhone   = errors.New("phone number already exists")
	ErrEmailMismatch    = errors.New("email does not match the stored email")
)

// Note operation errors.
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrDuplicateNote = errors.New("note already exists")
	ErrTagNotFound   = errors.New("tag not found")
	ErrDuplicateTag  = errors.New("tag already present")
)

// Field validation errors.
var (
	ErrInvalidName      = errors.New("name must not be empty")
	ErrInvalidTitle     = errors.New("title must not be empty")
	ErrInvalidPhone     = errors.New("phone number must be 10 digits")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidDate      = errors.New("invalid date format, use DD.MM.YYYY")
	ErrBirthdayInFuture = errors.New("birthday must not be in the future")
	ErrInvalidTag       = errors.New("tag must be a single word of 1 to 20 characters")
)

// Snapshot errors.
var (
	ErrCorruptSnapshot = errors.New("snapshot is corrupt")
	ErrSnapshotIO      = errors.New("snapshot i/o failure")
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
)
