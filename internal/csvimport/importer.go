// Package csvimport reads contacts.csv and notes.csv and feeds every row
// through the normal store operations, so imported records obey the same
// invariants as interactive entry. There is no bulk-bypass path: a row that
// would be rejected at the prompt is rejected here too, recorded in the
// report, and the import continues.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pocketpal-dev/pocketpal/internal/store"
	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// CSV file names looked up inside the import directory.
const (
	ContactsCSV = "contacts.csv"
	NotesCSV    = "notes.csv"
)

// listSeparator splits multi-valued cells (phones, tags).
const listSeparator = ";"

// RowError records one rejected row.
type RowError struct {
	File string
	Row  int // 1-based data row number, header excluded
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.File, e.Row, e.Err)
}

// Report summarizes an import run.
type Report struct {
	ContactsAdded int
	NotesAdded    int
	Errors        []RowError
}

// Importer feeds CSV records into the stores.
type Importer struct {
	contacts *store.ContactStore
	notes    *store.NoteStore
	logger   *zap.Logger
}

// New creates an Importer over the given stores. A nil logger is replaced
// with a no-op logger.
func New(contacts *store.ContactStore, notes *store.NoteStore, logger *zap.Logger) *Importer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Importer{contacts: contacts, notes: notes, logger: logger}
}

// ImportDir imports contacts.csv and notes.csv from dir. Missing files are
// a no-op. Row failures land in the report; only unreadable files abort.
func (im *Importer) ImportDir(dir string) (*Report, error) {
	report := &Report{}

	if err := im.importContacts(filepath.Join(dir, ContactsCSV), report); err != nil {
		return nil, err
	}
	if err := im.importNotes(filepath.Join(dir, NotesCSV), report); err != nil {
		return nil, err
	}

	im.logger.Info("import finished",
		zap.String("dir", dir),
		zap.Int("contacts_added", report.ContactsAdded),
		zap.Int("notes_added", report.NotesAdded),
		zap.Int("rejected_rows", len(report.Errors)))
	return report, nil
}

func (im *Importer) importContacts(path string, report *Report) error {
	rows, err := readCSV(path, []string{"name", "phones"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := im.addContactRow(row); err != nil {
			report.Errors = append(report.Errors, RowError{File: ContactsCSV, Row: i + 1, Err: err})
			continue
		}
		report.ContactsAdded++
	}
	return nil
}

// addContactRow applies one contact row through the normal add operations.
// The first failing field rejects the whole row; a partially applied
// contact is removed again so the store stays consistent.
func (im *Importer) addContactRow(row map[string]string) error {
	name := row["name"]
	phones := splitList(row["phones"])
	if len(phones) == 0 {
		return types.ErrInvalidPhone
	}

	if _, err := im.contacts.Add(name, phones[0]); err != nil {
		return err
	}
	if err := im.fillContactFields(name, phones[1:], row); err != nil {
		// Roll back the partial contact; the row is rejected atomically.
		_ = im.contacts.Remove(name)
		return err
	}
	return nil
}

func (im *Importer) fillContactFields(name string, extraPhones []string, row map[string]string) error {
	for _, phone := range extraPhones {
		if err := im.contacts.AddPhone(name, phone); err != nil {
			return err
		}
	}
	if email := row["email"]; email != "" {
		if err := im.contacts.SetEmail(name, email); err != nil {
			return err
		}
	}
	if address := row["address"]; address != "" {
		if err := im.contacts.SetAddress(name, address); err != nil {
			return err
		}
	}
	if birthday := row["birthday"]; birthday != "" {
		d, err := types.ParseDate(birthday)
		if err != nil {
			return err
		}
		if err := im.contacts.SetBirthday(name, d); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) importNotes(path string, report *Report) error {
	rows, err := readCSV(path, []string{"title", "body"})
	if err != nil {
		return err
	}

	for i, row := range rows {
		if err := im.addNoteRow(row); err != nil {
			report.Errors = append(report.Errors, RowError{File: NotesCSV, Row: i + 1, Err: err})
			continue
		}
		report.NotesAdded++
	}
	return nil
}

func (im *Importer) addNoteRow(row map[string]string) error {
	title := row["title"]
	if _, err := im.notes.Add(title, row["body"]); err != nil {
		return err
	}
	for _, tag := range splitList(row["tags"]) {
		if err := im.notes.AddTag(title, tag); err != nil {
			_ = im.notes.Delete(title)
			return err
		}
	}
	if contact := row["contact"]; contact != "" {
		// Attach never checks contact existence; the link resolves lazily.
		if err := im.notes.Attach(title, contact); err != nil {
			_ = im.notes.Delete(title)
			return err
		}
	}
	return nil
}

// readCSV reads a headered CSV file into row maps keyed by lowercased
// header name. A missing file yields no rows. The required columns must be
// present in the header.
func readCSV(path string, required []string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s header: %w", path, err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	for _, col := range required {
		if !containsString(header, col) {
			return nil, fmt.Errorf("%s: missing required column %q", path, col)
		}
	}

	var rows []map[string]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitList(cell string) []string {
	var out []string
	for _, part := range strings.Split(cell, listSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
