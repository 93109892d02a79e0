package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pocketpal-dev/pocketpal/internal/store"
	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// Snapshot file names inside the data directory.
const (
	ContactsFile = "contacts.jsonl"
	NotesFile    = "notes.jsonl"
)

// Scope selects which snapshots a Cleanup call removes.
type Scope string

// Cleanup scopes.
const (
	ScopeAll      Scope = "all"
	ScopeContacts Scope = "contacts"
	ScopeNotes    Scope = "notes"
)

// ParseScope maps a scope argument to a Scope value.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeAll, ScopeContacts, ScopeNotes:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("unknown cleanup scope %q (valid: all, contacts, notes)", s)
	}
}

// Gateway reads and writes store snapshots under a single data directory.
// It only ever touches the serialized form, never live store internals.
type Gateway struct {
	dataDir string
	logger  *zap.Logger
}

// New creates a Gateway for the given data directory. A nil logger is
// replaced with a no-op logger.
func New(cfg types.Config, logger *zap.Logger) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{dataDir: cfg.DataDir, logger: logger}, nil
}

// Load reads both snapshots. Missing files yield empty stores, not errors.
// A corrupt snapshot fails with ErrCorruptSnapshot; the caller decides
// between fail-fast and fresh-start.
func (g *Gateway) Load() (*store.ContactStore, *store.NoteStore, error) {
	contacts, err := g.LoadContacts()
	if err != nil {
		return nil, nil, err
	}
	notes, err := g.LoadNotes()
	if err != nil {
		return nil, nil, err
	}
	return contacts, notes, nil
}

// LoadContacts reads contacts.jsonl into a fresh ContactStore.
func (g *Gateway) LoadContacts() (*store.ContactStore, error) {
	path := filepath.Join(g.dataDir, ContactsFile)
	records, err := readJSONL(path)
	if err != nil {
		return nil, err
	}

	contacts := store.NewContactStore()
	for i, raw := range records {
		var rec contactRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", ContactsFile, i+1, types.ErrCorruptSnapshot)
		}
		c, err := contactFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s record %d (%s): %w", ContactsFile, i+1, err, types.ErrCorruptSnapshot)
		}
		if err := contacts.Put(c); err != nil {
			return nil, fmt.Errorf("%s record %d (%s): %w", ContactsFile, i+1, err, types.ErrCorruptSnapshot)
		}
	}

	g.logger.Debug("loaded contacts snapshot",
		zap.String("path", path),
		zap.Int("contacts", contacts.Len()))
	return contacts, nil
}

// LoadNotes reads notes.jsonl into a fresh NoteStore.
func (g *Gateway) LoadNotes() (*store.NoteStore, error) {
	path := filepath.Join(g.dataDir, NotesFile)
	records, err := readJSONL(path)
	if err != nil {
		return nil, err
	}

	notes := store.NewNoteStore()
	for i, raw := range records {
		var rec noteRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%s record %d: %w", NotesFile, i+1, types.ErrCorruptSnapshot)
		}
		n, err := noteFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%s record %d (%s): %w", NotesFile, i+1, err, types.ErrCorruptSnapshot)
		}
		if err := notes.Put(n); err != nil {
			return nil, fmt.Errorf("%s record %d (%s): %w", NotesFile, i+1, err, types.ErrCorruptSnapshot)
		}
	}

	g.logger.Debug("loaded notes snapshot",
		zap.String("path", path),
		zap.Int("notes", notes.Len()))
	return notes, nil
}

// Save writes both snapshots atomically, one file at a time.
func (g *Gateway) Save(contacts *store.ContactStore, notes *store.NoteStore) error {
	if err := g.SaveContacts(contacts); err != nil {
		return err
	}
	return g.SaveNotes(notes)
}

// SaveContacts serializes the contact store to contacts.jsonl.
func (g *Gateway) SaveContacts(contacts *store.ContactStore) error {
	records, err := marshalContacts(contacts)
	if err != nil {
		return err
	}
	if err := g.ensureDataDir(); err != nil {
		return err
	}
	path := filepath.Join(g.dataDir, ContactsFile)
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("saving contacts snapshot (%s): %w", err, types.ErrSnapshotIO)
	}
	g.logger.Debug("saved contacts snapshot",
		zap.String("path", path),
		zap.Int("contacts", contacts.Len()))
	return nil
}

// SaveNotes serializes the note store to notes.jsonl.
func (g *Gateway) SaveNotes(notes *store.NoteStore) error {
	records, err := marshalNotes(notes)
	if err != nil {
		return err
	}
	if err := g.ensureDataDir(); err != nil {
		return err
	}
	path := filepath.Join(g.dataDir, NotesFile)
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("saving notes snapshot (%s): %w", err, types.ErrSnapshotIO)
	}
	g.logger.Debug("saved notes snapshot",
		zap.String("path", path),
		zap.Int("notes", notes.Len()))
	return nil
}

// Cleanup deletes the snapshot files selected by scope. Missing files are a
// no-op, not an error. Each snapshot is removed independently.
func (g *Gateway) Cleanup(scope Scope) error {
	var files []string
	switch scope {
	case ScopeContacts:
		files = []string{ContactsFile}
	case ScopeNotes:
		files = []string{NotesFile}
	case ScopeAll:
		files = []string{ContactsFile, NotesFile}
	default:
		return fmt.Errorf("unknown cleanup scope %q", scope)
	}

	for _, name := range files {
		path := filepath.Join(g.dataDir, name)
		err := os.Remove(path)
		if err == nil {
			g.logger.Info("removed snapshot", zap.String("path", path))
			continue
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("removing %s (%s): %w", path, err, types.ErrSnapshotIO)
		}
	}
	return nil
}

func (g *Gateway) ensureDataDir() error {
	if err := os.MkdirAll(g.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s (%s): %w", g.dataDir, err, types.ErrSnapshotIO)
	}
	return nil
}

func marshalContacts(contacts *store.ContactStore) ([]json.RawMessage, error) {
	all := contacts.ListAll()
	records := make([]json.RawMessage, 0, len(all))
	for _, c := range all {
		data, err := json.Marshal(contactToRecord(c))
		if err != nil {
			return nil, fmt.Errorf("marshaling contact %q: %w", c.Name, err)
		}
		records = append(records, data)
	}
	return records, nil
}

func marshalNotes(notes *store.NoteStore) ([]json.RawMessage, error) {
	all := notes.ListAll()
	records := make([]json.RawMessage, 0, len(all))
	for _, n := range all {
		data, err := json.Marshal(noteToRecord(n))
		if err != nil {
			return nil, fmt.Errorf("marshaling note %q: %w", n.Title, err)
		}
		records = append(records, data)
	}
	return records, nil
}
