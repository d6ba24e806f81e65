package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/homework/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking: a second running instance can overwrite this one's writes.

const (
	DefaultDir      = ".local/share/homework_organizer"
	DefaultFileName = "data.json"
)

// Backend reads and writes a Store at a fixed path.
type Backend struct {
	path string
}

// New returns a Backend bound to path.
func New(path string) *Backend { return &Backend{path: path} }

// DefaultPath is the data file under the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, DefaultDir, DefaultFileName), nil
}

// Path is the file this Backend reads and writes.
func (b *Backend) Path() string { return b.path }

// Load reads the Store. On first use it creates the directory and a file
// holding an empty mapping.
func (b *Backend) Load() (*store.Store, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read file: %w", err)
		}
		if err := b.create(); err != nil {
			return nil, err
		}
		return store.New(), nil
	}
	st := store.New()
	if err := st.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("json unmarshal %s: %w", b.path, err)
	}
	return st, nil
}

// Save overwrites the file with the full Store.
func (b *Backend) Save(st *store.Store) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := os.WriteFile(b.path, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Encode renders st as the indented document Save writes.
func Encode(st *store.Store) ([]byte, error) {
	raw, err := st.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("json indent: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (b *Backend) create() error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(b.path, []byte("{}\n"), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
