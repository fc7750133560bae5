package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// FileDirectory is a Directory backed by a single JSON file holding an
// array of records. Reads load the file on every call so the file stays
// the single source of truth; writes rewrite it atomically under a lock.
type FileDirectory struct {
	path string
	mu   sync.Mutex
}

var _ Directory = (*FileDirectory)(nil)

// NewFileDirectory creates a directory backed by the JSON file at path.
// A missing file behaves as an empty directory.
func NewFileDirectory(path string) *FileDirectory {
	return &FileDirectory{path: path}
}

func (d *FileDirectory) load() ([]Record, error) {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading user directory: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing user directory: %w", err)
	}
	return records, nil
}

func (d *FileDirectory) save(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user directory: %w", err)
	}
	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, ".users.*")
	if err != nil {
		return fmt.Errorf("creating temp directory file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing user directory: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing user directory: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("committing user directory: %w", err)
	}
	return nil
}

func (d *FileDirectory) Find(ctx context.Context, field, value string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	records, err := d.load()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if v, ok := r[field]; ok && v == value {
			return r.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%s=%s: %w", field, value, ErrNotFound)
}

func (d *FileDirectory) SetField(ctx context.Context, id, field, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	records, err := d.load()
	if err != nil {
		return err
	}
	for i, r := range records {
		if r.ID() == id {
			records[i] = r.Clone()
			records[i][field] = value
			return d.save(records)
		}
	}
	return fmt.Errorf("id=%s: %w", id, ErrNotFound)
}

// Add appends a new record to the directory, generating an id if the
// record has none. Used by provisioning tools, not by the auth service.
func (d *FileDirectory) Add(ctx context.Context, record Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	records, err := d.load()
	if err != nil {
		return nil, err
	}
	r := record.Clone()
	if r.ID() == "" {
		r[IDField] = uuid.NewString()
	}
	for _, existing := range records {
		if existing.ID() == r.ID() {
			return nil, fmt.Errorf("duplicate user id %s", r.ID())
		}
	}
	records = append(records, r)
	if err := d.save(records); err != nil {
		return nil, err
	}
	return r.Clone(), nil
}
