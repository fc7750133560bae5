package users

import (
	"context"
	"fmt"
	"sync"
)

// MemoryDirectory is a thread-safe in-memory Directory for tests and
// embedding.
type MemoryDirectory struct {
	mu      sync.RWMutex
	records []Record
}

var _ Directory = (*MemoryDirectory)(nil)

// NewMemoryDirectory creates a directory pre-populated with the given
// records.
func NewMemoryDirectory(records ...Record) *MemoryDirectory {
	d := &MemoryDirectory{}
	for _, r := range records {
		d.records = append(d.records, r.Clone())
	}
	return d
}

func (d *MemoryDirectory) Find(ctx context.Context, field, value string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.records {
		if v, ok := r[field]; ok && v == value {
			return r.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%s=%s: %w", field, value, ErrNotFound)
}

func (d *MemoryDirectory) SetField(ctx context.Context, id, field, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range d.records {
		if r.ID() == id {
			r[field] = value
			return nil
		}
	}
	return fmt.Errorf("id=%s: %w", id, ErrNotFound)
}
