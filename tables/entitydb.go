package tables

import (
	"fmt"

	"github.com/tsawler/draftline/core"
)

// EntityDB maps a handle to its entry's tag representation. The database
// owns all stored records; tables hold only handles, never direct
// references, so removal and iteration cannot leave dangling state.
type EntityDB interface {
	Get(handle string) (*core.ExtendedTags, error)
	Set(handle string, tags *core.ExtendedTags)
	Delete(handle string) error
}

// MemoryDB is the concrete in-memory entity database.
type MemoryDB struct {
	records map[string]*core.ExtendedTags
}

// Ensure MemoryDB implements EntityDB
var _ EntityDB = (*MemoryDB)(nil)

// NewMemoryDB creates an empty entity database.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{records: make(map[string]*core.ExtendedTags)}
}

// Get returns the tag representation stored under the handle.
func (db *MemoryDB) Get(handle string) (*core.ExtendedTags, error) {
	tags, ok := db.records[handle]
	if !ok {
		return nil, fmt.Errorf("handle %q: %w", handle, ErrNotFound)
	}
	return tags, nil
}

// Set stores a tag representation under the handle, replacing any
// previous record.
func (db *MemoryDB) Set(handle string, tags *core.ExtendedTags) {
	db.records[handle] = tags
}

// Delete removes the record stored under the handle.
func (db *MemoryDB) Delete(handle string) error {
	if _, ok := db.records[handle]; !ok {
		return fmt.Errorf("handle %q: %w", handle, ErrNotFound)
	}
	delete(db.records, handle)
	return nil
}

// Len returns the number of stored records.
func (db *MemoryDB) Len() int {
	return len(db.records)
}
