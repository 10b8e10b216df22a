package tables

import "errors"

var (
	// ErrNotFound indicates a lookup by name or handle found no live entry.
	ErrNotFound = errors.New("tables: entry not found")

	// ErrDuplicateName indicates Create was called with a name that
	// already exists on a uniqueness-enforcing table.
	ErrDuplicateName = errors.New("tables: duplicate entry name")

	// ErrValidation indicates entry attributes were invalid for the kind.
	ErrValidation = errors.New("tables: invalid attributes")

	// ErrUnknownType indicates an entry kind with no registered schema.
	ErrUnknownType = errors.New("tables: unknown entry type")
)
