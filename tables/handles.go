package tables

import (
	"strconv"
	"strings"
)

// HandleAllocator issues unique identifiers for new entries. Handles are
// opaque strings, unique within one drawing's lifetime; an allocator never
// reuses a handle, even after the entry it named is removed.
type HandleAllocator interface {
	Next() string
}

// Allocator is the concrete monotonic handle allocator. Handles are
// uppercase hexadecimal, issued in strictly increasing order.
type Allocator struct {
	next uint64
}

// Ensure Allocator implements HandleAllocator
var _ HandleAllocator = (*Allocator)(nil)

// NewAllocator creates an allocator starting at handle "1".
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next returns a fresh handle. Never blocks, never fails.
func (a *Allocator) Next() string {
	h := strconv.FormatUint(a.next, 16)
	a.next++
	return strings.ToUpper(h)
}

// Reserve marks an existing handle as taken, bumping the allocator past
// it so future handles cannot collide. Non-hexadecimal handles are
// ignored; they cannot collide with issued ones.
func (a *Allocator) Reserve(handle string) {
	v, err := strconv.ParseUint(handle, 16, 64)
	if err != nil {
		return
	}
	if v >= a.next {
		a.next = v + 1
	}
}
