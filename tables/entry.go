package tables

import (
	"github.com/tsawler/draftline/core"
)

// Entry is a typed view over one table record.
type Entry interface {
	// Kind returns the record's type name (e.g. "LAYER").
	Kind() string
	// Name returns the record's logical name, or "" if absent.
	Name() string
	// Handle returns the record's handle as stored in its tags. Legacy
	// records may carry no handle tag; the owning table tracks the
	// allocated handle independently.
	Handle() string
	// RawTags returns the record's tag representation. Mutating it
	// mutates the stored record.
	RawTags() *core.ExtendedTags
}

// record is the generic tag-backed entry view produced by Registry.
type record struct {
	kind string
	tags *core.ExtendedTags
}

// Ensure record implements Entry
var _ Entry = (*record)(nil)

func (r *record) Kind() string { return r.kind }

func (r *record) Name() string {
	tag, err := r.tags.Get(core.NameCode)
	if err != nil {
		return ""
	}
	return tag.Value.String()
}

func (r *record) Handle() string {
	if tag, err := r.tags.Get(core.HandleCode); err == nil {
		return tag.Value.String()
	}
	if tag, err := r.tags.Get(core.DimstyleHandleCode); err == nil {
		return tag.Value.String()
	}
	return ""
}

func (r *record) RawTags() *core.ExtendedTags { return r.tags }
