package tables

import (
	"fmt"
	"io"

	"github.com/tsawler/draftline/core"
	"github.com/tsawler/draftline/format"
)

// Table structure markers and header subclass.
const (
	tableMarker = "TABLE"
	tableEnd    = "ENDTAB"

	// headerSubclass is the subclass holding the entry-count field in
	// modern revisions.
	headerSubclass = "AcDbSymbolTable"
)

// Env bundles the collaborators a table delegates to, plus the format
// revision that selects version-conditional serialization behavior.
type Env struct {
	DB      EntityDB
	Handles HandleAllocator
	Factory EntityFactory
	Version format.Version
}

// Table is a named registry of entries of one kind. It owns an ordered
// member handle list and a header record; entry storage lives in the
// entity database and identifier issuance in the handle allocator.
type Table struct {
	kind    string
	header  *core.ExtendedTags
	members []string
	env     Env
}

// Load builds a table from its structural tag block: an opening "TABLE"
// group (the header), zero or more entry groups, and a closing "ENDTAB"
// group. Entry groups whose marker does not match the table's kind fail
// with a structure error.
func Load(tags core.Tags, env Env) (*Table, error) {
	groups, err := core.GroupTags(tags, tableMarker, tableEnd)
	if err != nil {
		return nil, err
	}
	kindTag, ok := groups[0].Tags.Get(core.NameCode)
	if !ok {
		return nil, fmt.Errorf("table header has no kind name: %w", core.ErrStructure)
	}

	t := &Table{
		kind: kindTag.Value.String(),
		// The header record excludes its own "TABLE" marker.
		header: core.NewExtendedTags(groups[0].Tags[1:]),
		env:    env,
	}
	for _, group := range groups[1 : len(groups)-1] {
		if group.Name != t.kind {
			return nil, fmt.Errorf("entry %q inside %q table: %w", group.Name, t.kind, core.ErrStructure)
		}
		t.addRecord(core.NewExtendedTags(group.Tags))
	}
	return t, nil
}

// New creates an empty table of the given kind with a synthesized header.
// The header's entry-count field is recomputed on every write, so its
// initial value never matters.
func New(kind string, env Env) *Table {
	header := &core.ExtendedTags{
		Common: core.Tags{
			{Code: core.NameCode, Value: core.String(kind)},
		},
	}
	if env.Version.Modern() {
		header.Common = append(header.Common,
			core.Tag{Code: core.HandleCode, Value: core.String(env.Handles.Next())})
		header.Subclasses = []core.SubclassTags{
			{Name: headerSubclass, Tags: core.Tags{{Code: core.CountCode, Value: core.Integer(0)}}},
		}
	} else {
		header.Common = append(header.Common,
			core.Tag{Code: core.CountCode, Value: core.Integer(0)})
	}
	return &Table{kind: kind, header: header, env: env}
}

// addRecord registers a record in the entity database and appends its
// handle to the member list. Records without a handle tag (legacy
// revisions) get a fresh handle for database indexing; their tags stay
// untouched so the original stream is preserved on write.
func (t *Table) addRecord(xt *core.ExtendedTags) string {
	handle := recordHandle(xt)
	if handle == "" {
		handle = t.env.Handles.Next()
	}
	t.env.DB.Set(handle, xt)
	t.members = append(t.members, handle)
	return handle
}

func recordHandle(xt *core.ExtendedTags) string {
	if tag, err := xt.Get(core.HandleCode); err == nil {
		return tag.Value.String()
	}
	if tag, err := xt.Get(core.DimstyleHandleCode); err == nil {
		return tag.Value.String()
	}
	return ""
}

// Kind returns the table's type name (e.g. "LAYER").
func (t *Table) Kind() string { return t.kind }

// Len returns the number of live members.
func (t *Table) Len() int { return len(t.members) }

// Handles returns a copy of the member handles in insertion order.
func (t *Table) Handles() []string {
	handles := make([]string, len(t.members))
	copy(handles, t.members)
	return handles
}

// Create adds a new entry with the given name, failing with
// ErrDuplicateName if the name already exists. Remaining attributes are
// passed through to the entry schema.
func (t *Table) Create(name string, attribs Attribs) (Entry, error) {
	if t.Contains(name) {
		return nil, fmt.Errorf("%s %q: %w", t.kind, name, ErrDuplicateName)
	}
	return t.NewEntry(withName(attribs, name))
}

// NewEntry allocates a fresh handle, builds a record of the table's kind
// through the entity factory, registers it in the entity database and
// appends it to the member list. It performs no name collision check;
// duplicate names are structurally permitted for some table kinds.
func (t *Table) NewEntry(attribs Attribs) (Entry, error) {
	handle := t.env.Handles.Next()
	entry, err := t.env.Factory.NewEntity(t.kind, handle, attribs)
	if err != nil {
		return nil, err
	}
	t.env.DB.Set(handle, entry.RawTags())
	t.members = append(t.members, handle)
	return entry, nil
}

// Get returns the first entry whose logical name equals name, scanning
// members in insertion order. O(n), acceptable for table-sized registries.
func (t *Table) Get(name string) (Entry, error) {
	entry, _, err := t.find(name)
	return entry, err
}

// Remove deletes the first entry with the given name from the member
// list and the entity database.
func (t *Table) Remove(name string) error {
	_, i, err := t.find(name)
	if err != nil {
		return err
	}
	handle := t.members[i]
	if err := t.env.DB.Delete(handle); err != nil {
		return err
	}
	t.members = append(t.members[:i], t.members[i+1:]...)
	return nil
}

// Contains reports whether an entry with the given name exists.
func (t *Table) Contains(name string) bool {
	_, _, err := t.find(name)
	return err == nil
}

// Each calls fn for every entry in insertion order, resolving each member
// through the entity database and factory on demand. Iteration stops at
// the first error; it is restartable, every call begins at the start.
func (t *Table) Each(fn func(Entry) error) error {
	for _, handle := range t.members {
		entry, err := t.resolve(handle)
		if err != nil {
			return err
		}
		if err := fn(entry); err != nil {
			return err
		}
	}
	return nil
}

// find returns the first entry named name and its member index.
func (t *Table) find(name string) (Entry, int, error) {
	for i, handle := range t.members {
		entry, err := t.resolve(handle)
		if err != nil {
			return nil, 0, err
		}
		if entry.Name() == name {
			return entry, i, nil
		}
	}
	return nil, 0, fmt.Errorf("%s %q: %w", t.kind, name, ErrNotFound)
}

func (t *Table) resolve(handle string) (Entry, error) {
	xt, err := t.env.DB.Get(handle)
	if err != nil {
		return nil, err
	}
	return t.env.Factory.Wrap(xt)
}

// Write serializes the table: opening marker, header (with the entry
// count recomputed), every member's stored tags in insertion order, then
// the closing marker.
func (t *Table) Write(w io.Writer) error {
	tw := core.NewWriter(w)
	if err := t.WriteTo(tw); err != nil {
		return err
	}
	return tw.Flush()
}

// WriteTo serializes the table through an existing tag writer without
// flushing it, so callers can compose a table into a larger stream.
func (t *Table) WriteTo(tw *core.Writer) error {
	if err := tw.WriteMarker(tableMarker); err != nil {
		return err
	}
	if err := t.patchCount(); err != nil {
		return err
	}
	if err := t.header.WriteTo(tw); err != nil {
		return err
	}
	for _, handle := range t.members {
		xt, err := t.env.DB.Get(handle)
		if err != nil {
			return err
		}
		if err := xt.WriteTo(tw); err != nil {
			return err
		}
	}
	return tw.WriteMarker(tableEnd)
}

// patchCount updates the header's entry-count field to the live member
// count. The field location is version-conditional: top level for legacy
// revisions, inside the AcDbSymbolTable subclass for modern ones.
func (t *Table) patchCount() error {
	count := core.Integer(len(t.members))
	if t.env.Version.Modern() {
		return t.header.UpdateIn(headerSubclass, core.CountCode, count)
	}
	return t.header.Update(core.CountCode, count)
}

func withName(attribs Attribs, name string) Attribs {
	merged := make(Attribs, len(attribs)+1)
	for k, v := range attribs {
		merged[k] = v
	}
	merged["name"] = name
	return merged
}

// ViewportTable is the relaxed-uniqueness table variant: viewport
// configurations legitimately repeat names, so Create skips the
// duplicate-name check. Remove still drops the first match only,
// peeling duplicates one call at a time.
type ViewportTable struct {
	*Table
}

// NewViewportTable wraps a table in the relaxed-uniqueness variant.
func NewViewportTable(t *Table) *ViewportTable {
	return &ViewportTable{Table: t}
}

// Create adds a new entry with the given name without checking for
// duplicates.
func (vt *ViewportTable) Create(name string, attribs Attribs) (Entry, error) {
	return vt.NewEntry(withName(attribs, name))
}
