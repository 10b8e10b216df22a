// Package draftline is a toolkit for reading, modifying and writing
// tagged CAD drawing files (DXF and compatible formats).
//
// Basic usage:
//
//	dwg, err := draftline.Open("plan.dxf")
//	if err != nil {
//	    // handle error
//	}
//	layers, _ := dwg.Table("LAYER")
//	if _, err := layers.Create("Walls", tables.Attribs{"color": 1}); err != nil {
//	    // handle error
//	}
//	err = dwg.Save("plan-out.dxf")
//
// The drawing keeps every section it read verbatim except the tables
// section, which is regenerated from the live table registries on write.
// For lower-level work the core, tables and reader packages are also
// available.
package draftline

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/draftline/core"
	"github.com/tsawler/draftline/format"
	"github.com/tsawler/draftline/reader"
	"github.com/tsawler/draftline/tables"
)

// Section and table structure names.
const (
	sectionMarker  = "SECTION"
	sectionEnd     = "ENDSEC"
	endOfStream    = "EOF"
	tablesSection  = "TABLES"
	viewportsTable = "VPORT"
)

// standardTableKinds is the creation order for tables synthesized by New.
var standardTableKinds = []string{
	"VPORT", "LTYPE", "LAYER", "STYLE", "VIEW", "UCS", "APPID", "DIMSTYLE", "BLOCK_RECORD",
}

// section is one top-level file section. Non-table sections keep their
// tags verbatim (marker through ENDSEC inclusive) for round-trip output.
type section struct {
	name string
	tags core.Tags
}

// Drawing is a loaded drawing: its format revision, the parsed resource
// tables, and every other section held verbatim for write-out.
type Drawing struct {
	Version  format.Version
	Codepage string

	db      *tables.MemoryDB
	handles *tables.Allocator
	factory *tables.Registry

	sections   []section
	tableOrder []string
	tableSet   map[string]*tables.Table

	// Viewports wraps the VPORT table in its relaxed-uniqueness variant;
	// nil when the drawing has no VPORT table.
	Viewports *tables.ViewportTable
}

// Option configures loading; see the reader package.
type Option = reader.Option

// Re-exported reader options, so most callers never import reader.
var (
	WithCodepage = reader.WithCodepage
	WithLogger   = reader.WithLogger
	Lenient      = reader.Lenient
)

// New creates an empty drawing of the given revision with the standard
// tables present. The header section carries the revision identifier so
// the written file reads back as the same revision.
func New(version format.Version) *Drawing {
	d := newDrawing(version)
	d.sections = []section{
		{
			name: "HEADER",
			tags: core.Tags{
				{Code: core.StructureMarker, Value: core.String(sectionMarker)},
				{Code: core.NameCode, Value: core.String("HEADER")},
				{Code: 9, Value: core.String("$ACADVER")},
				{Code: 1, Value: core.String(version.Identifier())},
				{Code: core.StructureMarker, Value: core.String(sectionEnd)},
			},
		},
		{name: tablesSection},
	}
	for _, kind := range standardTableKinds {
		d.addTable(tables.New(kind, d.env()))
	}
	return d
}

// Open loads a drawing from a file.
func Open(filename string, opts ...Option) (*Drawing, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return Read(f, opts...)
}

// Read loads a drawing from a stream.
func Read(r io.Reader, opts ...Option) (*Drawing, error) {
	result, err := reader.Load(r, opts...)
	if err != nil {
		return nil, err
	}

	d := newDrawing(result.Version)
	d.Codepage = result.Codepage

	// Reserve every handle present in the file so fresh allocations
	// cannot collide with parsed ones.
	for _, tag := range result.Tags {
		if tag.Code == core.HandleCode || tag.Code == core.DimstyleHandleCode {
			d.handles.Reserve(tag.Value.String())
		}
	}

	if err := d.loadSections(result.Tags); err != nil {
		return nil, err
	}
	return d, nil
}

func newDrawing(version format.Version) *Drawing {
	return &Drawing{
		Version:  version,
		db:       tables.NewMemoryDB(),
		handles:  tables.NewAllocator(),
		factory:  tables.NewRegistry(version),
		tableSet: make(map[string]*tables.Table),
	}
}

func (d *Drawing) env() tables.Env {
	return tables.Env{
		DB:      d.db,
		Handles: d.handles,
		Factory: d.factory,
		Version: d.Version,
	}
}

// loadSections splits the tag stream into top-level sections and parses
// the tables section into live registries.
func (d *Drawing) loadSections(tags core.Tags) error {
	i := 0
	for i < len(tags) {
		if tags[i] == (core.Tag{Code: core.StructureMarker, Value: core.String(endOfStream)}) {
			break
		}
		if !tags[i].IsMarker() || tags[i].Value.String() != sectionMarker {
			return fmt.Errorf("tag %d: expected a section marker: %w", i, core.ErrStructure)
		}
		end := i + 1
		for end < len(tags) {
			if tags[end].IsMarker() && tags[end].Value.String() == sectionEnd {
				break
			}
			end++
		}
		if end == len(tags) {
			return fmt.Errorf("unterminated section: %w", core.ErrStructure)
		}

		sec := section{tags: tags[i : end+1]}
		// the section name immediately follows the SECTION marker
		if len(sec.tags) > 1 && sec.tags[1].Code == core.NameCode {
			sec.name = sec.tags[1].Value.String()
		}
		if sec.name == tablesSection {
			if err := d.loadTables(sec.tags[2 : len(sec.tags)-1]); err != nil {
				return err
			}
			sec.tags = nil // regenerated on write
		}
		d.sections = append(d.sections, sec)
		i = end + 1
	}
	return nil
}

// loadTables parses the body of the tables section: consecutive
// TABLE..ENDTAB blocks.
func (d *Drawing) loadTables(body core.Tags) error {
	i := 0
	for i < len(body) {
		if !body[i].IsMarker() || body[i].Value.String() != "TABLE" {
			return fmt.Errorf("tables section tag %d: expected a TABLE marker: %w", i, core.ErrStructure)
		}
		end := i + 1
		for end < len(body) {
			if body[end].IsMarker() && body[end].Value.String() == "ENDTAB" {
				break
			}
			end++
		}
		if end == len(body) {
			return fmt.Errorf("unterminated table: %w", core.ErrStructure)
		}

		table, err := tables.Load(body[i:end+1], d.env())
		if err != nil {
			return err
		}
		d.addTable(table)
		i = end + 1
	}
	return nil
}

func (d *Drawing) addTable(table *tables.Table) {
	kind := table.Kind()
	if _, exists := d.tableSet[kind]; !exists {
		d.tableOrder = append(d.tableOrder, kind)
	}
	d.tableSet[kind] = table
	if kind == viewportsTable {
		d.Viewports = tables.NewViewportTable(table)
	}
}

// Table returns the table of the given kind (e.g. "LAYER").
func (d *Drawing) Table(kind string) (*tables.Table, bool) {
	table, ok := d.tableSet[kind]
	return table, ok
}

// TableKinds returns the kinds of all tables in serialization order.
func (d *Drawing) TableKinds() []string {
	kinds := make([]string, len(d.tableOrder))
	copy(kinds, d.tableOrder)
	return kinds
}

// CreateTable adds an empty table of the given kind, or returns the
// existing one. The tables section is created if the drawing had none.
func (d *Drawing) CreateTable(kind string) *Table {
	if table, ok := d.tableSet[kind]; ok {
		return table
	}
	d.ensureTablesSection()
	table := tables.New(kind, d.env())
	d.addTable(table)
	return table
}

// Table is re-exported for facade callers.
type Table = tables.Table

func (d *Drawing) ensureTablesSection() {
	for _, sec := range d.sections {
		if sec.name == tablesSection {
			return
		}
	}
	d.sections = append(d.sections, section{name: tablesSection})
}

// Write serializes the drawing: every section in original order, with
// the tables section regenerated from the live registries, terminated by
// the EOF marker.
func (d *Drawing) Write(w io.Writer) error {
	tw := core.NewWriter(w)
	for _, sec := range d.sections {
		if sec.name != tablesSection {
			if err := tw.WriteTags(sec.tags); err != nil {
				return err
			}
			continue
		}
		if err := tw.WriteMarker(sectionMarker); err != nil {
			return err
		}
		if err := tw.WriteTag(core.Tag{Code: core.NameCode, Value: core.String(tablesSection)}); err != nil {
			return err
		}
		for _, kind := range d.tableOrder {
			if err := d.tableSet[kind].WriteTo(tw); err != nil {
				return err
			}
		}
		if err := tw.WriteMarker(sectionEnd); err != nil {
			return err
		}
	}
	if err := tw.WriteMarker(endOfStream); err != nil {
		return err
	}
	return tw.Flush()
}

// Save writes the drawing to a file.
func (d *Drawing) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and
// tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
