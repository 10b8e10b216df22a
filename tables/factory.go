package tables

import (
	"fmt"

	"github.com/tsawler/draftline/core"
	"github.com/tsawler/draftline/format"
)

// Attribs holds named attributes for a new entry. Accepted value types
// are string, int, int64 and float64 (plus the core.Value equivalents);
// the entry schema converts them to the tag value the group code expects.
type Attribs map[string]any

// AttrDef describes one attribute of an entry kind: its public name, the
// group code it serializes to, the value kind, and an optional default
// written when the attribute is not supplied.
type AttrDef struct {
	Name    string
	Code    int
	Kind    core.ValueKind
	Default core.Value
}

// EntrySpec is the schema for one entry kind.
type EntrySpec struct {
	// Kind is the record type name, e.g. "LAYER".
	Kind string
	// Subclass is the record subclass name used by modern revisions.
	Subclass string
	// HandleCode is the group code carrying the handle (5, or 105 for
	// DIMSTYLE records).
	HandleCode int
	// Attrs lists the accepted attributes in serialization order.
	Attrs []AttrDef
}

// EntityFactory constructs and wraps typed entry views.
type EntityFactory interface {
	// NewEntity builds a new record of the given kind. Fails with
	// ErrValidation on attributes the kind does not accept and with
	// ErrUnknownType on an unregistered kind.
	NewEntity(kind, handle string, attribs Attribs) (Entry, error)
	// Wrap produces a typed view over an existing tag representation.
	// Fails with ErrUnknownType if the record's kind is unregistered.
	Wrap(tags *core.ExtendedTags) (Entry, error)
}

// Registry is the concrete entity factory: a lookup table from kind name
// to entry schema. No reflection is involved; registering a kind makes it
// constructible and wrappable.
type Registry struct {
	version format.Version
	specs   map[string]*EntrySpec
}

// Ensure Registry implements EntityFactory
var _ EntityFactory = (*Registry)(nil)

// NewRegistry creates a factory for the given format revision with the
// standard table kinds pre-registered.
func NewRegistry(version format.Version) *Registry {
	r := &Registry{
		version: version,
		specs:   make(map[string]*EntrySpec),
	}
	for _, spec := range standardSpecs() {
		r.Register(spec)
	}
	return r
}

// Register adds or replaces the schema for an entry kind.
func (r *Registry) Register(spec *EntrySpec) {
	if spec.HandleCode == 0 {
		spec.HandleCode = core.HandleCode
	}
	r.specs[spec.Kind] = spec
}

// NewEntity builds a new record of the given kind with the given handle
// and attributes.
func (r *Registry) NewEntity(kind, handle string, attribs Attribs) (Entry, error) {
	spec, ok := r.specs[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnknownType)
	}

	for name := range attribs {
		if !spec.accepts(name) {
			return nil, fmt.Errorf("kind %q does not accept attribute %q: %w", kind, name, ErrValidation)
		}
	}
	if _, ok := attribs["name"]; !ok {
		return nil, fmt.Errorf("kind %q requires a name: %w", kind, ErrValidation)
	}

	body := make(core.Tags, 0, len(spec.Attrs))
	for _, def := range spec.Attrs {
		raw, given := attribs[def.Name]
		if !given {
			if def.Default != nil {
				body = append(body, core.Tag{Code: def.Code, Value: def.Default})
			}
			continue
		}
		value, ok := coerce(raw, def.Kind)
		if !ok {
			return nil, fmt.Errorf("kind %q attribute %q: value %v is not %v: %w",
				kind, def.Name, raw, def.Kind, ErrValidation)
		}
		body = append(body, core.Tag{Code: def.Code, Value: value})
	}

	xt := &core.ExtendedTags{
		Common: core.Tags{
			{Code: core.StructureMarker, Value: core.String(kind)},
			{Code: spec.HandleCode, Value: core.String(handle)},
		},
	}
	if r.version.Modern() {
		xt.Subclasses = []core.SubclassTags{
			{Name: recordBaseSubclass},
			{Name: spec.Subclass, Tags: body},
		}
	} else {
		xt.Common = append(xt.Common, body...)
	}
	return &record{kind: kind, tags: xt}, nil
}

// Wrap produces a typed view over an existing tag representation. The
// kind is taken from the record's structure marker.
func (r *Registry) Wrap(tags *core.ExtendedTags) (Entry, error) {
	if len(tags.Common) == 0 || !tags.Common[0].IsMarker() {
		return nil, fmt.Errorf("record has no structure marker: %w", ErrUnknownType)
	}
	kind := tags.Common[0].Value.String()
	if _, ok := r.specs[kind]; !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnknownType)
	}
	return &record{kind: kind, tags: tags}, nil
}

func (s *EntrySpec) accepts(name string) bool {
	for _, def := range s.Attrs {
		if def.Name == name {
			return true
		}
	}
	return false
}

// coerce converts a raw attribute value to the tag value kind.
func coerce(raw any, kind core.ValueKind) (core.Value, bool) {
	switch kind {
	case core.KindString:
		switch v := raw.(type) {
		case string:
			return core.String(v), true
		case core.String:
			return v, true
		}
	case core.KindInteger:
		switch v := raw.(type) {
		case int:
			return core.Integer(v), true
		case int64:
			return core.Integer(v), true
		case core.Integer:
			return v, true
		}
	case core.KindReal:
		switch v := raw.(type) {
		case float64:
			return core.Real(v), true
		case int:
			return core.Real(v), true
		case core.Real:
			return v, true
		}
	}
	return nil, false
}

// recordBaseSubclass is the base subclass shared by all table records in
// modern revisions.
const recordBaseSubclass = "AcDbSymbolTableRecord"

// standardSpecs returns the schemas for the standard table kinds.
func standardSpecs() []*EntrySpec {
	name := AttrDef{Name: "name", Code: core.NameCode, Kind: core.KindString}
	flags := AttrDef{Name: "flags", Code: 70, Kind: core.KindInteger, Default: core.Integer(0)}

	return []*EntrySpec{
		{
			Kind:     "LAYER",
			Subclass: "AcDbLayerTableRecord",
			Attrs: []AttrDef{
				name,
				flags,
				{Name: "color", Code: 62, Kind: core.KindInteger, Default: core.Integer(7)},
				{Name: "linetype", Code: 6, Kind: core.KindString, Default: core.String("CONTINUOUS")},
			},
		},
		{
			Kind:     "LTYPE",
			Subclass: "AcDbLinetypeTableRecord",
			Attrs: []AttrDef{
				name,
				flags,
				{Name: "description", Code: 3, Kind: core.KindString, Default: core.String("")},
			},
		},
		{
			Kind:     "STYLE",
			Subclass: "AcDbTextStyleTableRecord",
			Attrs: []AttrDef{
				name,
				flags,
				{Name: "height", Code: 40, Kind: core.KindReal, Default: core.Real(0)},
				{Name: "width", Code: 41, Kind: core.KindReal, Default: core.Real(1)},
				{Name: "oblique", Code: 50, Kind: core.KindReal, Default: core.Real(0)},
				{Name: "font", Code: 3, Kind: core.KindString, Default: core.String("txt")},
			},
		},
		{
			Kind:     "APPID",
			Subclass: "AcDbRegAppTableRecord",
			Attrs:    []AttrDef{name, flags},
		},
		{
			Kind:       "DIMSTYLE",
			Subclass:   "AcDbDimStyleTableRecord",
			HandleCode: core.DimstyleHandleCode,
			Attrs:      []AttrDef{name, flags},
		},
		{
			Kind:     "UCS",
			Subclass: "AcDbUCSTableRecord",
			Attrs:    []AttrDef{name, flags},
		},
		{
			Kind:     "VIEW",
			Subclass: "AcDbViewTableRecord",
			Attrs: []AttrDef{
				name,
				flags,
				{Name: "height", Code: 40, Kind: core.KindReal, Default: core.Real(1)},
				{Name: "width", Code: 41, Kind: core.KindReal, Default: core.Real(1)},
			},
		},
		{
			Kind:     "VPORT",
			Subclass: "AcDbViewportTableRecord",
			Attrs:    []AttrDef{name, flags},
		},
		{
			Kind:     "BLOCK_RECORD",
			Subclass: "AcDbBlockTableRecord",
			Attrs:    []AttrDef{name},
		},
	}
}
