package core

import "fmt"

// SubclassTags is a named subclass section of a record.
type SubclassTags struct {
	Name string
	Tags Tags
}

// ExtendedTags is a record split into its common portion and named
// subclass sections. Legacy format revisions carry no subclass markers,
// so the whole record lands in Common and Subclasses stays empty; callers
// that must work across revisions use Get, which searches Common first
// and then every subclass in order.
type ExtendedTags struct {
	Common     Tags
	Subclasses []SubclassTags
}

// NewExtendedTags splits a record's tags at subclass markers (group code
// 100). Tags before the first marker form Common; each marker starts a
// named section holding the tags up to the next marker or the end.
// Subclass insertion order is the order of first appearance.
func NewExtendedTags(tags Tags) *ExtendedTags {
	xt := &ExtendedTags{}
	current := &xt.Common
	for _, tag := range tags {
		if tag.Code == SubclassMarker {
			xt.Subclasses = append(xt.Subclasses, SubclassTags{Name: tag.Value.String()})
			current = &xt.Subclasses[len(xt.Subclasses)-1].Tags
			continue
		}
		*current = append(*current, tag)
	}
	return xt
}

// Subclass returns the tags of the named subclass section.
func (xt *ExtendedTags) Subclass(name string) (Tags, bool) {
	for _, sc := range xt.Subclasses {
		if sc.Name == name {
			return sc.Tags, true
		}
	}
	return nil, false
}

// Get returns the first tag with the given group code, searching Common
// first and then each subclass in insertion order. This is the
// version-tolerant lookup: it finds a field regardless of whether the
// record was written with subclass markers.
func (xt *ExtendedTags) Get(code int) (Tag, error) {
	if tag, ok := xt.Common.Get(code); ok {
		return tag, nil
	}
	for _, sc := range xt.Subclasses {
		if tag, ok := sc.Tags.Get(code); ok {
			return tag, nil
		}
	}
	return Tag{}, fmt.Errorf("code %d: %w", code, ErrFieldNotFound)
}

// GetIn returns the first tag with the given group code inside the named
// subclass only.
func (xt *ExtendedTags) GetIn(subclass string, code int) (Tag, error) {
	tags, ok := xt.Subclass(subclass)
	if !ok {
		return Tag{}, fmt.Errorf("subclass %q: %w", subclass, ErrFieldNotFound)
	}
	tag, ok := tags.Get(code)
	if !ok {
		return Tag{}, fmt.Errorf("subclass %q code %d: %w", subclass, code, ErrFieldNotFound)
	}
	return tag, nil
}

// Update replaces the value of the first tag with the given group code in
// Common, preserving its position. A missing field fails with
// ErrFieldNotFound; this layer never auto-creates fields.
func (xt *ExtendedTags) Update(code int, value Value) error {
	return xt.Common.Update(code, value)
}

// UpdateIn replaces the value of the first tag with the given group code
// inside the named subclass.
func (xt *ExtendedTags) UpdateIn(subclass string, code int, value Value) error {
	tags, ok := xt.Subclass(subclass)
	if !ok {
		return fmt.Errorf("subclass %q: %w", subclass, ErrFieldNotFound)
	}
	return tags.Update(code, value)
}

// Flatten reconstructs the record's full tag sequence: Common followed by
// every subclass in insertion order, with the subclass markers reinserted.
func (xt *ExtendedTags) Flatten() Tags {
	total := len(xt.Common)
	for _, sc := range xt.Subclasses {
		total += len(sc.Tags) + 1
	}
	tags := make(Tags, 0, total)
	tags = append(tags, xt.Common...)
	for _, sc := range xt.Subclasses {
		tags = append(tags, Tag{Code: SubclassMarker, Value: String(sc.Name)})
		tags = append(tags, sc.Tags...)
	}
	return tags
}

// WriteTo serializes the record through the given tag writer.
func (xt *ExtendedTags) WriteTo(w *Writer) error {
	return w.WriteTags(xt.Flatten())
}

// Clone returns a deep copy of the record.
func (xt *ExtendedTags) Clone() *ExtendedTags {
	c := &ExtendedTags{Common: xt.Common.Clone()}
	for _, sc := range xt.Subclasses {
		c.Subclasses = append(c.Subclasses, SubclassTags{Name: sc.Name, Tags: sc.Tags.Clone()})
	}
	return c
}
