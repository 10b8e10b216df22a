package core

import "fmt"

// Tags is an ordered sequence of tags. Insertion order defines
// serialization order.
type Tags []Tag

// Get returns the first tag with the given group code.
func (t Tags) Get(code int) (Tag, bool) {
	for _, tag := range t {
		if tag.Code == code {
			return tag, true
		}
	}
	return Tag{}, false
}

// Index returns the position of the first tag with the given group code,
// or -1 if absent.
func (t Tags) Index(code int) int {
	for i, tag := range t {
		if tag.Code == code {
			return i
		}
	}
	return -1
}

// All returns every tag with the given group code, in sequence order.
func (t Tags) All(code int) []Tag {
	var result []Tag
	for _, tag := range t {
		if tag.Code == code {
			result = append(result, tag)
		}
	}
	return result
}

// Has reports whether a tag with the given group code exists.
func (t Tags) Has(code int) bool {
	return t.Index(code) >= 0
}

// Update replaces the value of the first tag with the given group code,
// preserving its position. It never creates the field: a missing code
// fails with ErrFieldNotFound so callers decide whether to append.
func (t Tags) Update(code int, value Value) error {
	i := t.Index(code)
	if i < 0 {
		return fmt.Errorf("update code %d: %w", code, ErrFieldNotFound)
	}
	t[i] = Tag{Code: code, Value: value}
	return nil
}

// Equal reports whether two sequences hold the same tags in the same order.
func (t Tags) Equal(other Tags) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the sequence. Values are immutable, so a
// shallow copy suffices.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	c := make(Tags, len(t))
	copy(c, t)
	return c
}
