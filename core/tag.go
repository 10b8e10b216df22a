package core

import (
	"strconv"
	"strings"
)

// ValueKind represents the type of a tag value.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInteger
	KindReal
)

// String returns the string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	default:
		return "Unknown"
	}
}

// Value is the typed payload of a tag.
type Value interface {
	Kind() ValueKind
	String() string
}

// String represents a string tag value.
type String string

func (s String) Kind() ValueKind { return KindString }
func (s String) String() string  { return string(s) }

// Integer represents an integer tag value.
type Integer int64

func (i Integer) Kind() ValueKind { return KindInteger }
func (i Integer) String() string  { return strconv.FormatInt(int64(i), 10) }

// Real represents a floating point tag value. Serialized values always
// carry a decimal point so they read back as reals.
type Real float64

func (r Real) Kind() ValueKind { return KindReal }
func (r Real) String() string {
	s := strconv.FormatFloat(float64(r), 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Tag is an immutable (group code, value) pair, the atomic unit of the
// exchange format. Tags are comparable; two tags are equal when both the
// code and the typed value match.
type Tag struct {
	Code  int
	Value Value
}

// NewTag builds a tag with the value type implied by the group code.
// The raw string is converted according to KindForCode; conversion
// failures fall back to the string representation.
func NewTag(code int, raw string) Tag {
	switch KindForCode(code) {
	case KindInteger:
		if i, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			return Tag{Code: code, Value: Integer(i)}
		}
	case KindReal:
		if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return Tag{Code: code, Value: Real(f)}
		}
	}
	return Tag{Code: code, Value: String(raw)}
}

// IsMarker reports whether the tag starts a new logical record
// (group code 0).
func (t Tag) IsMarker() bool {
	return t.Code == StructureMarker
}

// Structural group codes.
const (
	// StructureMarker starts a new logical record (entity, table, section).
	StructureMarker = 0
	// NameCode carries the logical name of a record.
	NameCode = 2
	// HandleCode carries the unique handle of a record.
	HandleCode = 5
	// DimstyleHandleCode is the alternative handle code used by DIMSTYLE
	// table records.
	DimstyleHandleCode = 105
	// SubclassMarker introduces a named subclass section in modern
	// format revisions.
	SubclassMarker = 100
	// CountCode carries the entry count in a table header.
	CountCode = 70
)

// KindForCode classifies a group code into its value kind. The ranges
// follow the DXF reference; unknown codes default to string, which keeps
// the raw representation intact for round-trips.
func KindForCode(code int) ValueKind {
	switch {
	case code >= 10 && code <= 59:
		return KindReal
	case code >= 60 && code <= 99:
		return KindInteger
	case code >= 110 && code <= 149:
		return KindReal
	case code >= 160 && code <= 179:
		return KindInteger
	case code >= 210 && code <= 239:
		return KindReal
	case code >= 270 && code <= 289:
		return KindInteger
	case code >= 370 && code <= 389:
		return KindInteger
	case code >= 400 && code <= 409:
		return KindInteger
	case code >= 420 && code <= 429:
		return KindInteger
	case code >= 440 && code <= 459:
		return KindInteger
	case code >= 460 && code <= 469:
		return KindReal
	case code >= 1010 && code <= 1059:
		return KindReal
	case code >= 1060 && code <= 1071:
		return KindInteger
	default:
		return KindString
	}
}
