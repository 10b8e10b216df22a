// Package format provides drawing format revision detection for the
// draftline library.
package format

import (
	"github.com/tsawler/draftline/core"
)

// Version represents a supported drawing format revision.
type Version int

const (
	// Unknown indicates an unrecognized revision.
	Unknown Version = iota
	// R12 indicates the legacy revision (AC1009): flat records, no
	// subclass markers.
	R12
	// R2000 indicates revision AC1015.
	R2000
	// R2004 indicates revision AC1018.
	R2004
	// R2007 indicates revision AC1021.
	R2007
	// R2010 indicates revision AC1024.
	R2010
	// R2013 indicates revision AC1027.
	R2013
	// R2018 indicates revision AC1032.
	R2018
)

// String returns the string representation of the version.
func (v Version) String() string {
	switch v {
	case R12:
		return "R12"
	case R2000:
		return "R2000"
	case R2004:
		return "R2004"
	case R2007:
		return "R2007"
	case R2010:
		return "R2010"
	case R2013:
		return "R2013"
	case R2018:
		return "R2018"
	default:
		return "Unknown"
	}
}

// Identifier returns the on-disk revision identifier (the $ACADVER value).
func (v Version) Identifier() string {
	switch v {
	case R12:
		return "AC1009"
	case R2000:
		return "AC1015"
	case R2004:
		return "AC1018"
	case R2007:
		return "AC1021"
	case R2010:
		return "AC1024"
	case R2013:
		return "AC1027"
	case R2018:
		return "AC1032"
	default:
		return ""
	}
}

// Modern reports whether the revision scopes record fields with subclass
// markers. Legacy (R12 and earlier) records are flat; everything newer
// carries subclass sections, which moves version-conditional fields such
// as the table header entry count into a named subclass.
func (v Version) Modern() bool {
	return v >= R2000
}

// acadVerVariable is the header variable naming the format revision.
const acadVerVariable = "$ACADVER"

// FromIdentifier maps an on-disk revision identifier to a Version.
func FromIdentifier(id string) Version {
	switch id {
	case "AC1009", "AC1006", "AC1004", "AC1002":
		// Everything at or below AC1009 shares the legacy layout.
		return R12
	case "AC1015", "AC1012", "AC1014":
		return R2000
	case "AC1018":
		return R2004
	case "AC1021":
		return R2007
	case "AC1024":
		return R2010
	case "AC1027":
		return R2013
	case "AC1032":
		return R2018
	default:
		return Unknown
	}
}

// Detect scans header tags for the $ACADVER variable and returns the
// revision it names. Streams without the variable detect as R12, the
// revision that predates the variable's reliable presence.
func Detect(tags core.Tags) Version {
	for i, tag := range tags {
		if tag.Code == 9 && tag.Value.String() == acadVerVariable {
			if i+1 < len(tags) && tags[i+1].Code == 1 {
				if v := FromIdentifier(tags[i+1].Value.String()); v != Unknown {
					return v
				}
			}
			return Unknown
		}
	}
	return R12
}
