package format

import (
	"testing"

	"github.com/tsawler/draftline/core"
)

// TestFromIdentifier tests identifier-to-version mapping
func TestFromIdentifier(t *testing.T) {
	tests := []struct {
		id       string
		expected Version
	}{
		{"AC1009", R12},
		{"AC1006", R12},
		{"AC1015", R2000},
		{"AC1018", R2004},
		{"AC1021", R2007},
		{"AC1024", R2010},
		{"AC1027", R2013},
		{"AC1032", R2018},
		{"AC9999", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := FromIdentifier(tt.id); got != tt.expected {
				t.Errorf("FromIdentifier(%q) = %v, want %v", tt.id, got, tt.expected)
			}
		})
	}
}

// TestModern tests the field-location strategy bit
func TestModern(t *testing.T) {
	if R12.Modern() {
		t.Error("R12 should be legacy")
	}
	for _, v := range []Version{R2000, R2004, R2007, R2010, R2013, R2018} {
		if !v.Modern() {
			t.Errorf("%v should be modern", v)
		}
	}
}

// TestIdentifierRoundTrip tests Version -> identifier -> Version
func TestIdentifierRoundTrip(t *testing.T) {
	for _, v := range []Version{R12, R2000, R2004, R2007, R2010, R2013, R2018} {
		if got := FromIdentifier(v.Identifier()); got != v {
			t.Errorf("round trip for %v yielded %v", v, got)
		}
	}
}

// TestDetect tests revision detection from header tags
func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		tags     core.Tags
		expected Version
	}{
		{
			"modern header",
			core.Tags{
				{Code: 9, Value: core.String("$ACADVER")},
				{Code: 1, Value: core.String("AC1015")},
			},
			R2000,
		},
		{
			"legacy header",
			core.Tags{
				{Code: 9, Value: core.String("$ACADVER")},
				{Code: 1, Value: core.String("AC1009")},
			},
			R12,
		},
		{
			"missing variable defaults to legacy",
			core.Tags{
				{Code: 9, Value: core.String("$INSUNITS")},
				{Code: 70, Value: core.Integer(4)},
			},
			R12,
		},
		{
			"unrecognized identifier",
			core.Tags{
				{Code: 9, Value: core.String("$ACADVER")},
				{Code: 1, Value: core.String("AC9999")},
			},
			Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.tags); got != tt.expected {
				t.Errorf("Detect = %v, want %v", got, tt.expected)
			}
		})
	}
}
