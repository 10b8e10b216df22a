package core

import "testing"

// TestKindForCode tests group code classification
func TestKindForCode(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected ValueKind
	}{
		{"structure marker", 0, KindString},
		{"name", 2, KindString},
		{"handle", 5, KindString},
		{"x coordinate", 10, KindReal},
		{"y coordinate", 20, KindReal},
		{"float value", 40, KindReal},
		{"flags", 70, KindInteger},
		{"int32", 90, KindInteger},
		{"subclass marker", 100, KindString},
		{"scaled float", 140, KindReal},
		{"int16", 170, KindInteger},
		{"extrusion", 210, KindReal},
		{"int8", 280, KindInteger},
		{"lineweight", 370, KindInteger},
		{"text", 300, KindString},
		{"xdata float", 1010, KindReal},
		{"xdata int", 1070, KindInteger},
		{"comment", 999, KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindForCode(tt.code); got != tt.expected {
				t.Errorf("KindForCode(%d) = %v, want %v", tt.code, got, tt.expected)
			}
		})
	}
}

// TestNewTag tests typed tag construction from raw values
func TestNewTag(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		raw      string
		expected Value
	}{
		{"string", 2, "LAYER", String("LAYER")},
		{"integer", 70, "2", Integer(2)},
		{"integer padded", 70, " 16 ", Integer(16)},
		{"real", 40, "3.14", Real(3.14)},
		{"real integral", 10, "1", Real(1)},
		{"bad integer falls back to string", 70, "abc", String("abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := NewTag(tt.code, tt.raw)
			if tag.Value != tt.expected {
				t.Errorf("NewTag(%d, %q).Value = %#v, want %#v", tt.code, tt.raw, tag.Value, tt.expected)
			}
		})
	}
}

// TestTagEquality tests that tags compare by code and typed value
func TestTagEquality(t *testing.T) {
	a := Tag{Code: 2, Value: String("0")}
	b := Tag{Code: 2, Value: String("0")}
	c := Tag{Code: 2, Value: String("1")}
	if a != b {
		t.Error("identical tags should be equal")
	}
	if a == c {
		t.Error("tags with different values should not be equal")
	}
}

// TestRealString tests that reals always serialize with a decimal point
func TestRealString(t *testing.T) {
	tests := []struct {
		value    Real
		expected string
	}{
		{Real(1), "1.0"},
		{Real(0), "0.0"},
		{Real(3.5), "3.5"},
		{Real(-2), "-2.0"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("Real(%v).String() = %q, want %q", float64(tt.value), got, tt.expected)
		}
	}
}

// TestTagsSearch tests code-based lookup on tag sequences
func TestTagsSearch(t *testing.T) {
	tags := Tags{
		{Code: 0, Value: String("LAYER")},
		{Code: 2, Value: String("0")},
		{Code: 70, Value: Integer(0)},
		{Code: 62, Value: Integer(7)},
		{Code: 62, Value: Integer(3)},
	}

	if tag, ok := tags.Get(2); !ok || tag.Value.String() != "0" {
		t.Errorf("Get(2) = %v, %v", tag, ok)
	}
	if _, ok := tags.Get(5); ok {
		t.Error("Get(5) should report absence")
	}
	if got := tags.Index(70); got != 2 {
		t.Errorf("Index(70) = %d, want 2", got)
	}
	if got := len(tags.All(62)); got != 2 {
		t.Errorf("All(62) returned %d tags, want 2", got)
	}
	if !tags.Has(0) || tags.Has(999) {
		t.Error("Has misreported code presence")
	}
}

// TestTagsUpdate tests in-place update semantics
func TestTagsUpdate(t *testing.T) {
	tags := Tags{
		{Code: 2, Value: String("0")},
		{Code: 70, Value: Integer(0)},
	}

	if err := tags.Update(70, Integer(4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tags[1].Value != Integer(4) {
		t.Errorf("update did not replace value: %v", tags[1])
	}

	err := tags.Update(40, Real(1.0))
	if err == nil {
		t.Fatal("expected error for missing code")
	}
}

// TestTagsClone tests that clones are independent
func TestTagsClone(t *testing.T) {
	tags := Tags{{Code: 2, Value: String("A")}}
	clone := tags.Clone()
	clone[0] = Tag{Code: 2, Value: String("B")}
	if tags[0].Value != String("A") {
		t.Error("mutating clone changed the original")
	}
	if !tags.Equal(Tags{{Code: 2, Value: String("A")}}) {
		t.Error("Equal misreported identical sequences")
	}
}
