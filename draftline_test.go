package draftline

import (
	"strings"
	"testing"

	"github.com/tsawler/draftline/format"
	"github.com/tsawler/draftline/tables"
)

const sampleDrawing = `  0
SECTION
  2
HEADER
  9
$ACADVER
  1
AC1009
  0
ENDSEC
  0
SECTION
  2
TABLES
  0
TABLE
  2
LAYER
 70
1
  0
LAYER
  2
0
 70
0
 62
7
  6
CONTINUOUS
  0
ENDTAB
  0
ENDSEC
  0
EOF
`

// TestReadDrawing tests loading sections and tables
func TestReadDrawing(t *testing.T) {
	dwg, err := Read(strings.NewReader(sampleDrawing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dwg.Version != format.R12 {
		t.Errorf("Version = %v, want R12", dwg.Version)
	}

	layers, ok := dwg.Table("LAYER")
	if !ok {
		t.Fatal("missing LAYER table")
	}
	if layers.Len() != 1 {
		t.Errorf("Len = %d, want 1", layers.Len())
	}
	if !layers.Contains("0") {
		t.Error("layer \"0\" not found")
	}

	kinds := dwg.TableKinds()
	if len(kinds) != 1 || kinds[0] != "LAYER" {
		t.Errorf("TableKinds = %v", kinds)
	}
}

// TestDrawingRoundTrip tests read -> write -> read fidelity
func TestDrawingRoundTrip(t *testing.T) {
	dwg, err := Read(strings.NewReader(sampleDrawing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out strings.Builder
	if err := dwg.Write(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != sampleDrawing {
		t.Errorf("round trip changed the file:\ngot  %q\nwant %q", out.String(), sampleDrawing)
	}

	// and the output parses back to the same structure
	again, err := Read(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layers, ok := again.Table("LAYER")
	if !ok || layers.Len() != 1 {
		t.Error("re-read drawing lost table content")
	}
}

// TestDrawingMutation tests that created entries survive the write
func TestDrawingMutation(t *testing.T) {
	dwg, err := Read(strings.NewReader(sampleDrawing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layers, _ := dwg.Table("LAYER")
	if _, err := layers.Create("Walls", tables.Attribs{"color": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out strings.Builder
	if err := dwg.Write(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := Read(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layers, _ = again.Table("LAYER")
	if layers.Len() != 2 {
		t.Errorf("Len = %d, want 2", layers.Len())
	}
	if !layers.Contains("Walls") {
		t.Error("created layer lost in round trip")
	}
}

// TestNewDrawing tests the synthesized empty drawing
func TestNewDrawing(t *testing.T) {
	dwg := New(format.R2000)

	layers, ok := dwg.Table("LAYER")
	if !ok {
		t.Fatal("missing LAYER table")
	}
	if _, err := layers.Create("A", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dwg.Viewports == nil {
		t.Fatal("missing viewport table")
	}
	if _, err := dwg.Viewports.Create("*ACTIVE", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := dwg.Viewports.Create("*ACTIVE", nil); err != nil {
		t.Fatalf("viewport duplicates should be allowed: %v", err)
	}

	var out strings.Builder
	if err := dwg.Write(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Read(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	layers, _ = again.Table("LAYER")
	if !layers.Contains("A") {
		t.Error("layer lost in round trip")
	}
	vports, _ := again.Table("VPORT")
	if vports.Len() != 2 {
		t.Errorf("viewport entries = %d, want 2", vports.Len())
	}
}

// TestCreateTable tests adding a table to a drawing without one
func TestCreateTable(t *testing.T) {
	input := "  0\nSECTION\n  2\nHEADER\n  9\n$ACADVER\n  1\nAC1015\n  0\nENDSEC\n  0\nEOF\n"
	dwg, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	appids := dwg.CreateTable("APPID")
	if _, err := appids.Create("ACAD", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// idempotent: a second call returns the same table
	if dwg.CreateTable("APPID") != appids {
		t.Error("CreateTable created a second APPID table")
	}

	var out strings.Builder
	if err := dwg.Write(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Read(strings.NewReader(out.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	appids, ok := again.Table("APPID")
	if !ok || !appids.Contains("ACAD") {
		t.Error("APPID table lost in round trip")
	}
}

// TestReadStructureError tests malformed top-level structure
func TestReadStructureError(t *testing.T) {
	input := "  0\nSECTION\n  2\nTABLES\n  0\nEOF\n"
	if _, err := Read(strings.NewReader(input)); err == nil {
		t.Fatal("expected error for unterminated section")
	}
}
