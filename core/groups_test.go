package core

import (
	"errors"
	"testing"
)

func layerTableTags() Tags {
	return Tags{
		{Code: 0, Value: String("TABLE")},
		{Code: 2, Value: String("LAYER")},
		{Code: 70, Value: Integer(1)},
		{Code: 0, Value: String("LAYER")},
		{Code: 2, Value: String("0")},
		{Code: 70, Value: Integer(0)},
		{Code: 62, Value: Integer(7)},
		{Code: 6, Value: String("CONTINUOUS")},
		{Code: 0, Value: String("ENDTAB")},
	}
}

// TestPartition tests splitting a flat sequence at structure markers
func TestPartition(t *testing.T) {
	groups, err := Partition(layerTableTags())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	names := []string{"TABLE", "LAYER", "ENDTAB"}
	sizes := []int{3, 5, 1}
	for i, g := range groups {
		if g.Name != names[i] {
			t.Errorf("group %d name = %q, want %q", i, g.Name, names[i])
		}
		if len(g.Tags) != sizes[i] {
			t.Errorf("group %d has %d tags, want %d", i, len(g.Tags), sizes[i])
		}
		if !g.Tags[0].IsMarker() {
			t.Errorf("group %d does not start with a marker", i)
		}
	}
}

// TestPartitionDeterminism tests that grouping is a pure function
func TestPartitionDeterminism(t *testing.T) {
	tags := layerTableTags()
	first, err := Partition(tags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Partition(tags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("partition changed between runs")
	}
	for i := range first {
		if first[i].Name != second[i].Name || !first[i].Tags.Equal(second[i].Tags) {
			t.Errorf("group %d differs between runs", i)
		}
	}
}

// TestPartitionErrors tests malformed input
func TestPartitionErrors(t *testing.T) {
	tests := []struct {
		name string
		tags Tags
	}{
		{"empty sequence", nil},
		{"leading non-marker", Tags{{Code: 2, Value: String("LAYER")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Partition(tt.tags)
			if !errors.Is(err, ErrStructure) {
				t.Errorf("expected ErrStructure, got %v", err)
			}
		})
	}
}

// TestGroupTags tests sentinel validation
func TestGroupTags(t *testing.T) {
	groups, err := GroupTags(layerTableTags(), "TABLE", "ENDTAB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 3 {
		t.Errorf("expected 3 groups, got %d", len(groups))
	}
}

// TestGroupTagsSentinelMismatch tests opening/closing name checks
func TestGroupTagsSentinelMismatch(t *testing.T) {
	tests := []struct {
		name    string
		opening string
		closing string
	}{
		{"wrong opening", "BLOCK", "ENDTAB"},
		{"wrong closing", "TABLE", "ENDBLK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GroupTags(layerTableTags(), tt.opening, tt.closing)
			if !errors.Is(err, ErrStructure) {
				t.Errorf("expected ErrStructure, got %v", err)
			}
		})
	}
}

// TestGroupTagsUnterminated tests a block missing its closing sentinel
func TestGroupTagsUnterminated(t *testing.T) {
	tags := layerTableTags()
	tags = tags[:len(tags)-1] // drop ENDTAB
	_, err := GroupTags(tags, "TABLE", "ENDTAB")
	if !errors.Is(err, ErrStructure) {
		t.Errorf("expected ErrStructure, got %v", err)
	}
}
