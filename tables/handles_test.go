package tables

import "testing"

// TestAllocatorUniqueness tests that all issued handles are pairwise distinct
func TestAllocatorUniqueness(t *testing.T) {
	alloc := NewAllocator()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		h := alloc.Next()
		if seen[h] {
			t.Fatalf("handle %q issued twice", h)
		}
		seen[h] = true
	}
}

// TestAllocatorFormat tests uppercase hexadecimal handles
func TestAllocatorFormat(t *testing.T) {
	alloc := NewAllocator()
	expected := []string{"1", "2", "3"}
	for _, want := range expected {
		if got := alloc.Next(); got != want {
			t.Errorf("Next() = %q, want %q", got, want)
		}
	}

	alloc.Reserve("FE")
	if got := alloc.Next(); got != "FF" {
		t.Errorf("Next() after Reserve(FE) = %q, want FF", got)
	}
}

// TestAllocatorReserve tests collision avoidance with parsed handles
func TestAllocatorReserve(t *testing.T) {
	alloc := NewAllocator()
	alloc.Reserve("10")
	alloc.Reserve("2") // below the watermark, no effect
	alloc.Reserve("not-hex")

	seen := map[string]bool{"10": true, "2": true}
	for i := 0; i < 100; i++ {
		h := alloc.Next()
		if seen[h] {
			t.Fatalf("handle %q collides with a reserved handle", h)
		}
	}
}
