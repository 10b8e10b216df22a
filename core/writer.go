package core

import (
	"bufio"
	"fmt"
	"io"
)

// Writer serializes tags to a text stream, one tag as two lines. Group
// codes are right-aligned to three characters by convention, so low codes
// come out space-padded (e.g. "  0").
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a tag writer for the given sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteTag writes a single tag.
func (w *Writer) WriteTag(tag Tag) error {
	if _, err := fmt.Fprintf(w.w, "%3d\n%s\n", tag.Code, tag.Value.String()); err != nil {
		return fmt.Errorf("write tag %d: %w", tag.Code, err)
	}
	return nil
}

// WriteTags writes a tag sequence in order.
func (w *Writer) WriteTags(tags Tags) error {
	for _, tag := range tags {
		if err := w.WriteTag(tag); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarker writes a structure marker tag (group code 0).
func (w *Writer) WriteMarker(name string) error {
	return w.WriteTag(Tag{Code: StructureMarker, Value: String(name)})
}

// Flush writes buffered output to the underlying sink.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
