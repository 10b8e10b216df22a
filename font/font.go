// Package font provides font measurement helpers for text layout.
package font

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Measurements describes the vertical metrics of a font, in drawing units.
type Measurements struct {
	Baseline        float64
	CapHeight       float64
	XHeight         float64
	DescenderHeight float64
}

// DefaultMeasurements approximates a generic vector font, normalized to a
// cap height of 1.
var DefaultMeasurements = Measurements{
	Baseline:        0,
	CapHeight:       1,
	XHeight:         0.616,
	DescenderHeight: 0.3,
}

// TotalHeight returns the full extent from descender to cap.
func (m Measurements) TotalHeight() float64 {
	return m.CapHeight + m.DescenderHeight
}

// Scale returns the measurements multiplied by factor.
func (m Measurements) Scale(factor float64) Measurements {
	return Measurements{
		Baseline:        m.Baseline * factor,
		CapHeight:       m.CapHeight * factor,
		XHeight:         m.XHeight * factor,
		DescenderHeight: m.DescenderHeight * factor,
	}
}

// Measurer measures rendered text width in drawing units. text.Wrap takes
// the TextWidth method directly as its measure function.
type Measurer interface {
	TextWidth(text string) float64
}

// Monospace measures text with a fixed advance per character, scaled by
// cap height. It needs no font files and mirrors how minimal CAD viewers
// approximate stroke fonts.
type Monospace struct {
	CapHeight   float64
	WidthFactor float64
}

// Ensure Monospace implements Measurer
var _ Measurer = Monospace{}

// TextWidth returns rune count times the scaled advance.
func (m Monospace) TextWidth(text string) float64 {
	factor := m.WidthFactor
	if factor == 0 {
		factor = 1
	}
	return float64(len([]rune(text))) * m.CapHeight * factor
}

// Face measures text against a concrete font face. Widths come back in
// the face's pixel units; callers scale them to drawing units.
type Face struct {
	face font.Face
}

// Ensure Face implements Measurer
var _ Measurer = (*Face)(nil)

// NewFace wraps a font face in a Measurer.
func NewFace(f font.Face) *Face {
	return &Face{face: f}
}

// Basic returns a measurer over the built-in fixed 7x13 face, a fallback
// that needs no external font files.
func Basic() *Face {
	return NewFace(basicfont.Face7x13)
}

// TextWidth returns the advance of the rendered string.
func (f *Face) TextWidth(text string) float64 {
	return float64(font.MeasureString(f.face, text)) / 64
}
