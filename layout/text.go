package layout

import (
	"image/color"
	"strings"
)

// Weight of a typeface.
type Weight uint8

const (
	Regular Weight = iota
	Bold
)

// DefaultTextSize is used by measurers when a style leaves Size unset.
const DefaultTextSize = 16

// TextStyle carries the presentation attributes of a text blob. Size and
// Weight affect measurement, Color is only carried through to the painter.
type TextStyle struct {
	// Size in sp.
	Size   float32
	Weight Weight
	Color  color.NRGBA
}

// Text is a styled blob of text.
type Text struct {
	Content string
	Style   TextStyle
}

// Styled pairs content with a style.
func Styled(content string, style TextStyle) Text {
	return Text{Content: content, Style: style}
}

// Empty reports whether the text has nothing to show.
func (t Text) Empty() bool {
	return strings.TrimSpace(t.Content) == ""
}

// TextMetrics measures styled text.
//
// Implementations must be deterministic and callable from any goroutine:
// the same inputs always produce the same size.
type TextMetrics interface {
	// Measure the bounding size of t wrapped to maxWidth.
	Measure(t Text, maxWidth float32) Size
	// MeasureCapped is like Measure but only counts the lines that fit
	// within maxHeight. A maxHeight <= 0 leaves the height unbounded.
	MeasureCapped(t Text, maxWidth, maxHeight float32) Size
	// LineHeight reports the height of a single line of t.
	LineHeight(t Text) float32
	// Empty reports whether t has nothing to measure.
	Empty(t Text) bool
}
