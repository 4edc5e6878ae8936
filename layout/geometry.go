/*
Package layout computes the frames of a review row.

Everything here is measured in dp and is free of I/O: a layout pass is a
pure function of the row content, the available width and the text metrics
in use. Rendering the frames is left to the widget packages.
*/
package layout

// Point is a position in dp.
type Point struct {
	X, Y float32
}

// Size is a width and height in dp.
type Size struct {
	W, H float32
}

// Empty reports whether the size has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

// clamp returns the size with negative dimensions raised to zero.
func (s Size) clamp() Size {
	return Size{W: nonNeg(s.W), H: nonNeg(s.H)}
}

// Rect is an axis-aligned rectangle described by its origin and size.
type Rect struct {
	Origin Point
	Size   Size
}

// R is shorthand for a Rect with origin (x,y) and size (w,h).
func R(x, y, w, h float32) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return r.Origin.X + r.Size.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return r.Origin.Y + r.Size.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Size.Empty() }

// Insets describes space around the edges of a row.
type Insets struct {
	Top, Left, Bottom, Right float32
}

func nonNeg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
