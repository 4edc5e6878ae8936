package material

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// DefaultPlaceholder fills image frames that have nothing to show yet.
var DefaultPlaceholder = color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF}

// Image fills the minimum constraints with an image, cropped to cover and
// clipped to rounded corners. An empty Src paints the placeholder colour.
type Image struct {
	Src paint.ImageOp
	// Radius specifies the amount of rounding.
	Radius      unit.Dp
	Placeholder color.NRGBA
}

// Layout the image.
func (img Image) Layout(gtx C) D {
	size := gtx.Constraints.Min
	if size.X == 0 || size.Y == 0 {
		return D{Size: size}
	}
	r := gtx.Dp(img.Radius)
	rr := clip.RRect{
		Rect: image.Rectangle{Max: size},
		NE:   r, NW: r, SE: r, SW: r,
	}
	if img.Src == (paint.ImageOp{}) {
		paint.FillShape(gtx.Ops, img.Placeholder, rr.Op(gtx.Ops))
		return D{Size: size}
	}
	defer rr.Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	return widget.Image{
		Src:      img.Src,
		Fit:      widget.Cover,
		Position: layout.Center,
	}.Layout(gtx)
}
