/*
Package debug provides tools for debugging Gio layout code.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"

	revlayout "git.sr.ht/~gioverse/reviews/layout"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// FrameColor is the colour of frame outlines.
var FrameColor = color.NRGBA{R: 0xFF, A: 0xC0}

// Outline traces a small black outline around the provided widget.
func Outline(gtx C, w func(gtx C) D) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}

// Frames outlines every non-empty frame of a computed row layout.
func Frames(gtx C, res revlayout.Result) D {
	for _, r := range Rects(res) {
		func() {
			off := image.Pt(gtx.Dp(unit.Dp(r.Origin.X)), gtx.Dp(unit.Dp(r.Origin.Y)))
			defer op.Offset(off).Push(gtx.Ops).Pop()
			size := image.Pt(gtx.Dp(unit.Dp(r.Size.W)), gtx.Dp(unit.Dp(r.Size.H)))
			widget.Border{Color: FrameColor, Width: unit.Dp(1)}.Layout(gtx, func(gtx C) D {
				return D{Size: size}
			})
		}()
	}
	return D{Size: image.Pt(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(res.Height)))}
}

// Rects lists the non-empty frames of res.
func Rects(res revlayout.Result) []revlayout.Rect {
	var out []revlayout.Rect
	for _, r := range []revlayout.Rect{res.Avatar, res.Username, res.Rating, res.Photos, res.Body, res.ShowMore, res.Created} {
		if !r.Empty() {
			out = append(out, r)
		}
	}
	return out
}
