package material

import (
	"hash/fnv"
	"image"
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	colorful "github.com/lucasb-eyer/go-colorful"

	revlayout "git.sr.ht/~gioverse/reviews/layout"
	revwidget "git.sr.ht/~gioverse/reviews/widget"
)

// ReviewStyle paints a review row at the frames computed by the layout
// engine. It performs no layout of its own.
type ReviewStyle struct {
	Content revlayout.Content
	Result  revlayout.Result
	Dims    revlayout.Dimensions
	// State holds the row's interactive state.
	State *revwidget.Row

	Username, Body, ShowMore, Created material.LabelStyle
	// AvatarGlyph is drawn over the AvatarColor disc.
	AvatarGlyph image.Image
	AvatarColor color.NRGBA
	Placeholder color.NRGBA
}

// Review configures a ReviewStyle for c laid out as res.
func Review(th *material.Theme, state *revwidget.Row, c revlayout.Content, res revlayout.Result, dims revlayout.Dimensions, showMore revlayout.Text) ReviewStyle {
	if state == nil {
		state = &revwidget.Row{}
	}
	body := Label(th, c.Body)
	if c.MaxLines > 0 {
		body.MaxLines = c.MaxLines
	}
	return ReviewStyle{
		Content:     c,
		Result:      res,
		Dims:        dims,
		State:       state,
		Username:    Label(th, c.Username),
		Body:        body,
		ShowMore:    Label(th, showMore),
		Created:     Label(th, c.Created),
		AvatarColor: AvatarColor(c.Username.Content),
		Placeholder: DefaultPlaceholder,
	}
}

// WithAvatar sets the glyph drawn on the avatar disc.
func (r ReviewStyle) WithAvatar(glyph image.Image) ReviewStyle {
	r.AvatarGlyph = glyph
	return r
}

// Label converts styled text into a material label.
func Label(th *material.Theme, t revlayout.Text) material.LabelStyle {
	size := t.Style.Size
	if size <= 0 {
		size = revlayout.DefaultTextSize
	}
	l := material.Label(th, unit.Sp(size), t.Content)
	if t.Style.Color != (color.NRGBA{}) {
		l.Color = t.Style.Color
	}
	if t.Style.Weight == revlayout.Bold {
		l.Font.Weight = text.Bold
	}
	return l
}

// Layout the row.
func (r ReviewStyle) Layout(gtx C) D {
	res := r.Result
	width := gtx.Constraints.Max.X
	height := gtx.Dp(unit.Dp(res.Height))

	at(gtx, res.Avatar, r.layoutAvatar)
	at(gtx, res.Username, r.Username.Layout)
	at(gtx, res.Rating, r.layoutRating)
	at(gtx, res.Photos, r.layoutPhotos)
	at(gtx, res.Body, r.Body.Layout)
	if res.ShowMoreVisible {
		at(gtx, res.ShowMore, func(gtx C) D {
			return material.Clickable(gtx, &r.State.ShowMore, r.ShowMore.Layout)
		})
	}
	at(gtx, res.Created, r.Created.Layout)
	return D{Size: image.Pt(width, height)}
}

func (r ReviewStyle) layoutAvatar(gtx C) D {
	size := gtx.Constraints.Min
	rad := gtx.Dp(unit.Dp(r.Dims.AvatarRadius))
	disc := clip.RRect{Rect: image.Rectangle{Max: size}, NE: rad, NW: rad, SE: rad, SW: rad}
	paint.FillShape(gtx.Ops, r.AvatarColor, disc.Op(gtx.Ops))
	if r.AvatarGlyph == nil {
		return D{Size: size}
	}
	r.State.Avatar.Cache(r.AvatarGlyph)
	return Image{Src: r.State.Avatar.Op()}.Layout(gtx)
}

func (r ReviewStyle) layoutRating(gtx C) D {
	size := gtx.Constraints.Min
	if r.Content.Ratings == nil {
		return D{Size: size}
	}
	r.State.Rating.Cache(r.Content.Ratings.Image(r.Content.Rating))
	if r.State.Rating.Empty() {
		return D{Size: size}
	}
	return Image{Src: r.State.Rating.Op()}.Layout(gtx)
}

func (r ReviewStyle) layoutPhotos(gtx C) D {
	strip := &r.State.Photos
	size := gtx.Constraints.Min
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	for i := 0; i < strip.Len(); i++ {
		slot := strip.Slot(i)
		slot.Image.Cache(slot.Snapshot().Image)
		at(gtx, slot.Frame, Image{
			Src:         slot.Image.Op(),
			Radius:      unit.Dp(slot.Radius),
			Placeholder: r.Placeholder,
		}.Layout)
	}
	return D{Size: size}
}

// at lays out w with exact constraints matching frame, offset to its origin.
// Empty frames are skipped.
func at(gtx C, frame revlayout.Rect, w layout.Widget) {
	if frame.Empty() {
		return
	}
	off := image.Pt(gtx.Dp(unit.Dp(frame.Origin.X)), gtx.Dp(unit.Dp(frame.Origin.Y)))
	defer op.Offset(off).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(image.Pt(gtx.Dp(unit.Dp(frame.Size.W)), gtx.Dp(unit.Dp(frame.Size.H))))
	w(gtx)
}

// AvatarColor derives a stable, muted colour from name.
func AvatarColor(name string) color.NRGBA {
	h := fnv.New32a()
	h.Write([]byte(name))
	hue := float64(h.Sum32()%360)
	r, g, b := colorful.Hsv(hue, 0.45, 0.85).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}

// NewTheme returns a material theme using the Go fonts, matching the faces
// used for measurement.
func NewTheme() *material.Theme {
	return material.NewTheme(gofont.Collection())
}
