package layout

import "math"

// Dimensions holds the fixed sizes and spacings of a review row.
type Dimensions struct {
	Insets Insets
	Avatar Size
	// AvatarRadius and PhotoRadius round the corners when painting.
	AvatarRadius float32
	Photo        Size
	PhotoRadius  float32
	// AvatarToUsername is the horizontal gap between avatar and username.
	AvatarToUsername float32
	UsernameToRating float32
	// RatingToText applies when the row has no photos.
	RatingToText   float32
	RatingToPhotos float32
	// PhotoSpacing separates photos horizontally.
	PhotoSpacing      float32
	PhotosToText      float32
	TextToCreated     float32
	ShowMoreToCreated float32
}

// DefaultDimensions returns the stock review row measurements.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Insets:            Insets{Top: 9, Left: 12, Bottom: 9, Right: 12},
		Avatar:            Size{W: 36, H: 36},
		AvatarRadius:      18,
		Photo:             Size{W: 55, H: 66},
		PhotoRadius:       8,
		AvatarToUsername:  10,
		UsernameToRating:  6,
		RatingToText:      6,
		RatingToPhotos:    10,
		PhotoSpacing:      8,
		PhotosToText:      10,
		TextToCreated:     6,
		ShowMoreToCreated: 6,
	}
}

// DefaultShowMore is the label of the show more affordance.
var DefaultShowMore = Text{
	Content: "Show more...",
	Style:   TextStyle{Size: DefaultTextSize},
}

// Result holds the frames of every element in a row, relative to the row's
// top-left corner, and the total row height.
type Result struct {
	Avatar   Rect
	Username Rect
	Rating   Rect
	Photos   Rect
	Body     Rect
	ShowMore Rect
	Created  Rect
	// ShowMoreVisible reports whether the body was truncated.
	ShowMoreVisible bool
	Height          float32
}

// Engine computes row layouts.
type Engine struct {
	Metrics TextMetrics
	Dims    Dimensions
	// ShowMore is the text of the show more affordance. Its unwrapped size,
	// narrowed to the text width, is reserved when the body is truncated.
	ShowMore Text
}

// NewEngine returns an engine with the default dimensions.
func NewEngine(m TextMetrics) *Engine {
	return &Engine{
		Metrics:  m,
		Dims:     DefaultDimensions(),
		ShowMore: DefaultShowMore,
	}
}

// Layout computes the frames of c constrained to maxWidth in a single
// top-to-bottom pass.
func (e *Engine) Layout(c Content, maxWidth float32) Result {
	var (
		d         = e.Dims
		res       Result
		left      = d.Insets.Left
		textWidth = nonNeg(maxWidth - d.Insets.Left - d.Insets.Right)
		y         = d.Insets.Top
	)

	res.Avatar = Rect{Origin: Point{X: left, Y: y}, Size: d.Avatar.clamp()}

	nameX := res.Avatar.MaxX() + d.AvatarToUsername
	nameWidth := nonNeg(textWidth - res.Avatar.Size.W - d.AvatarToUsername)
	res.Username = Rect{
		Origin: Point{X: nameX, Y: y},
		Size:   e.measure(c.Username, nameWidth),
	}

	y = res.Username.MaxY() + d.UsernameToRating
	res.Rating = Rect{Origin: Point{X: nameX, Y: y}, Size: c.ratingSize()}

	if len(c.Photos) > 0 {
		res.Photos = Rect{
			Origin: Point{X: nameX, Y: res.Rating.MaxY() + d.RatingToPhotos},
			Size: Size{
				W: float32(len(c.Photos)) * (d.Photo.W + d.PhotoSpacing),
				H: d.Photo.H,
			}.clamp(),
		}
		y = res.Photos.MaxY() + d.PhotosToText
	} else {
		y = res.Rating.MaxY() + d.RatingToText
	}

	if !e.Metrics.Empty(c.Body) {
		size := e.measure(c.Body, textWidth)
		if c.MaxLines > 0 {
			capped := e.Metrics.LineHeight(c.Body) * float32(c.MaxLines)
			res.ShowMoreVisible = size.H > capped
			if res.ShowMoreVisible {
				size = e.Metrics.MeasureCapped(c.Body, textWidth, capped).clamp()
				size.H = min(size.H, capped)
			}
		}
		res.Body = Rect{Origin: Point{X: left, Y: y}, Size: size}
		y = res.Body.MaxY() + d.TextToCreated
	}

	if res.ShowMoreVisible {
		// The label keeps its natural size, narrowed only to fit the row.
		size := e.measure(e.ShowMore, math.MaxFloat32)
		size.W = min(size.W, textWidth)
		res.ShowMore = Rect{Origin: Point{X: left, Y: y}, Size: size}
		y = res.ShowMore.MaxY() + d.ShowMoreToCreated
	}

	res.Created = Rect{
		Origin: Point{X: left, Y: y},
		Size:   e.measure(c.Created, textWidth),
	}
	res.Height = res.Created.MaxY() + d.Insets.Bottom
	return res
}

// measure wraps Metrics.Measure, clamping the result to non-negative sizes.
func (e *Engine) measure(t Text, width float32) Size {
	if e.Metrics.Empty(t) {
		return Size{}
	}
	return e.Metrics.Measure(t, width).clamp()
}
