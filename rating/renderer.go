/*
Package rating draws star ratings.

A Renderer is owned by the host and lent to row content. Once released it
reports itself unavailable and rows stop reserving room for the stars.
*/
package rating

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~gioverse/reviews/icon"
	"git.sr.ht/~gioverse/reviews/layout"
)

// MaxStars is the highest rating and the number of stars drawn.
const MaxStars = 5

var (
	DefaultFilled = color.NRGBA{R: 0xFF, G: 0xB8, B: 0x00, A: 0xFF}
	DefaultEmpty  = color.NRGBA{R: 0xC8, G: 0xC8, B: 0xC8, A: 0xFF}
)

// Renderer draws a row of MaxStars stars, the first rating of them filled.
// Images are cached per rating. Safe for concurrent use.
type Renderer struct {
	// StarSize is the side of a star in dp.
	StarSize float32
	// Spacing between stars in dp.
	Spacing float32
	// Scale is the number of pixels per dp in rendered images.
	Scale         float32
	Filled, Empty color.NRGBA

	mu       sync.Mutex
	images   map[int]image.Image
	released bool
}

var _ layout.RatingRenderer = (*Renderer)(nil)

// New returns a renderer with 16dp stars, rendered at twice the density.
func New() *Renderer {
	return &Renderer{
		StarSize: 16,
		Spacing:  2,
		Scale:    2,
		Filled:   DefaultFilled,
		Empty:    DefaultEmpty,
	}
}

// ImageSize reports the size of a rating image in dp, or false once the
// renderer has been released.
func (r *Renderer) ImageSize() (layout.Size, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return layout.Size{}, false
	}
	return layout.Size{
		W: MaxStars*r.StarSize + (MaxStars-1)*r.Spacing,
		H: r.StarSize,
	}, true
}

// Image returns the stars for rating, clamped to [0, MaxStars]. Returns nil
// once released.
func (r *Renderer) Image(rating int) image.Image {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxStars {
		rating = MaxStars
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}
	if img, ok := r.images[rating]; ok {
		return img
	}
	if r.images == nil {
		r.images = make(map[int]image.Image)
	}
	img := r.render(rating)
	r.images[rating] = img
	return img
}

// Release drops the cached images and marks the renderer unavailable.
func (r *Renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.released = true
	r.images = nil
}

func (r *Renderer) render(rating int) image.Image {
	scale := r.Scale
	if scale <= 0 {
		scale = 1
	}
	var (
		side = int(r.StarSize*scale + .5)
		gap  = int(r.Spacing*scale + .5)
		img  = image.NewRGBA(image.Rect(0, 0, MaxStars*side+(MaxStars-1)*gap, side))
	)
	for ii := 0; ii < MaxStars; ii++ {
		src, col := icons.ToggleStar, r.Filled
		if ii >= rating {
			src, col = icons.ToggleStarBorder, r.Empty
		}
		x := ii * (side + gap)
		// The icons are compiled in; a decode error would be a build defect
		// and leaves the star blank.
		_ = icon.Draw(img, image.Rect(x, 0, x+side, side), src, col)
	}
	return img
}
