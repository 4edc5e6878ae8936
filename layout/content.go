package layout

import "image"

// DefaultMaxLines is the number of body lines shown before the row offers
// to show more.
const DefaultMaxLines = 3

// RatingRenderer draws the star rating of a review.
//
// The renderer is owned by the host. Content only borrows it, so a nil
// renderer, or one reporting ok=false from ImageSize, is treated as
// unavailable and the rating occupies no space.
type RatingRenderer interface {
	// Image returns the glyph for the given rating.
	Image(rating int) image.Image
	// ImageSize reports the intrinsic size of rating glyphs in dp and whether
	// the renderer is still available.
	ImageSize() (Size, bool)
}

// Content describes a single review row independent of any width.
// Content values are treated as immutable: to change a row, replace it.
type Content struct {
	// ID uniquely identifies the row. Rows sharing an ID are assumed to
	// carry identical content, which lets layout results be memoised.
	ID       string
	Username Text
	Body     Text
	Created  Text
	Rating   int
	// MaxLines caps the visible body lines. Zero (or negative) disables
	// truncation entirely.
	MaxLines int
	// Photos lists the image source identifiers, typically URLs.
	Photos []string
	// Ratings renders the rating glyph. May be nil.
	Ratings RatingRenderer
}

// ratingSize reports the size reserved for the rating glyph, falling back to
// zero when the renderer is gone.
func (c Content) ratingSize() Size {
	if c.Ratings == nil {
		return Size{}
	}
	sz, ok := c.Ratings.ImageSize()
	if !ok {
		return Size{}
	}
	return sz.clamp()
}

// Expanded returns a copy of the content with truncation disabled.
func (c Content) Expanded() Content {
	c.MaxLines = 0
	return c
}
