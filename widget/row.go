package widget

import (
	"slices"

	"gioui.org/widget"

	"git.sr.ht/~gioverse/reviews/layout"
)

// Row holds persistent state for a single review row.
type Row struct {
	// ShowMore tracks clicks on the show more affordance.
	ShowMore widget.Clickable
	// Avatar and Rating hold the cached image ops of the row's glyphs.
	Avatar CachedImage
	Rating CachedImage
	// Photos are the row's image slots.
	Photos ImageStrip

	bound []string
}

// Bind lays out the photo strip for c and starts loading its photos. Binding
// the same photo list again is a no-op, so Bind can be called every frame.
func (r *Row) Bind(c layout.Content, dims layout.Dimensions, loader ImageLoader) {
	if r.bound != nil && slices.Equal(r.bound, c.Photos) {
		return
	}
	r.bound = append(make([]string, 0, len(c.Photos)), c.Photos...)
	r.Photos.Layout(len(c.Photos), dims.Photo, dims.PhotoSpacing, dims.PhotoRadius)
	r.Photos.BindAll(c.Photos, loader)
}

// Unbind drops the photo slots, abandoning pending loads.
func (r *Row) Unbind() {
	r.Photos.Reset()
	r.bound = nil
}
