package widget

import (
	"image"
	"reflect"

	"gioui.org/op/paint"
)

// CachedImage caches the image operation for the most recent source image.
// Rebinding the same source is free, a different source re-bakes the op.
type CachedImage struct {
	op  paint.ImageOp
	src image.Image
}

// Changer can report that is has changed since the last call.
type Changer interface {
	Changed() bool
}

// ToNRGBA can render an image.NRGBA image.
type ToNRGBA interface {
	ToNRGBA() *image.NRGBA
}

// Cache the image if it is not already.
//
// If src implements Changer, and Changed returns true, the image operation
// will be re-computed. If src implements ToNRGBA, the *image.NRGBA will be
// used to compute the image operation, since Gio uses a fast-path for
// image.NRGBA images.
//
// A nil src clears the cache.
func (img *CachedImage) Cache(src image.Image) {
	if src == nil {
		*img = CachedImage{}
		return
	}
	changer, ok := src.(Changer)
	if same(img.src, src) && !(ok && changer.Changed()) {
		return
	}
	baked := src
	if nrgba, ok := src.(ToNRGBA); ok {
		baked = nrgba.ToNRGBA()
	}
	img.op = paint.NewImageOp(baked)
	img.src = src
}

// Op returns the concrete image operation.
func (img *CachedImage) Op() paint.ImageOp {
	return img.op
}

// Empty reports whether no image is cached.
func (img *CachedImage) Empty() bool {
	return img.src == nil
}

// same reports whether a and b are the same image value. Images of
// uncomparable types never match, which costs a re-bake and nothing more.
func same(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == b
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
