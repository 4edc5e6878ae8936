package widget

import (
	"image"
	"sync"

	"git.sr.ht/~gioverse/reviews/layout"
)

// SlotState describes the progress of a slot's binding.
type SlotState int

const (
	// SlotEmpty slots have never been bound.
	SlotEmpty SlotState = iota
	// SlotLoading slots are waiting for their loader.
	SlotLoading
	// SlotLoaded slots hold the image they were bound to.
	SlotLoaded
	// SlotFailed slots could not decode their image and show the fallback.
	SlotFailed
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotLoading:
		return "loading"
	case SlotLoaded:
		return "loaded"
	case SlotFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ImageLoader resolves image keys. onComplete may run synchronously, on the
// caller's goroutine, or later on any other goroutine. It may never run.
type ImageLoader interface {
	Load(key string, onComplete func(image.Image))
}

// Slot is one image position within an ImageStrip.
type Slot struct {
	// Frame is relative to the strip's origin.
	Frame  layout.Rect
	Radius float32
	// Image caches the paint op for the slot's current image. Only touch it
	// from the goroutine that draws.
	Image CachedImage

	mu    sync.Mutex
	gen   uint64
	key   string
	state SlotState
	img   image.Image
}

// SlotSnapshot is a consistent view of a slot's binding.
type SlotSnapshot struct {
	Key   string
	State SlotState
	Image image.Image
}

// Snapshot returns the slot's current binding.
func (s *Slot) Snapshot() SlotSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SlotSnapshot{Key: s.key, State: s.state, Image: s.img}
}

// bind starts a new binding generation and returns it.
func (s *Slot) bind(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.key = key
	s.state = SlotLoading
	s.img = nil
	return s.gen
}

// deliver stores the result of binding gen, reporting false if the slot has
// been rebound or retired since.
func (s *Slot) deliver(gen uint64, img, fallback image.Image) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false
	}
	if img == nil {
		s.state = SlotFailed
		s.img = fallback
		return true
	}
	s.state = SlotLoaded
	s.img = img
	return true
}

// retire invalidates every outstanding binding.
func (s *Slot) retire() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
}

// ImageStrip is a horizontal run of fixed-size image slots, clipped to its
// bounds.
//
// Layout and Bind belong to the goroutine that owns the strip. Completions
// may land from any goroutine; those for slots that were reset or rebound in
// the meantime are dropped.
type ImageStrip struct {
	// Fallback is shown by slots whose image failed to decode.
	Fallback image.Image
	// Invalidate, if set, is called after a slot accepts a completion.
	Invalidate func()

	radius float32
	bounds layout.Rect
	slots  []*Slot
}

// Reset removes every slot. Pending completions for them are dropped.
func (s *ImageStrip) Reset() {
	for _, slot := range s.slots {
		slot.retire()
	}
	s.slots = nil
	s.bounds = layout.Rect{}
}

// Layout rebuilds the strip with count slots of the given size, spaced
// horizontally. The strip and its slots share the corner radius.
func (s *ImageStrip) Layout(count int, size layout.Size, spacing, radius float32) {
	s.Reset()
	if count < 0 {
		count = 0
	}
	s.radius = radius
	s.slots = make([]*Slot, count)
	for i := range s.slots {
		s.slots[i] = &Slot{
			Frame: layout.R(float32(i)*(size.W+spacing), 0, size.W, size.H),
			Radius: radius,
		}
	}
	if count > 0 {
		s.bounds = layout.R(0, 0, float32(count)*(size.W+spacing), size.H)
	}
}

// Len returns the number of slots.
func (s *ImageStrip) Len() int {
	return len(s.slots)
}

// Slot returns the i'th slot.
func (s *ImageStrip) Slot(i int) *Slot {
	return s.slots[i]
}

// Bounds is the clipping rectangle of the strip.
func (s *ImageStrip) Bounds() layout.Rect {
	return s.bounds
}

// Radius is the corner radius of the strip and its slots.
func (s *ImageStrip) Radius() float32 {
	return s.radius
}

// Bind loads key into slot i. Out of range indices are ignored.
func (s *ImageStrip) Bind(i int, key string, loader ImageLoader) {
	if i < 0 || i >= len(s.slots) || loader == nil {
		return
	}
	var (
		slot       = s.slots[i]
		gen        = slot.bind(key)
		fallback   = s.Fallback
		invalidate = s.Invalidate
	)
	loader.Load(key, func(img image.Image) {
		if slot.deliver(gen, img, fallback) && invalidate != nil {
			invalidate()
		}
	})
}

// BindAll binds keys to the slots in order. Keys beyond the slot count are
// ignored.
func (s *ImageStrip) BindAll(keys []string, loader ImageLoader) {
	for i, key := range keys {
		s.Bind(i, key, loader)
	}
}
