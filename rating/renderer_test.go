package rating

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~gioverse/reviews/layout"
)

func TestImageSize(t *testing.T) {
	r := New()
	sz, ok := r.ImageSize()
	require.True(t, ok)
	assert.Equal(t, layout.Size{W: 5*16 + 4*2, H: 16}, sz)
}

func TestImageRendersAtScale(t *testing.T) {
	r := New()
	img := r.Image(3)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 5*32+4*4, 32), img.Bounds())
}

func TestImageCachedAndClamped(t *testing.T) {
	r := New()
	assert.Same(t, r.Image(5), r.Image(9))
	assert.Same(t, r.Image(0), r.Image(-2))
}

func TestFilledStarsDiffer(t *testing.T) {
	r := New()
	full, empty := r.Image(5).(*image.RGBA), r.Image(0).(*image.RGBA)
	// The centre of the first star is filled in one and hollow in the other.
	assert.NotEqual(t, full.RGBAAt(16, 16), empty.RGBAAt(16, 16))
}

func TestRelease(t *testing.T) {
	r := New()
	r.Image(4)
	r.Release()

	sz, ok := r.ImageSize()
	assert.False(t, ok)
	assert.Equal(t, layout.Size{}, sz)
	assert.Nil(t, r.Image(4))
}

func TestReleasedRendererCollapsesRow(t *testing.T) {
	r := New()
	c := layout.Content{Ratings: r, Created: layout.Styled("today", layout.TextStyle{})}
	e := layout.NewEngine(fixedMetrics{})

	before := e.Layout(c, 300)
	r.Release()
	after := e.Layout(c, 300)

	assert.Equal(t, float32(16), before.Rating.Size.H)
	assert.Equal(t, layout.Size{}, after.Rating.Size)
	assert.Equal(t, before.Height-16, after.Height)
}

// fixedMetrics measures every non-empty text as one 10dp line.
type fixedMetrics struct{}

func (fixedMetrics) Measure(t layout.Text, maxWidth float32) layout.Size {
	if t.Empty() {
		return layout.Size{}
	}
	return layout.Size{W: maxWidth, H: 10}
}

func (m fixedMetrics) MeasureCapped(t layout.Text, maxWidth, _ float32) layout.Size {
	return m.Measure(t, maxWidth)
}

func (fixedMetrics) LineHeight(layout.Text) float32 { return 10 }

func (fixedMetrics) Empty(t layout.Text) bool { return t.Empty() }
