package icon

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestImage(t *testing.T) {
	bg := color.NRGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	fg := color.NRGBA{A: 0xFF}

	img, err := Image(icons.ImageBrokenImage, image.Pt(55, 66), bg, fg)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 55, 66), img.Bounds())
	assert.Equal(t, color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}, img.RGBAAt(0, 0), "corners keep the background")

	var inked bool
	for y := 0; y < 66 && !inked; y++ {
		for x := 0; x < 55; x++ {
			if img.RGBAAt(x, y).R < 0xEE {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "icon is drawn")
}

func TestDrawRejectsGarbage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	assert.Error(t, Draw(img, img.Bounds(), []byte("nope"), color.NRGBA{A: 0xFF}))
}
