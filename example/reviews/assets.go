package main

import (
	"image"
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~gioverse/reviews/icon"
)

// assets are the images drawn in place of missing content.
type assets struct {
	// Fallback fills photo slots whose image failed to decode.
	Fallback image.Image
	// Avatar is drawn over each row's avatar disc.
	Avatar image.Image
}

func newAssets() (assets, error) {
	fallback, err := icon.Image(icons.ImageBrokenImage, image.Pt(110, 132),
		color.NRGBA{R: 0xE6, G: 0xE6, B: 0xE6, A: 0xFF},
		color.NRGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF})
	if err != nil {
		return assets{}, err
	}
	avatar, err := icon.Image(icons.SocialPerson, image.Pt(72, 72),
		color.NRGBA{},
		color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	if err != nil {
		return assets{}, err
	}
	return assets{Fallback: fallback, Avatar: avatar}, nil
}
