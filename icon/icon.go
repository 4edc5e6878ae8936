// Package icon rasterises IconVG material icons into plain images, for use
// outside of a Gio frame.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// Draw rasterises the IconVG data src into the rectangle r of dst, tinted
// with col and composited over the existing pixels.
func Draw(dst draw.Image, r image.Rectangle, src []byte, col color.NRGBA) error {
	m, err := iconvg.DecodeMetadata(src)
	if err != nil {
		return fmt.Errorf("decoding icon metadata: %w", err)
	}
	m.Palette[0] = color.RGBAModel.Convert(col).(color.RGBA)
	var z iconvg.Rasterizer
	z.SetDstImage(dst, r, draw.Over)
	if err := iconvg.Decode(&z, src, &iconvg.DecodeOptions{Palette: &m.Palette}); err != nil {
		return fmt.Errorf("rasterising icon: %w", err)
	}
	return nil
}

// Image returns a size image filled with bg and the icon centred on it,
// inset by a sixth of the shorter side.
func Image(src []byte, size image.Point, bg, fg color.NRGBA) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	side := size.X
	if size.Y < side {
		side = size.Y
	}
	inner := side - side/3
	min := image.Pt((size.X-inner)/2, (size.Y-inner)/2)
	if err := Draw(img, image.Rectangle{Min: min, Max: min.Add(image.Pt(inner, inner))}, src, fg); err != nil {
		return nil, err
	}
	return img, nil
}
