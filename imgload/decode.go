package imgload

import (
	"fmt"
	"image"
	"io"

	// Register the formats a review photo may come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DecodeFunc turns fetched bytes into an image.
type DecodeFunc func(r io.Reader) (image.Image, error)

// Decode sniffs the format of r and decodes it with the registered decoders:
// PNG, JPEG, GIF, BMP and WebP.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
