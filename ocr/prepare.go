package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// UpscaleBelow is the width under which Prepare doubles an image. Screen
// text is usually too small for Tesseract at its native size.
const UpscaleBelow = 1200

// Prepare decodes a PNG, JPEG, GIF, BMP, TIFF or WEBP image, doubles its
// size if it is narrower than UpscaleBelow, and re-encodes it as PNG.
func Prepare(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() < UpscaleBelow {
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
