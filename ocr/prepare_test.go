package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// createTestImage creates a white image with a black rectangle.
func createTestImage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := width / 10; x < width/2; x++ {
		for y := height / 5; y < height*3/5; y++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func createTestPNG(width, height int) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, createTestImage(width, height))
	return buf.Bytes()
}

func TestPrepare_UpscalesSmallImages(t *testing.T) {
	out, err := Prepare(createTestPNG(100, 50))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(200, 100) {
		t.Errorf("size = %v, want (200,100)", got)
	}
}

func TestPrepare_KeepsLargeImages(t *testing.T) {
	out, err := Prepare(createTestPNG(UpscaleBelow, 10))
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != UpscaleBelow || cfg.Height != 10 {
		t.Errorf("size = %dx%d, want %dx10", cfg.Width, cfg.Height, UpscaleBelow)
	}
}

func TestPrepare_ConvertsBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, createTestImage(40, 20)); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}

	out, err := Prepare(buf.Bytes())
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("\x89PNG")) {
		t.Error("expected PNG output")
	}
}

func TestPrepare_RejectsGarbage(t *testing.T) {
	if _, err := Prepare([]byte("not an image")); err == nil {
		t.Error("expected an error for non-image data")
	}
}
