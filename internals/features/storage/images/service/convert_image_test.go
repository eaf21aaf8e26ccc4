package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestConvertToWebP(t *testing.T) {
	name, data, err := ConvertToWebP("banner.PNG", pngBytes(t, 40, 30))
	if err != nil {
		t.Fatalf("ConvertToWebP: %v", err)
	}
	if name != "banner.webp" {
		t.Errorf("name = %q, want banner.webp", name)
	}

	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not decodable webp: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("small image was resized: %v", img.Bounds())
	}
}

func TestConvertToWebPDownscalesWide(t *testing.T) {
	name, data, err := ConvertToWebP("wide.jpg", pngBytes(t, 2000, 500))
	if err != nil {
		t.Fatalf("ConvertToWebP: %v", err)
	}
	if name != "wide.webp" {
		t.Errorf("name = %q", name)
	}
	img, err := webp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode webp: %v", err)
	}
	if img.Bounds().Dx() != maxWebPWidth {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), maxWebPWidth)
	}
	if img.Bounds().Dy() != 400 {
		t.Errorf("height = %d, want aspect-preserving 400", img.Bounds().Dy())
	}
}

func TestConvertToWebPRejectsGarbage(t *testing.T) {
	if _, _, err := ConvertToWebP("bad.png", []byte("not an image")); err == nil {
		t.Error("garbage input accepted")
	}
}
