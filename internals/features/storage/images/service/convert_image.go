package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// Uploaded photos can be large; the hero carousel never renders wider than this.
const maxWebPWidth = 1600

// ConvertToWebP re-encodes an uploaded image as WebP, downscaling to the
// carousel's maximum width when needed. Returns the new bytes and the
// filename with its extension swapped.
func ConvertToWebP(name string, data []byte) (string, []byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxWebPWidth {
		img = imaging.Resize(img, maxWebPWidth, 0, imaging.CatmullRom)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 80}); err != nil {
		return "", nil, fmt.Errorf("encode webp: %w", err)
	}

	base := name
	if i := strings.LastIndex(name, "."); i >= 0 {
		base = name[:i]
	}
	return base + ".webp", buf.Bytes(), nil
}
