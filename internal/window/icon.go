package window

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// ErrInvalidIcon is returned for icon buffers that are not square RGBA images
var ErrInvalidIcon = errors.New("icon is not a square RGBA image")

// IconSide returns the side length of a square RGBA icon buffer
func IconSide(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, fmt.Errorf("%w: empty buffer", ErrInvalidIcon)
	}
	side := int(math.Sqrt(float64(len(buf)) / 4))
	if side*side*4 != len(buf) {
		return 0, fmt.Errorf("%w: %d bytes", ErrInvalidIcon, len(buf))
	}
	return side, nil
}

// IconImage wraps a square RGBA icon buffer as an image. The buffer is copied.
func IconImage(buf []byte) (*image.NRGBA, error) {
	side, err := IconSide(buf)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	copy(img.Pix, buf)
	return img, nil
}

// IconImages converts every buffer, failing on the first invalid one
func IconImages(bufs [][]byte) ([]image.Image, error) {
	images := make([]image.Image, 0, len(bufs))
	for i, buf := range bufs {
		img, err := IconImage(buf)
		if err != nil {
			return nil, fmt.Errorf("icon %d: %w", i, err)
		}
		images = append(images, img)
	}
	return images, nil
}

// LoadIconFile decodes a PNG icon from disk
func LoadIconFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open icon: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode icon %s: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrInvalidIcon, path, b.Dx(), b.Dy())
	}
	return img, nil
}
