package graphics

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var ErrSourceNotFound = errors.New("source image not found")

// OpenImage reads and decodes the image at path. JPEG orientation tags are
// applied. A missing file yields an error matching both ErrSourceNotFound and
// fs.ErrNotExist.
func OpenImage(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// ResizeSquare scales img to exactly size x size using Lanczos resampling.
// The aspect ratio of the source is not preserved.
func ResizeSquare(img image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be greater than 0")
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}
