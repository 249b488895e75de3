package graphics

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	ico "github.com/sergeymakinen/go-ico"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type EncodeOptions struct {
	Quality  float32 // lossy webp and jpeg, 0-100
	Lossless bool    // webp only
}

func (o *EncodeOptions) SetDefault() {
	o.Quality = 80
	o.Lossless = false
}

// Encode writes img to w in the given format. The format is matched
// case-insensitively against webp, png, jpeg/jpg, gif, bmp, tiff/tif and ico.
func Encode(w io.Writer, img image.Image, format string, opts EncodeOptions) error {
	format = strings.ToLower(format)
	switch format {
	case "webp":
		return encodeWebP(w, img, opts)
	case "ico":
		return ico.Encode(w, img)
	}

	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	var encOpts []imaging.EncodeOption
	if f == imaging.JPEG {
		encOpts = append(encOpts, imaging.JPEGQuality(int(opts.Quality)))
	}
	return imaging.Encode(w, img, f, encOpts...)
}

// EncodeBytes is Encode into memory, so callers can skip creating a file when
// the encoder fails.
func EncodeBytes(img image.Image, format string, opts EncodeOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SupportedFormat reports whether Encode knows the format.
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "webp", "ico":
		return true
	}
	_, err := imaging.FormatFromExtension(format)
	return err == nil
}

func encodeWebP(w io.Writer, img image.Image, opts EncodeOptions) error {
	var (
		options *encoder.Options
		err     error
	)
	if opts.Lossless {
		options, err = encoder.NewLosslessEncoderOptions(encoder.PresetDefault, 6)
	} else {
		options, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, opts.Quality)
	}
	if err != nil {
		return fmt.Errorf("webp options: %w", err)
	}
	return webp.Encode(w, img, options)
}
