package testicon

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hrko/launcher-icons/pkg/graphics"
)

type Options struct {
	Size     int    `json:"size"`
	Color    string `json:"color"`
	Format   string `json:"format"`
	Prefix   string `json:"prefix"`
	OutDir   string `json:"-"`
	FontPath string `json:"-"`
}

// SetDefault fills in the defaults of a single icon. The color defaults to
// black.
func (o *Options) SetDefault() {
	o.Size = 64
	o.Color = "black"
	o.Format = "webp"
	o.Prefix = "icon_"
	o.OutDir = "."
	o.FontPath = ""
}

// FileName is always {prefix}{size}x{size}.{format}.
func (o *Options) FileName() string {
	return fmt.Sprintf("%s%dx%d.%s", o.Prefix, o.Size, o.Size, strings.ToLower(o.Format))
}

// Generate renders one labeled icon and writes it to OutDir/FileName().
// The icon is fully encoded before the file is created, so an unsupported
// format (graphics.ErrUnsupportedFormat) leaves nothing on disk.
func Generate(opts Options) (string, error) {
	format := strings.ToLower(opts.Format)
	if format == "" {
		return "", fmt.Errorf("%w: empty format", graphics.ErrUnsupportedFormat)
	}
	if format != "svg" && !graphics.SupportedFormat(format) {
		return "", fmt.Errorf("%w: %q", graphics.ErrUnsupportedFormat, format)
	}

	c, err := graphics.ParseColor(opts.Color)
	if err != nil {
		return "", err
	}
	icon := &graphics.TestIcon{
		Size:  opts.Size,
		Color: c,
		Label: strings.ToUpper(format),
		Font:  graphics.FontSource{Path: opts.FontPath},
	}

	var data []byte
	if format == "svg" {
		var buf bytes.Buffer
		if err := icon.RenderSVG(&buf); err != nil {
			return "", err
		}
		data = buf.Bytes()
	} else {
		img, err := icon.Render()
		if err != nil {
			return "", err
		}
		var encOpts graphics.EncodeOptions
		encOpts.SetDefault()
		data, err = graphics.EncodeBytes(img, format, encOpts)
		if err != nil {
			return "", err
		}
	}

	dir := opts.OutDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, opts.FileName())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// RunBatch generates every preset into dir. A preset that fails is reported
// as a warning on report and the batch moves on. Returns the written paths.
func RunBatch(presets []Options, dir, fontPath string, report io.Writer) []string {
	if report == nil {
		report = io.Discard
	}
	var written []string
	for _, p := range presets {
		p.OutDir = dir
		p.FontPath = fontPath
		path, err := Generate(p)
		if err != nil {
			fmt.Fprintf(report, "Warning: Could not save as %s: %v\n", strings.ToLower(p.Format), err)
			continue
		}
		fmt.Fprintf(report, "Generated %s\n", path)
		written = append(written, path)
	}
	return written
}
