package testicon

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/hrko/launcher-icons/pkg/graphics"
)

func TestMain(m *testing.M) {
	// keep text rendering independent of the fonts installed on the host
	dir, err := os.MkdirTemp("", "testicon-fonts")
	if err != nil {
		panic(err)
	}
	graphics.SetFontDirs(dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	o.SetDefault()
	if o.Size != 64 || o.Color != "black" || o.Format != "webp" || o.Prefix != "icon_" {
		t.Errorf("defaults = %+v", o)
	}
	if got := o.FileName(); got != "icon_64x64.webp" {
		t.Errorf("FileName() = %q", got)
	}
	o.Format = "PNG"
	o.Prefix = "item_"
	o.Size = 128
	if got := o.FileName(); got != "item_128x128.png" {
		t.Errorf("FileName() = %q", got)
	}
}

func TestGenerateSVG(t *testing.T) {
	var o Options
	o.SetDefault()
	o.Format = "svg"
	o.OutDir = t.TempDir()

	path, err := Generate(o)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filepath.Base(path) != "icon_64x64.svg" {
		t.Errorf("path = %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{"<svg", `width="64"`, `height="64"`, ">64</text>", ">SVG</text>"} {
		if !strings.Contains(s, want) {
			t.Errorf("%s missing %q", path, want)
		}
	}
}

func TestGenerateRaster(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"webp", "png", "jpeg", "gif", "bmp", "tiff"} {
		o := Options{Size: 96, Color: "blue", Format: format, Prefix: "t_", OutDir: dir}
		path, err := Generate(o)
		if err != nil {
			t.Errorf("Generate(%s): %v", format, err)
			continue
		}
		img, err := graphics.OpenImage(path)
		if err != nil {
			t.Errorf("open %s: %v", path, err)
			continue
		}
		if img.Bounds() != image.Rect(0, 0, 96, 96) {
			t.Errorf("%s: bounds %v", path, img.Bounds())
		}
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	_, err := Generate(Options{Size: 64, Color: "red", Format: "avif", Prefix: "x_", OutDir: dir})
	if !errors.Is(err, graphics.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "x_64x64.avif")); err == nil {
		t.Error("unsupported format left a file behind")
	}
}

func TestGenerateInvalidColor(t *testing.T) {
	_, err := Generate(Options{Size: 64, Color: "notacolor", Format: "png", Prefix: "x_", OutDir: t.TempDir()})
	if err == nil {
		t.Error("Generate with an unknown color should fail")
	}
}

func TestRunBatchContinuesAfterWarning(t *testing.T) {
	dir := t.TempDir()
	presets := []Options{
		{Size: 32, Color: "green", Format: "png", Prefix: "item_"},
		{Size: 64, Color: "orange", Format: "avif", Prefix: "item_"},
		{Size: 64, Color: "purple", Format: "svg", Prefix: "item_"},
	}
	var report bytes.Buffer
	written := RunBatch(presets, dir, "", &report)

	if len(written) != 2 {
		t.Fatalf("wrote %d files, want 2: %v", len(written), written)
	}
	out := report.String()
	if !strings.Contains(out, "Warning: Could not save as avif") {
		t.Errorf("report missing warning:\n%s", out)
	}
	for _, name := range []string{"item_32x32.png", "item_64x64.svg"} {
		if !strings.Contains(out, "Generated "+filepath.Join(dir, name)) {
			t.Errorf("report missing %s:\n%s", name, out)
		}
	}
}

func TestDefaultPresets(t *testing.T) {
	dir := t.TempDir()
	presets := DefaultPresets()
	if len(presets) != 10 {
		t.Fatalf("len(DefaultPresets()) = %d, want 10", len(presets))
	}
	written := RunBatch(presets, dir, "", nil)
	if len(written) != 10 {
		t.Errorf("wrote %d of 10 presets: %v", len(written), written)
	}
	for _, name := range []string{
		"item_32x32.webp", "item_512x512.webp", "item_64x64.png",
		"item_64x64.ico", "item_64x64.bmp", "item_128x128.svg",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestGenerateWithFontPath(t *testing.T) {
	dir := t.TempDir()
	fontPath := filepath.Join(dir, "goregular.ttf")
	if err := os.WriteFile(fontPath, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	path, err := Generate(Options{Size: 128, Color: "navy", Format: "png", Prefix: "font_", OutDir: dir, FontPath: fontPath})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	img, err := graphics.OpenImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 128, 128) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}
