package graphics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fufuok/cmap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is the scalable font looked up on the host when no explicit
// font file is configured.
const DefaultFontName = "arial.ttf"

var (
	parsedFonts = cmap.NewOf[string, *opentype.Font]() // key: absolute font path
	fontDirs    []string
)

// SetFontDirs overrides the directories searched for DefaultFontName.
// If not set, the working directory and the platform font directories are used.
func SetFontDirs(dirs ...string) {
	fontDirs = dirs
}

// FontSource picks the font used to label test icons.
type FontSource struct {
	Path string // explicit TrueType/OpenType file; empty means search for DefaultFontName
}

// Face returns a face of the given pixel size. When no scalable font can be
// loaded, the fixed 7x13 bitmap face is returned with scalable=false.
func (s FontSource) Face(size float64) (face font.Face, scalable bool) {
	if size < 1 {
		size = 1
	}
	path := s.Path
	if path == "" {
		var ok bool
		path, ok = findFont(DefaultFontName)
		if !ok {
			return basicfont.Face7x13, false
		}
	}
	f, err := loadFont(path)
	if err != nil {
		return basicfont.Face7x13, false
	}
	face, err = opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, false
	}
	return face, true
}

func loadFont(path string) (*opentype.Font, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if f, ok := parsedFonts.Get(abs); ok {
		return f, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", abs, err)
	}
	parsedFonts.Set(abs, f)
	return f, nil
}

// findFont looks for name directly in each search directory, then
// (case-insensitively) below every search directory except the working one.
func findFont(name string) (string, bool) {
	for _, dir := range getFontDirs() {
		p := filepath.Join(dir, name)
		if isFileExist(p) {
			return p, true
		}
	}
	for _, dir := range getFontDirs() {
		if dir == "." {
			continue
		}
		var found string
		filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), name) {
				found = p
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

func getFontDirs() []string {
	if fontDirs != nil {
		return fontDirs
	}
	dirs := []string{"."}
	switch runtime.GOOS {
	case "windows":
		dirs = append(dirs, filepath.Join(os.Getenv("WINDIR"), "Fonts"))
	case "darwin":
		home, _ := os.UserHomeDir()
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts", filepath.Join(home, "Library", "Fonts"))
	default:
		home, _ := os.UserHomeDir()
		dirs = append(dirs, "/usr/share/fonts", "/usr/local/share/fonts", filepath.Join(home, ".fonts"), filepath.Join(home, ".local", "share", "fonts"))
	}
	return dirs
}

func isFileExist(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
