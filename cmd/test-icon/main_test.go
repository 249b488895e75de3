package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hrko/launcher-icons/internal/testicon"
)

func TestListPresets(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list-presets"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	var presets []testicon.Options
	if err := json.Unmarshal(stdout.Bytes(), &presets); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, stdout.String())
	}
	if len(presets) != 10 {
		t.Errorf("got %d presets, want 10", len(presets))
	}
	if presets[0].Size != 32 || presets[0].Prefix != "item_" {
		t.Errorf("first preset = %+v", presets[0])
	}
}

func TestSingleIcon(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-size", "48", "-color", "teal", "-format", "svg", "-prefix", "vector_", "-out", dir}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	path := filepath.Join(dir, "vector_48x48.svg")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("missing %s: %v", path, err)
	}
	if !strings.Contains(stdout.String(), "Generated "+path) {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestUnsupportedFormatWarns(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "avif", "-out", dir}, &stdout, &stderr)
	if code != 0 {
		t.Errorf("exit %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Warning: Could not save as avif") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}
