package launcher

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/hrko/launcher-icons/pkg/graphics"
)

const (
	BaseNormal = "ic_launcher"
	BaseRound  = "ic_launcher_round"
)

// Job pairs a source image with the base name of its outputs.
type Job struct {
	Source   string
	BaseName string
}

type Options struct {
	NormalInput      string
	RoundInput       string
	OutDir           string
	GenerateAdaptive bool
	Encode           graphics.EncodeOptions
	Report           io.Writer // one line per written file; nil discards
}

func (o *Options) SetDefault() {
	o.OutDir = "."
	o.GenerateAdaptive = false
	o.Encode.SetDefault()
	o.Report = os.Stdout
}

func (o *Options) Jobs() []Job {
	return []Job{
		{Source: o.NormalInput, BaseName: BaseNormal},
		{Source: o.RoundInput, BaseName: BaseRound},
	}
}

// SourceError reports a source image that could not be opened or decoded.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

type loadedJob struct {
	Job
	img image.Image
}

// Run writes every density of both launcher icons and, if requested, the
// adaptive icon descriptors. Both sources are decoded before anything is
// written, so a missing source leaves the output directory untouched.
// Returns the written paths in write order.
func Run(opts Options) ([]string, error) {
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	report := opts.Report
	if report == nil {
		report = io.Discard
	}

	var loaded []loadedJob
	for _, job := range opts.Jobs() {
		img, err := graphics.OpenImage(job.Source)
		if err != nil {
			return nil, &SourceError{Path: job.Source, Err: err}
		}
		loaded = append(loaded, loadedJob{Job: job, img: img})
	}

	var written []string
	for _, job := range loaded {
		for _, d := range Densities {
			path, err := writeDensity(opts, job, d)
			if err != nil {
				return written, err
			}
			written = append(written, path)
			fmt.Fprintf(report, "Created %s\n", path)
		}
	}

	if opts.GenerateAdaptive {
		paths, err := writeAdaptive(opts.OutDir, report)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

func writeDensity(opts Options, job loadedJob, d Density) (string, error) {
	dir := filepath.Join(opts.OutDir, d.Dir())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	resized, err := graphics.ResizeSquare(job.img, d.Size)
	if err != nil {
		return "", err
	}
	data, err := graphics.EncodeBytes(resized, "webp", opts.Encode)
	if err != nil {
		return "", fmt.Errorf("encode %s/%s: %w", d.Name, job.BaseName, err)
	}

	path := filepath.Join(dir, job.BaseName+".webp")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func writeAdaptive(outDir string, report io.Writer) ([]string, error) {
	dir := filepath.Join(outDir, AdaptiveDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var written []string
	for _, base := range []string{BaseNormal, BaseRound} {
		path := filepath.Join(dir, base+".xml")
		if err := os.WriteFile(path, []byte(AdaptiveIconXML()), 0644); err != nil {
			return written, err
		}
		written = append(written, path)
		fmt.Fprintf(report, "Created %s\n", path)
	}
	return written, nil
}
