package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/hrko/launcher-icons/internal/launcher"
)

const usageText = `Generate Android app launcher icons in all densities from normal and round input images.

Usage:
  launcher-icons [flags] <normal_input> <round_input>

Examples:
  launcher-icons normal_icon.png round_icon.png
  launcher-icons normal_icon.png round_icon.png --generate-adaptive

Flags:
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("launcher-icons: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts launcher.Options
	opts.SetDefault()
	opts.Report = stdout

	flags := flag.NewFlagSet("launcher-icons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), usageText)
		flags.PrintDefaults()
	}
	flags.BoolVar(&opts.GenerateAdaptive, "generate-adaptive", false, "Generate adaptive icon XML files in mipmap-anydpi-v26 folder")
	flags.StringVar(&opts.OutDir, "out", opts.OutDir, "Directory the mipmap-* folders are created in")
	flags.BoolVar(&opts.Encode.Lossless, "lossless", opts.Encode.Lossless, "Encode WebP losslessly")
	quality := flags.Float64("quality", float64(opts.Encode.Quality), "Lossy WebP quality (0-100)")

	positional, err := parseInterspersed(flags, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(positional) != 2 {
		fmt.Fprintln(stderr, "Error: expected <normal_input> <round_input>")
		flags.Usage()
		return 2
	}
	if *quality < 0 || *quality > 100 {
		fmt.Fprintln(stderr, "Error: --quality must be between 0 and 100")
		return 2
	}
	opts.Encode.Quality = float32(*quality)
	opts.NormalInput = positional[0]
	opts.RoundInput = positional[1]

	if _, err := launcher.Run(opts); err != nil {
		var srcErr *launcher.SourceError
		if errors.As(err, &srcErr) && errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stdout, "Error: File '%s' not found.\n", srcErr.Path)
			return 1
		}
		log.Printf("error generating icons: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Icon generation complete!")
	return 0
}

// parseInterspersed lets flags appear before, between or after positional
// arguments.
func parseInterspersed(flags *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := flags.Parse(args); err != nil {
			return nil, err
		}
		args = flags.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}
