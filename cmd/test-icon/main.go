package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/tidwall/pretty"

	"github.com/hrko/launcher-icons/internal/testicon"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("test-icon: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts testicon.Options
	opts.SetDefault()

	flags := flag.NewFlagSet("test-icon", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&opts.Size, "size", opts.Size, "Icon size in pixels")
	flags.StringVar(&opts.Color, "color", opts.Color, "Frame and text color (name, #hex or rgb())")
	flags.StringVar(&opts.Format, "format", opts.Format, "webp, png, jpeg, gif, bmp, tiff, ico or svg")
	flags.StringVar(&opts.Prefix, "prefix", opts.Prefix, "File name prefix")
	flags.StringVar(&opts.OutDir, "out", opts.OutDir, "Output directory")
	flags.StringVar(&opts.FontPath, "font", "", "TrueType/OpenType font file (default: arial.ttf from the host)")
	batch := flags.Bool("batch", false, "Generate the stock preset batch instead of a single icon")
	listPresets := flags.Bool("list-presets", false, "Print the stock preset batch as JSON and exit")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	switch {
	case *listPresets:
		if err := printPresets(stdout); err != nil {
			log.Printf("error printing presets: %v\n", err)
			return 1
		}
	case *batch:
		testicon.RunBatch(testicon.DefaultPresets(), opts.OutDir, opts.FontPath, stdout)
	default:
		testicon.RunBatch([]testicon.Options{opts}, opts.OutDir, opts.FontPath, stdout)
	}
	return 0
}

func printPresets(w io.Writer) error {
	var tmpBuf bytes.Buffer
	encoder := json.NewEncoder(&tmpBuf)
	if err := encoder.Encode(testicon.DefaultPresets()); err != nil {
		return err
	}
	_, err := w.Write(pretty.Pretty(tmpBuf.Bytes()))
	return err
}
