package main

import (
	"errors"
	"time"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI argument handling.
var (
	ErrNoInput              = errors.New("no input files specified")
	ErrOutputWithManyInputs = errors.New("--output requires a single input file")
)

// cliFlags holds all flags for the tailwindr command.
type cliFlags struct {
	output         string
	selfContained  bool
	slimCSS        bool
	css            []string
	tailwindConfig string
	highlight      string
	template       string
	keepSupporting bool
	figureClass    string
	timeout        time.Duration
	verbose        bool
	version        bool
}

// parseFlags parses command-line arguments. Returns the flags and the
// positional arguments (input Markdown files).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("tailwindr", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (single input only)")
	fs.BoolVar(&f.selfContained, "self-contained", false, "compile CSS locally and embed it as a data URI")
	fs.BoolVar(&f.slimCSS, "slim-css", false, "prune utility classes unused by the document")
	fs.StringArrayVar(&f.css, "css", nil, "extra stylesheet path (repeatable, processed in order)")
	fs.StringVar(&f.tailwindConfig, "tailwind-config", "", "custom tailwind.config.js path")
	fs.StringVar(&f.highlight, "highlight", "github", `syntax highlighting style ("none" to disable)`)
	fs.StringVar(&f.template, "template", "", "custom HTML template with a $body$ slot")
	fs.BoolVar(&f.keepSupporting, "keep-supporting", false, "keep generated build files after rendering")
	fs.StringVar(&f.figureClass, "figure-class", "", "class attribute applied to rendered images")
	fs.DurationVar(&f.timeout, "timeout", 2*time.Minute, "tailwind build timeout")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
