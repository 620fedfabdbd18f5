package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tailwindr "github.com/kylebutts/tailwindr"
	flag "github.com/spf13/pflag"
)

// run parses arguments and renders each input file.
func run(args []string, stderr io.Writer) error {
	flags, inputs, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintf(stderr, "tailwindr %s\n", Version)
		return nil
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}
	if flags.output != "" && len(inputs) > 1 {
		return ErrOutputWithManyInputs
	}

	format := tailwindr.New(formatOptions(flags, stderr)...)

	ctx := context.Background()
	for _, input := range inputs {
		outPath, err := format.Render(ctx, input, flags.output)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		if flags.verbose {
			fmt.Fprintf(stderr, "wrote %s\n", outPath)
		}
	}
	return nil
}

// formatOptions maps CLI flags to format options.
func formatOptions(flags *cliFlags, stderr io.Writer) []tailwindr.Option {
	opts := []tailwindr.Option{
		tailwindr.WithSelfContained(flags.selfContained),
		tailwindr.WithSlimCSS(flags.slimCSS),
		tailwindr.WithHighlight(flags.highlight),
		tailwindr.WithKeepSupporting(flags.keepSupporting),
		tailwindr.WithVerbose(flags.verbose),
		tailwindr.WithLogWriter(stderr),
		tailwindr.WithTimeout(flags.timeout),
	}
	if len(flags.css) > 0 {
		opts = append(opts, tailwindr.WithCSS(flags.css...))
	}
	if flags.tailwindConfig != "" {
		opts = append(opts, tailwindr.WithTailwindConfig(flags.tailwindConfig))
	}
	if flags.template != "" {
		opts = append(opts, tailwindr.WithTemplate(flags.template))
	}
	if flags.figureClass != "" {
		opts = append(opts, tailwindr.WithFigureClass(flags.figureClass))
	}
	return opts
}
