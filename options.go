package tailwindr

import (
	"io"
	"time"

	"github.com/kylebutts/tailwindr/internal/frontmatter"
)

// defaultFigureClass is applied to rendered images unless overridden.
const defaultFigureClass = "max-w-full h-auto mx-auto"

// defaultTimeout bounds the external Tailwind build.
const defaultTimeout = 2 * time.Minute

// Options configures the tailwind output format. A Format's options are
// fixed at construction; per-document front matter overrides are merged
// into a copy for each render.
type Options struct {
	// Highlight names the chroma style for the generated syntax
	// highlighting stylesheet. Empty uses the default; HighlightNone
	// disables the stylesheet entirely.
	Highlight string

	// SlimCSS scopes the generated tailwind config to the classes found
	// in the rendered output file, pruning everything else.
	SlimCSS bool

	// SelfContained compiles the stylesheet locally with the Tailwind CLI
	// and embeds it as a data URI. When false the output references the
	// Tailwind CDN instead and no subprocess runs.
	SelfContained bool

	// CSS lists extra stylesheets, processed in order. In self-contained
	// mode their content is appended to the seed input (so @apply
	// directives compile); in CDN mode each becomes an inline
	// text/tailwindcss style block.
	CSS []string

	// TailwindConfig overrides the generated tailwind.config.js. The file
	// is never deleted during cleanup.
	TailwindConfig string

	// KeepSupporting preserves generated scratch files after the render,
	// regardless of the post-render clean flag.
	KeepSupporting bool

	// Template is an optional HTML template file with a $body$ slot.
	Template string

	// FigureClass is the class attribute applied to rendered images.
	FigureClass string
}

// DefaultOptions returns the format defaults: CDN reference mode, github
// highlighting, standard figure classes.
func DefaultOptions() Options {
	return Options{
		Highlight:   "github",
		FigureClass: defaultFigureClass,
	}
}

// merge applies document front matter over the format options and returns
// the result. Unset front matter fields leave the format value in place.
func (o Options) merge(m frontmatter.Meta) Options {
	if m.Highlight != "" {
		o.Highlight = m.Highlight
	}
	if m.SlimCSS != nil {
		o.SlimCSS = *m.SlimCSS
	}
	if m.SelfContained != nil {
		o.SelfContained = *m.SelfContained
	}
	if m.CSS != nil {
		o.CSS = m.CSS
	}
	if m.TailwindConfig != "" {
		o.TailwindConfig = m.TailwindConfig
	}
	if m.CleanSupporting != nil {
		o.KeepSupporting = !*m.CleanSupporting
	}
	if m.Template != "" {
		o.Template = m.Template
	}
	return o
}

// Option configures a Format.
type Option func(*Format)

// WithHighlight sets the syntax highlighting style name.
func WithHighlight(style string) Option {
	return func(f *Format) { f.opts.Highlight = style }
}

// WithSlimCSS enables pruning of unused utility classes.
func WithSlimCSS(v bool) Option {
	return func(f *Format) { f.opts.SlimCSS = v }
}

// WithSelfContained enables the local Tailwind build and data URI embedding.
func WithSelfContained(v bool) Option {
	return func(f *Format) { f.opts.SelfContained = v }
}

// WithCSS appends extra stylesheet paths, processed in order.
func WithCSS(paths ...string) Option {
	return func(f *Format) { f.opts.CSS = append(f.opts.CSS, paths...) }
}

// WithTailwindConfig sets a user-supplied tailwind config file.
func WithTailwindConfig(path string) Option {
	return func(f *Format) { f.opts.TailwindConfig = path }
}

// WithKeepSupporting preserves generated scratch files after rendering.
func WithKeepSupporting(v bool) Option {
	return func(f *Format) { f.opts.KeepSupporting = v }
}

// WithTemplate sets a custom HTML template file.
func WithTemplate(path string) Option {
	return func(f *Format) { f.opts.Template = path }
}

// WithFigureClass sets the class attribute applied to rendered images.
func WithFigureClass(class string) Option {
	return func(f *Format) { f.opts.FigureClass = class }
}

// WithVerbose enables progress logging to the format's log writer.
func WithVerbose(v bool) Option {
	return func(f *Format) { f.verbose = v }
}

// WithLogWriter sets the destination for warnings and verbose progress.
func WithLogWriter(w io.Writer) Option {
	return func(f *Format) { f.logw = w }
}

// WithTimeout sets the external build timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("tailwindr: WithTimeout duration must be positive")
	}
	return func(f *Format) { f.timeout = d }
}
