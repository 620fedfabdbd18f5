package tailwindr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kylebutts/tailwindr/internal/fileutil"
	"github.com/kylebutts/tailwindr/internal/frontmatter"
	"github.com/kylebutts/tailwindr/internal/pipeline"
)

// RenderRequest describes one document render. It is built per render and
// owned by the post-processor for the duration of the call.
type RenderRequest struct {
	InputPath  string
	OutputPath string
	FilesDir   string
	OutputDir  string
}

// Format is the tailwind HTML output format. It attaches to a render as a
// pair of hooks: PreRender records the render's directories and installs
// the figure hook, PostRender runs the full post-processing sequence.
// Options are immutable after construction.
type Format struct {
	opts      Options
	timeout   time.Duration
	runner    CommandRunner
	converter pipeline.HTMLConverter
	logw      io.Writer
	verbose   bool

	mu          sync.Mutex
	filesDir    string
	outputDir   string
	restoreHook func()
}

// New creates a Format with default configuration.
// Use options to customize behavior (e.g., WithSelfContained).
func New(opts ...Option) *Format {
	f := &Format{
		opts:      DefaultOptions(),
		timeout:   defaultTimeout,
		runner:    execRunner{},
		converter: pipeline.NewGoldmarkConverter(),
		logw:      os.Stderr,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// PreRender records the render's directories and installs the figure hook
// for the duration of the render. The previous process-wide hook is
// captured and restored when PostRender finishes, on every exit path.
// Metadata may carry a "figure_class" string overriding the format option.
func (f *Format) PreRender(metadata map[string]any, inputPath, filesDir, outputDir string) error {
	class := f.opts.FigureClass
	if override, ok := metadata["figure_class"].(string); ok && override != "" {
		class = override
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.filesDir = filesDir
	f.outputDir = outputDir

	// A leftover hook from an aborted render is restored before swapping.
	if f.restoreHook != nil {
		f.restoreHook()
	}
	f.restoreHook = pipeline.SwapImageHook(func(string) string { return class })
	return nil
}

// PostRender runs the post-processing sequence on an already-rendered
// document and returns the output path. When clean is true, generated
// scratch files are removed afterward (unless the format is configured to
// keep them). Verbose progress goes to the format's log writer.
func (f *Format) PostRender(inputPath, outputPath string, clean, verbose bool) (string, error) {
	f.mu.Lock()
	outputDir := f.outputDir
	filesDir := f.filesDir
	f.mu.Unlock()

	if outputDir == "" {
		outputDir = filepath.Dir(outputPath)
	}

	req := RenderRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		FilesDir:   filesDir,
		OutputDir:  outputDir,
	}
	return f.finishRender(context.Background(), req, f.opts, clean, verbose)
}

// Render converts a Markdown file to a Tailwind-styled HTML document: it
// parses front matter, converts the body, wraps it in the HTML template,
// and runs the full post-processing sequence. Returns the output path.
// An empty outputPath derives one from the input path.
func (f *Format) Render(ctx context.Context, inputPath, outputPath string) (string, error) {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading markdown: %w", err)
	}

	doc, err := frontmatter.Parse(data)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(doc.Body)) == 0 {
		return "", ErrEmptyMarkdown
	}

	opts := f.opts.merge(doc.Meta)

	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
	}
	filesDir := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_files"

	if err := f.PreRender(nil, inputPath, filesDir, filepath.Dir(outputPath)); err != nil {
		return "", err
	}
	// Errors between here and finishRender must not leak the swapped hook.
	defer f.popRestoreHook()

	fragment, err := f.converter.ToHTML(ctx, string(doc.Body))
	if err != nil {
		return "", err
	}

	title := doc.Meta.Title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}

	var html string
	if opts.Template != "" {
		if !fileutil.FileExists(opts.Template) {
			return "", fmt.Errorf("%w: %s", ErrMissingTemplate, opts.Template)
		}
		html, err = pipeline.WrapDocumentWith(opts.Template, fragment, title)
		if err != nil {
			return "", err
		}
	} else {
		html = pipeline.WrapDocument(fragment, title)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0o644); err != nil { // #nosec G306 -- rendered HTML is world-readable
		return "", fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	req := RenderRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		FilesDir:   filesDir,
		OutputDir:  filepath.Dir(outputPath),
	}
	return f.finishRender(ctx, req, opts, true, f.verbose)
}

// popRestoreHook restores the process-wide figure hook captured by the
// last PreRender. Safe to call more than once; the restore is idempotent.
func (f *Format) popRestoreHook() {
	f.mu.Lock()
	restore := f.restoreHook
	f.restoreHook = nil
	f.mu.Unlock()
	if restore != nil {
		restore()
	}
}

// finishRender pops the scoped figure hook and runs post-processing.
// The restore runs on every exit path, including failure.
func (f *Format) finishRender(ctx context.Context, req RenderRequest, opts Options, clean, verbose bool) (string, error) {
	defer f.popRestoreHook()

	out, _, err := f.postProcess(ctx, req, opts, clean, verbose)
	return out, err
}

// postProcess runs the state machine for one render:
// materialize -> compile or build-reference -> splice -> clean up.
// Any fatal error transitions to Failed and aborts before the next step,
// leaving the rendered document unspliced on disk.
func (f *Format) postProcess(ctx context.Context, req RenderRequest, opts Options, clean, verbose bool) (string, *renderRun, error) {
	run := &renderRun{state: stateIdle}

	logf := func(format string, args ...any) {
		if verbose && f.logw != nil {
			fmt.Fprintf(f.logw, "tailwindr: "+format+"\n", args...)
		}
	}
	fail := func(err error) (string, *renderRun, error) {
		run.transition(stateFailed)
		logf("post-processing failed: %v", err)
		return "", run, err
	}

	// Missing inputs are detected eagerly, before any processing.
	for _, p := range opts.CSS {
		if !fileutil.FileExists(p) {
			return fail(fmt.Errorf("%w: %s", ErrMissingStylesheet, p))
		}
	}
	if opts.TailwindConfig != "" && !fileutil.FileExists(opts.TailwindConfig) {
		return fail(fmt.Errorf("%w: %s", ErrMissingConfig, opts.TailwindConfig))
	}

	unlock := lockOutputDir(req.OutputDir)
	defer unlock()

	highlightBlock, err := highlightCSS(opts.Highlight)
	if err != nil {
		return fail(err)
	}

	var (
		artifacts []ScratchArtifact
		block     string
	)

	if opts.SelfContained {
		run.transition(stateMaterializing)
		logf("materializing build inputs in %s", req.OutputDir)

		seedContent, err := buildSeedContent(opts.CSS)
		if err != nil {
			return fail(err)
		}
		seedPath := filepath.Join(req.OutputDir, seedFileName)
		created, err := EnsureArtifact(seedPath, seedContent)
		if err != nil {
			return fail(err)
		}
		artifacts = append(artifacts, ScratchArtifact{Path: seedPath, Generated: created})

		configPath := opts.TailwindConfig
		if configPath == "" {
			content, err := configVariantFor(opts.SlimCSS, req.OutputPath).renderConfig()
			if err != nil {
				return fail(err)
			}
			configPath = filepath.Join(req.OutputDir, configFileName)
			created, err := EnsureArtifact(configPath, content)
			if err != nil {
				return fail(err)
			}
			artifacts = append(artifacts, ScratchArtifact{Path: configPath, Generated: created})
		}

		postcssContent, err := buildPostcssContent()
		if err != nil {
			return fail(err)
		}
		postcssPath := filepath.Join(req.OutputDir, postcssFileName)
		created, err = EnsureArtifact(postcssPath, postcssContent)
		if err != nil {
			return fail(err)
		}
		artifacts = append(artifacts, ScratchArtifact{Path: postcssPath, Generated: created})

		run.transition(stateCompiling)
		logf("running tailwind build")

		compiledPath := filepath.Join(req.OutputDir, compiledFileName)
		buildCtx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		if err := runTailwindBuild(buildCtx, f.runner, seedPath, configPath, postcssPath, compiledPath); err != nil {
			return fail(err)
		}
		artifacts = append(artifacts, ScratchArtifact{Path: compiledPath, Generated: true})

		css, err := os.ReadFile(compiledPath) // #nosec G304 -- path built from the output directory
		if err != nil {
			return fail(fmt.Errorf("%w: reading compiled stylesheet: %v", ErrExternalTool, err))
		}
		block = dataURILink(css)
	} else {
		run.transition(stateBuildingReference)
		logf("building CDN reference fragment")

		block, err = buildReferenceFragment(opts.TailwindConfig, opts.CSS)
		if err != nil {
			return fail(err)
		}
	}

	if highlightBlock != "" {
		block = block + "\n" + highlightBlock
	}

	run.transition(stateSplicing)
	logf("splicing into %s", req.OutputPath)
	if err := SpliceFile(req.OutputPath, block, f.logw); err != nil {
		return fail(err)
	}

	run.transition(stateCleaningUp)
	keep := opts.KeepSupporting || !clean
	if keep {
		logf("keeping %d supporting file(s)", len(artifacts))
	} else {
		logf("cleaning up supporting files")
	}
	if err := cleanupArtifacts(artifacts, keep, opts.TailwindConfig); err != nil {
		return fail(err)
	}

	run.transition(stateDone)
	logf("done: %s", req.OutputPath)
	return req.OutputPath, run, nil
}
