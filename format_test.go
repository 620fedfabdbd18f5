package tailwindr

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylebutts/tailwindr/internal/fileutil"
	"github.com/kylebutts/tailwindr/internal/pipeline"
)

const testDocument = `<html>
<head>
<title>t</title>
<!-- tailwind -->
</head>
<body>
<p class="p-2">hi</p>
</body>
</html>
`

// writeDocument creates a rendered HTML file in a fresh output directory
// and returns the request describing it.
func writeDocument(t *testing.T) RenderRequest {
	t.Helper()
	dir := t.TempDir()
	out := filepath.Join(dir, "report.html")
	writeFile(t, out, testDocument)
	return RenderRequest{
		InputPath:  filepath.Join(dir, "report.md"),
		OutputPath: out,
		FilesDir:   filepath.Join(dir, "report_files"),
		OutputDir:  dir,
	}
}

// compileRunner simulates a successful Tailwind build by writing the
// requested output file.
func compileRunner(t *testing.T) *MockRunner {
	t.Helper()
	return &MockRunner{
		OnRun: func(_ string, args []string) {
			for i, a := range args {
				if a == "-o" && i+1 < len(args) {
					writeFile(t, args[i+1], ".p-2{padding:0.5rem}")
				}
			}
		},
	}
}

func TestPostProcessReferenceMode(t *testing.T) {
	req := writeDocument(t)
	f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone))

	opts := f.opts
	out, run, err := f.postProcess(context.Background(), req, opts, true, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != req.OutputPath {
		t.Errorf("output path = %q, want %q", out, req.OutputPath)
	}
	if run.state != stateDone {
		t.Errorf("state = %v, want done", run.state)
	}

	html, _ := os.ReadFile(req.OutputPath)
	if !strings.Contains(string(html), cdnURL) {
		t.Errorf("CDN reference not spliced: %q", html)
	}
}

func TestPostProcessCompileMode(t *testing.T) {
	scratchNames := []string{seedFileName, configFileName, postcssFileName, compiledFileName}

	t.Run("clean run leaves no scratch files", func(t *testing.T) {
		req := writeDocument(t)
		f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone), WithSelfContained(true))
		f.runner = compileRunner(t)

		out, run, err := f.postProcess(context.Background(), req, f.opts, true, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.state != stateDone {
			t.Errorf("state = %v, want done", run.state)
		}

		html, _ := os.ReadFile(out)
		if !strings.Contains(string(html), "data:text/css;base64,") {
			t.Errorf("compiled stylesheet not embedded: %q", html)
		}
		for _, name := range scratchNames {
			if fileutil.FileExists(filepath.Join(req.OutputDir, name)) {
				t.Errorf("scratch file %s left on disk", name)
			}
		}
	})

	t.Run("keep-supporting leaves all scratch files", func(t *testing.T) {
		req := writeDocument(t)
		f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone),
			WithSelfContained(true), WithKeepSupporting(true))
		f.runner = compileRunner(t)

		if _, _, err := f.postProcess(context.Background(), req, f.opts, true, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, name := range scratchNames {
			if !fileutil.FileExists(filepath.Join(req.OutputDir, name)) {
				t.Errorf("scratch file %s missing despite keep-supporting", name)
			}
		}
	})

	t.Run("slim css config references the rendered output", func(t *testing.T) {
		req := writeDocument(t)
		f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone),
			WithSelfContained(true), WithSlimCSS(true), WithKeepSupporting(true))
		f.runner = compileRunner(t)

		if _, _, err := f.postProcess(context.Background(), req, f.opts, true, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cfg, err := os.ReadFile(filepath.Join(req.OutputDir, configFileName))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(cfg), req.OutputPath) {
			t.Errorf("slim config missing content scope: %q", cfg)
		}
	})

	t.Run("user config survives cleanup", func(t *testing.T) {
		req := writeDocument(t)
		cfgPath := filepath.Join(req.OutputDir, "my.config.js")
		writeFile(t, cfgPath, "module.exports = {};")

		f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone),
			WithSelfContained(true), WithTailwindConfig(cfgPath))
		f.runner = compileRunner(t)

		if _, _, err := f.postProcess(context.Background(), req, f.opts, true, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fileutil.FileExists(cfgPath) {
			t.Error("user config deleted during cleanup")
		}
	})

	t.Run("build failure aborts before splicing", func(t *testing.T) {
		req := writeDocument(t)
		f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone), WithSelfContained(true))
		f.runner = &MockRunner{Err: errors.New("exit status 1")}

		_, run, err := f.postProcess(context.Background(), req, f.opts, true, false)
		if !errors.Is(err, ErrExternalTool) {
			t.Fatalf("expected ErrExternalTool, got %v", err)
		}
		if run.state != stateFailed {
			t.Errorf("state = %v, want failed", run.state)
		}

		html, _ := os.ReadFile(req.OutputPath)
		if string(html) != testDocument {
			t.Error("document modified despite failed build")
		}
	})
}

func TestPostProcessEagerValidation(t *testing.T) {
	req := writeDocument(t)
	f := New(WithLogWriter(io.Discard),
		WithCSS(filepath.Join(req.OutputDir, "absent.css")))

	_, run, err := f.postProcess(context.Background(), req, f.opts, true, false)
	if !errors.Is(err, ErrMissingStylesheet) {
		t.Fatalf("expected ErrMissingStylesheet, got %v", err)
	}
	if run.state != stateFailed {
		t.Errorf("state = %v, want failed", run.state)
	}

	html, _ := os.ReadFile(req.OutputPath)
	if string(html) != testDocument {
		t.Error("document modified despite missing input")
	}
}

func TestPostProcessHighlight(t *testing.T) {
	req := writeDocument(t)
	f := New(WithLogWriter(io.Discard), WithHighlight("github"))

	if _, _, err := f.postProcess(context.Background(), req, f.opts, true, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html, _ := os.ReadFile(req.OutputPath)
	if !strings.Contains(string(html), ".chroma") {
		t.Errorf("highlight stylesheet not spliced: %q", html)
	}
}

func TestPreRenderPostRenderHooks(t *testing.T) {
	req := writeDocument(t)
	f := New(WithLogWriter(io.Discard), WithHighlight(HighlightNone))

	if err := f.PreRender(nil, req.InputPath, req.FilesDir, req.OutputDir); err != nil {
		t.Fatalf("PreRender: %v", err)
	}

	out, err := f.PostRender(req.InputPath, req.OutputPath, true, false)
	if err != nil {
		t.Fatalf("PostRender: %v", err)
	}
	if out != req.OutputPath {
		t.Errorf("output path = %q, want %q", out, req.OutputPath)
	}

	// The figure hook must be restored after the render: a fresh
	// conversion applies no class attribute.
	conv := pipeline.NewGoldmarkConverter()
	html, err := conv.ToHTML(context.Background(), "![alt](img.png)")
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(html, "class=") {
		t.Errorf("figure hook leaked past PostRender: %q", html)
	}
}

func TestRenderEndToEnd(t *testing.T) {
	t.Run("CDN mode from front matter", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		writeFile(t, input, `---
title: Test Document
highlight: none
---

# Hello

![figure](fig.png)
`)

		f := New(WithLogWriter(io.Discard))
		out, err := f.Render(context.Background(), input, "")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if out != filepath.Join(dir, "doc.html") {
			t.Errorf("output path = %q", out)
		}

		html, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		for _, want := range []string{
			"<title>Test Document</title>",
			cdnURL,
			`class="max-w-full h-auto mx-auto"`,
			"<h1",
		} {
			if !strings.Contains(string(html), want) {
				t.Errorf("rendered document missing %q", want)
			}
		}
	})

	t.Run("self-contained mode from front matter", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		writeFile(t, input, `---
self_contained: true
slim_css: true
highlight: none
---

body text
`)

		f := New(WithLogWriter(io.Discard))
		f.runner = compileRunner(t)

		out, err := f.Render(context.Background(), input, "")
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		html, _ := os.ReadFile(out)
		if !strings.Contains(string(html), "data:text/css;base64,") {
			t.Errorf("compiled stylesheet not embedded: %q", html)
		}
	})

	t.Run("empty document returns ErrEmptyMarkdown", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		writeFile(t, input, "---\ntitle: x\n---\n\n")

		f := New(WithLogWriter(io.Discard))
		if _, err := f.Render(context.Background(), input, ""); !errors.Is(err, ErrEmptyMarkdown) {
			t.Errorf("expected ErrEmptyMarkdown, got %v", err)
		}
	})

	t.Run("missing template returns ErrMissingTemplate", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		writeFile(t, input, "# hi\n")

		f := New(WithLogWriter(io.Discard), WithTemplate(filepath.Join(dir, "absent.html")))
		if _, err := f.Render(context.Background(), input, ""); !errors.Is(err, ErrMissingTemplate) {
			t.Errorf("expected ErrMissingTemplate, got %v", err)
		}

		// A failed render must not leak the figure hook.
		conv := pipeline.NewGoldmarkConverter()
		html, err := conv.ToHTML(context.Background(), "![a](b.png)")
		if err != nil {
			t.Fatalf("ToHTML: %v", err)
		}
		if strings.Contains(html, "class=") {
			t.Errorf("figure hook leaked past failed render: %q", html)
		}
	})
}
