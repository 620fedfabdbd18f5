package tailwindr

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kylebutts/tailwindr/internal/assets"
)

// Generated artifact names within the render's output directory.
const (
	seedFileName     = "tailwind.css"
	configFileName   = "tailwind.config.js"
	postcssFileName  = "postcss.config.js"
	compiledFileName = "tailwind_compiled.css"
)

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// execRunner implements CommandRunner using os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// buildSeedContent concatenates the seed boilerplate with the extra
// stylesheets in order, so their @apply directives compile in one pass.
func buildSeedContent(cssPaths []string) (string, error) {
	seed, err := assets.LoadBoilerplate(seedFileName)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(seed)
	for _, p := range cssPaths {
		data, err := os.ReadFile(p) // #nosec G304 -- stylesheet paths are user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMissingStylesheet, p, err)
		}
		b.WriteString("\n")
		b.Write(data)
	}
	return b.String(), nil
}

// buildPostcssContent returns the fixed processor configuration.
func buildPostcssContent() (string, error) {
	return assets.LoadBoilerplate(postcssFileName)
}

// tailwindArgs constructs the npx invocation for the Tailwind CLI.
// npx --yes installs the tailwindcss package only when it is absent.
func tailwindArgs(seedPath, configPath, postcssPath, outPath string) []string {
	return []string{
		"--yes", "tailwindcss",
		"-i", seedPath,
		"-c", configPath,
		"--postcss", postcssPath,
		"-o", outPath,
		"--minify",
	}
}

// runTailwindBuild invokes the Tailwind CLI as a blocking subprocess and
// verifies it produced output. A non-zero exit and a missing or empty
// output file are both reported as ErrExternalTool.
func runTailwindBuild(ctx context.Context, runner CommandRunner, seedPath, configPath, postcssPath, outPath string) error {
	_, stderrOut, err := runner.Run(ctx, "npx", tailwindArgs(seedPath, configPath, postcssPath, outPath)...)
	if err != nil {
		if msg := strings.TrimSpace(stderrOut); msg != "" {
			return fmt.Errorf("%w: %s: %v", ErrExternalTool, msg, err)
		}
		return fmt.Errorf("%w: %v", ErrExternalTool, err)
	}

	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("%w: no compiled stylesheet at %s", ErrExternalTool, outPath)
	}
	return nil
}

// dataURILink embeds compiled CSS in a link tag as a base64 data URI.
func dataURILink(css []byte) string {
	return fmt.Sprintf(`<link rel="stylesheet" href="data:text/css;base64,%s" />`,
		base64.StdEncoding.EncodeToString(css))
}
