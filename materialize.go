package tailwindr

import (
	"fmt"
	"os"
	"strings"

	"github.com/kylebutts/tailwindr/internal/assets"
	"github.com/kylebutts/tailwindr/internal/fileutil"
)

// EnsureArtifact writes content to path unless the path already exists.
// Existing files are always preserved, so a user's hand-edited boilerplate
// survives re-renders. Returns whether this call created the file.
func EnsureArtifact(path, content string) (created bool, err error) {
	if path == "" {
		return false, ErrEmptyArtifactPath
	}
	if fileutil.FileExists(path) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- build inputs are world-readable
		return false, fmt.Errorf("writing artifact %s: %w", path, err)
	}
	return true, nil
}

// configVariant selects the content of the generated tailwind.config.js.
type configVariant interface {
	renderConfig() (string, error)
}

// pruneConfig scopes class generation to the classes found in the
// rendered output file.
type pruneConfig struct {
	contentPath string
}

func (c pruneConfig) renderConfig() (string, error) {
	tmpl, err := assets.LoadBoilerplate("tailwind.config.prune.js")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(tmpl, escapeJSString(c.contentPath)), nil
}

// fullConfig includes every utility class via a catch-all safelist.
type fullConfig struct{}

func (fullConfig) renderConfig() (string, error) {
	return assets.LoadBoilerplate("tailwind.config.full.js")
}

// configVariantFor maps the slim option to a config variant. The rendered
// output path only matters for the pruning variant, which scans it.
func configVariantFor(slim bool, renderedPath string) configVariant {
	if slim {
		return pruneConfig{contentPath: renderedPath}
	}
	return fullConfig{}
}

// escapeJSString escapes a string for embedding in a double-quoted
// JavaScript string literal.
func escapeJSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
