package tailwindr

import (
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/kylebutts/tailwindr/internal/fileutil"
)

// HighlightNone disables the generated syntax highlighting stylesheet.
const HighlightNone = "none"

// highlightCSS generates the chroma stylesheet for a named style, wrapped
// in a <style> block ready for splicing. Returns "" when highlighting is
// disabled.
func highlightCSS(style string) (string, error) {
	if style == "" || style == HighlightNone {
		return "", nil
	}
	if fileutil.IsFilePath(style) {
		return "", fmt.Errorf("%w: %q is a file path, pass stylesheets via the css option", ErrUnknownHighlightStyle, style)
	}

	s := styles.Get(style)
	if s == styles.Fallback && style != "fallback" {
		return "", fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, style)
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var b strings.Builder
	b.WriteString("<style>\n")
	if err := formatter.WriteCSS(&b, s); err != nil {
		return "", fmt.Errorf("generating highlight stylesheet: %w", err)
	}
	b.WriteString("</style>")
	return b.String(), nil
}
