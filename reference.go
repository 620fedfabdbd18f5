package tailwindr

import (
	"fmt"
	"os"
	"strings"
)

// cdnURL loads the browser-side just-in-time Tailwind engine.
const cdnURL = "https://cdn.tailwindcss.com"

// cdnRefreshSnippet forces the CDN engine to rescan the document after a
// custom configuration is applied.
const cdnRefreshSnippet = "window.tailwind != null && window.tailwind.refresh();"

// buildReferenceFragment assembles the CDN-mode insertion fragment: one
// script tag loading the engine, an optional module script carrying the
// user configuration verbatim plus the refresh trigger, and one inline
// style block per extra stylesheet, content verbatim.
func buildReferenceFragment(configPath string, cssPaths []string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<script src=%q></script>\n", cdnURL)

	if configPath != "" {
		data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMissingConfig, configPath, err)
		}
		b.WriteString("<script type=\"module\">\n")
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteString("\n")
		}
		b.WriteString(cdnRefreshSnippet)
		b.WriteString("\n</script>\n")
	}

	for _, p := range cssPaths {
		data, err := os.ReadFile(p) // #nosec G304 -- stylesheet paths are user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrMissingStylesheet, p, err)
		}
		b.WriteString("<style type=\"text/tailwindcss\">\n")
		b.Write(data)
		if len(data) > 0 && data[len(data)-1] != '\n' {
			b.WriteString("\n")
		}
		b.WriteString("</style>\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}
