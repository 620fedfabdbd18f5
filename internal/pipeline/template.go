package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for template wrapping.
var (
	ErrTemplateRead   = errors.New("failed to read template")
	ErrMissingBodySlot = errors.New("template is missing $body$ slot")
)

// Template placeholders, pandoc-style.
const (
	bodySlot  = "$body$"
	titleSlot = "$title$"
)

// defaultTemplate wraps the converted fragment in a complete HTML5
// document. The head carries the tailwind insertion marker so the
// post-processor splices at a known position.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
<title>$title$</title>
<!-- tailwind -->
</head>
<body>
$body$
</body>
</html>
`

// WrapDocument wraps an HTML fragment in a full document using the default
// template.
func WrapDocument(body, title string) string {
	wrapped, _ := wrap(defaultTemplate, body, title)
	return wrapped
}

// WrapDocumentWith wraps an HTML fragment using a template file.
// The template must contain a $body$ slot; $title$ is optional.
func WrapDocumentWith(templatePath, body, title string) (string, error) {
	data, err := os.ReadFile(templatePath) // #nosec G304 -- template path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return wrap(string(data), body, title)
}

func wrap(tmpl, body, title string) (string, error) {
	if !strings.Contains(tmpl, bodySlot) {
		return "", ErrMissingBodySlot
	}
	out := strings.Replace(tmpl, bodySlot, body, 1)
	out = strings.ReplaceAll(out, titleSlot, title)
	return out, nil
}
