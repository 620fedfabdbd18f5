// Package frontmatter splits YAML front matter from Markdown documents
// and decodes the document options recognized by the tailwind format.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/kylebutts/tailwindr/internal/yamlutil"
)

// ErrParse indicates the front matter block is not valid YAML.
var ErrParse = errors.New("failed to parse front matter")

// delimiter marks the start and end of a YAML front matter block.
var delimiter = []byte("---")

// Document is a Markdown document split into front matter and body.
type Document struct {
	Meta Meta
	Body []byte
}

// Meta holds the recognized document options plus common metadata.
// Boolean options use pointers so "not set" is distinguishable from false
// when merging with format-level configuration.
type Meta struct {
	Title           string   `yaml:"title"`
	Highlight       string   `yaml:"highlight"`
	SlimCSS         *bool    `yaml:"slim_css"`
	SelfContained   *bool    `yaml:"self_contained"`
	CSS             []string `yaml:"css"`
	TailwindConfig  string   `yaml:"tailwind_config"`
	CleanSupporting *bool    `yaml:"clean_supporting"`
	Template        string   `yaml:"template"`
}

// Split separates a leading YAML front matter block from the Markdown body.
// A block starts with "---" on the first line and ends at the next "---"
// (or "...") line. Documents without front matter return nil metadata and
// the input unchanged.
func Split(data []byte) (meta, body []byte) {
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || !isDelimiter(lines[0], false) {
		return nil, data
	}

	for i := 1; i < len(lines); i++ {
		if isDelimiter(lines[i], true) {
			metaEnd := len(lines[0])
			for _, l := range lines[1:i] {
				metaEnd += len(l)
			}
			bodyStart := metaEnd + len(lines[i])
			return data[len(lines[0]):metaEnd], data[bodyStart:]
		}
	}

	// Unterminated block: treat the whole input as body.
	return nil, data
}

// isDelimiter reports whether a line is a front matter delimiter.
// The closing delimiter also accepts "..." per the YAML spec.
func isDelimiter(line []byte, closing bool) bool {
	trimmed := bytes.TrimRight(line, "\r\n")
	if bytes.Equal(trimmed, delimiter) {
		return true
	}
	return closing && bytes.Equal(trimmed, []byte("..."))
}

// Parse splits a document and decodes its front matter.
// Unknown front matter keys are ignored: documents commonly carry metadata
// for other consumers (authors, dates) alongside the format options.
func Parse(data []byte) (*Document, error) {
	metaBytes, body := Split(data)
	doc := &Document{Body: body}

	if len(metaBytes) == 0 {
		return doc, nil
	}

	if err := yamlutil.Unmarshal(metaBytes, &doc.Meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}
