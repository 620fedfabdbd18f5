package tailwindr

import (
	"errors"

	"github.com/kylebutts/tailwindr/internal/pipeline"
)

// Sentinel errors for post-processing operations.
var (
	ErrMissingStylesheet     = errors.New("custom stylesheet not found")
	ErrMissingConfig         = errors.New("tailwind config not found")
	ErrMissingTemplate       = errors.New("custom template not found")
	ErrExternalTool          = errors.New("tailwind build failed")
	ErrNoInsertionPoint      = errors.New("no insertion point found in document")
	ErrEmptyArtifactPath     = errors.New("artifact path cannot be empty")
	ErrReadDocument          = errors.New("failed to read rendered document")
	ErrWriteDocument         = errors.New("failed to write rendered document")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")

	// Render errors (Markdown input side). The conversion sentinel is
	// re-exported so callers can match it without the internal import.
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
