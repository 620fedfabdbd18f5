package main

import (
	"errors"
	"os"

	tailwindr "github.com/kylebutts/tailwindr"
	"github.com/kylebutts/tailwindr/internal/frontmatter"
)

// Exit codes for the tailwindr CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, options, or document inputs
	ExitIO      = 3 // File not found, permission denied
	ExitTool    = 4 // Tailwind CLI build errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool errors (exit 4)
	if errors.Is(err, tailwindr.ErrExternalTool) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tailwindr.ErrReadDocument) ||
		errors.Is(err, tailwindr.ErrWriteDocument) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOutputWithManyInputs) ||
		errors.Is(err, tailwindr.ErrMissingStylesheet) ||
		errors.Is(err, tailwindr.ErrMissingConfig) ||
		errors.Is(err, tailwindr.ErrMissingTemplate) ||
		errors.Is(err, tailwindr.ErrUnknownHighlightStyle) ||
		errors.Is(err, tailwindr.ErrEmptyMarkdown) ||
		errors.Is(err, frontmatter.ErrParse) {
		return ExitUsage
	}

	return ExitGeneral
}
