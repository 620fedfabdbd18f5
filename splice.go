package tailwindr

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// insertionMarker is the comment that marks where tailwind content is
// spliced into a rendered document.
const insertionMarker = "<!-- tailwind -->"

// headCloseTag is the fallback insertion anchor when no marker exists.
const headCloseTag = "</head>"

// findInsertionIndex scans the document lines for the insertion marker and
// returns the line index at which new content is inserted, plus the number
// of marker lines seen. With a marker, insertion happens immediately after
// the first marker line; without one, immediately before the first line
// containing </head>. Returns ErrNoInsertionPoint when neither exists.
func findInsertionIndex(lines []string) (idx, markers int, err error) {
	markerIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == insertionMarker {
			if markerIdx == -1 {
				markerIdx = i
			}
			markers++
		}
	}
	if markerIdx != -1 {
		return markerIdx + 1, markers, nil
	}

	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), headCloseTag) {
			return i, 0, nil
		}
	}

	return 0, 0, ErrNoInsertionPoint
}

// SpliceLines inserts a block into a document's lines at the insertion
// point. Exactly one insertion is made; all original lines are preserved
// in order. The returned marker count lets callers warn about ambiguous
// documents with more than one marker.
func SpliceLines(lines []string, block string) (spliced []string, markers int, err error) {
	idx, markers, err := findInsertionIndex(lines)
	if err != nil {
		return nil, markers, err
	}

	blockLines := strings.Split(strings.TrimRight(block, "\n"), "\n")

	spliced = make([]string, 0, len(lines)+len(blockLines))
	spliced = append(spliced, lines[:idx]...)
	spliced = append(spliced, blockLines...)
	spliced = append(spliced, lines[idx:]...)
	return spliced, markers, nil
}

// SpliceFile reads a rendered document, splices the block in, and writes
// the result back to the same path. Multiple-marker documents produce a
// warning on warnw; the first marker wins.
func SpliceFile(path, block string, warnw io.Writer) error {
	data, err := os.ReadFile(path) // #nosec G304 -- output path is caller-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadDocument, err)
	}

	text := string(data)
	hadTrailingNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	spliced, markers, err := SpliceLines(lines, block)
	if err != nil {
		return fmt.Errorf("%w: %s", err, path)
	}
	if markers > 1 && warnw != nil {
		fmt.Fprintf(warnw, "tailwindr: warning: %d insertion markers in %s, using the first\n", markers, path)
	}

	out := strings.Join(spliced, "\n")
	if hadTrailingNewline {
		out += "\n"
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil { // #nosec G306 -- rendered HTML is world-readable
		return fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	return nil
}
