package tailwindr

import (
	"fmt"
	"os"

	"github.com/kylebutts/tailwindr/internal/fileutil"
)

// ScratchArtifact is a file tracked for cleanup after a render. Generated
// records whether this run created the file; pre-existing files (a user's
// hand-edited boilerplate) are never deleted.
type ScratchArtifact struct {
	Path      string
	Generated bool
}

// cleanupArtifacts removes the scratch files this run generated. Missing
// files are tolerated, so the cleanup is idempotent. A path matching the
// user-supplied config after canonicalization is preserved regardless of
// its provenance flag.
func cleanupArtifacts(artifacts []ScratchArtifact, keep bool, userConfigPath string) error {
	if keep {
		return nil
	}
	for _, a := range artifacts {
		if !a.Generated {
			continue
		}
		if userConfigPath != "" && fileutil.SamePath(a.Path, userConfigPath) {
			continue
		}
		if err := os.Remove(a.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing scratch artifact %s: %w", a.Path, err)
		}
	}
	return nil
}
