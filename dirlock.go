package tailwindr

import (
	"sync"

	"github.com/kylebutts/tailwindr/internal/fileutil"
)

// Concurrent renders into the same output directory would race on the
// materializer's existence checks and the cleaner's deletions, so each
// post-processing pass holds a per-directory lock keyed by canonical path.
var (
	dirLocksMu sync.Mutex
	dirLocks   = map[string]*sync.Mutex{}
)

// lockOutputDir acquires the lock for an output directory and returns the
// unlock function.
func lockOutputDir(dir string) (unlock func()) {
	key := fileutil.CanonicalPath(dir)

	dirLocksMu.Lock()
	mu, ok := dirLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		dirLocks[key] = mu
	}
	dirLocksMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
