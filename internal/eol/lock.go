package eol

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run is already fixing the same tree
var ErrLocked = errors.New("another run is already fixing this tree")

// RunLock serializes fix runs on one project root across processes.
// The lock file lives in the temp directory so the tree itself is untouched.
type RunLock struct {
	flock *flock.Flock
	root  string
}

// LockPath returns the lock file used for root
func LockPath(root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(os.TempDir(), "eolinuxify-"+hex.EncodeToString(sum[:8])+".lock")
}

// AcquireRunLock takes the lock for root without blocking
func AcquireRunLock(root string) (*RunLock, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("eol: failed to get absolute path for '%s': %w", root, err)
	}

	lock := flock.New(LockPath(absRoot))
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("eol: failed to lock %s: %w", lock.Path(), err)
	}
	if !acquired {
		return nil, fmt.Errorf("eol: %s: %w", absRoot, ErrLocked)
	}
	return &RunLock{flock: lock, root: absRoot}, nil
}

// Release drops the lock
func (l *RunLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("eol: failed to release lock for %s: %w", l.root, err)
	}
	return nil
}
