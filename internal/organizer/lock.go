package organizer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"dirtidy/internal/failures"
)

// lockPath places the lock outside the target so it never shows up in a scan.
// The file stays after Unlock and is reused by later runs; removing it would
// let a waiting run lock an unlinked inode while a new run locks a fresh one.
func lockPath(target string) string {
	sum := sha256.Sum256([]byte(target))
	return filepath.Join(os.TempDir(), "dirtidy-"+hex.EncodeToString(sum[:8])+".lock")
}

// acquireRunLock takes a non-blocking advisory lock for target. A second run
// against the same directory fails with ErrBusy.
func acquireRunLock(target string) (*flock.Flock, error) {
	lock := flock.New(lockPath(target))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, failures.Wrap(failures.ErrBusy, "locking", "acquire lock", fmt.Sprintf("Unable to lock %s", target), err)
	}
	if !locked {
		return nil, failures.Wrap(failures.ErrBusy, "locking", "acquire lock", fmt.Sprintf("Another dirtidy run is organizing %s", target), nil)
	}
	return lock, nil
}
