package bookmark

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/log"
)

const (
	lockAcquireTimeout = 5 * time.Second
	lockRetryDelay     = 25 * time.Millisecond
	lockStaleAfter     = 10 * time.Second
)

// fileLock is an advisory lock shared between independent command invocations.
// It relies on the atomicity of O_CREATE|O_EXCL, which works on every afero
// backend, unlike fcntl-style locks.
type fileLock struct {
	path string
}

// acquire blocks until the lock file could be created exclusively, a stale
// lock was broken, or the acquire timeout elapsed.
func (l *fileLock) acquire() error {
	deadline := time.Now().Add(lockAcquireTimeout)

	for {
		f, err := filesystem.API().OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			return f.Close()
		}

		if !os.IsExist(err) {
			return fmt.Errorf("acquire lock %s: %w", l.path, err)
		}

		// A holder that crashed mid-write leaves the lock file behind.
		if stat, statErr := filesystem.API().Stat(l.path); statErr == nil {
			if time.Since(stat.ModTime()) > lockStaleAfter {
				log.Warnf("breaking stale bookmark lock %s", l.path)
				_ = filesystem.API().Remove(l.path)
				continue
			}
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("acquire lock %s: timed out", l.path)
		}
		time.Sleep(lockRetryDelay)
	}
}

// release removes the lock file.
func (l *fileLock) release() {
	if err := filesystem.API().Remove(l.path); err != nil {
		log.Warnf("release bookmark lock %s: %v", l.path, err)
	}
}
