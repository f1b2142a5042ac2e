//go:build unix

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/util/log"
	"golang.org/x/sys/unix"
)

var (
	lockFile *os.File
)

// acquireLock tries to acquire a single-instance lock (file lock on Unix).
// The lock file lives in dir, which belongs to the current user.
func acquireLock(dir string) (bool, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, fmt.Errorf("failed to create lock directory: %w", err)
	}

	lockFilePath := filepath.Join(dir, config.AppName+".lock")
	file, err := os.OpenFile(lockFilePath, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	err = unix.FcntlFlock(file.Fd(), unix.F_SETLK, &unix.Flock_t{
		Type:   unix.F_WRLCK,
		Whence: 0,
		Start:  0,
		Len:    0, // Lock the entire file
	})
	if err != nil {
		file.Close()
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EACCES) {
			// Another instance is running, lock is BUSY
			return false, nil
		}
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}

	lockFile = file
	return true, nil
}

// releaseLock releases the single-instance lock and removes the lock file.
func releaseLock() {
	if lockFile == nil {
		return
	}
	name := lockFile.Name()

	// Best effort unlock
	if err := unix.FcntlFlock(lockFile.Fd(), unix.F_SETLK, &unix.Flock_t{Type: unix.F_UNLCK}); err != nil {
		log.Debugf("unlocking %s: %v", name, err)
	}
	lockFile.Close()
	if err := os.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to remove lock file %s: %v", name, err)
	}
	lockFile = nil
}
