//go:build windows

package main

import (
	"errors"

	"github.com/dixieflatline76/animewp/config"
	"github.com/dixieflatline76/animewp/util/log"
	"golang.org/x/sys/windows"
)

var (
	mutex windows.Handle
)

// acquireLock tries to acquire a single-instance lock (mutex on Windows).
// The mutex lives in the session namespace, so dir is not needed.
func acquireLock(_ string) (bool, error) {
	namePtr, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, true, namePtr)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		// Another instance owns the mutex
		windows.CloseHandle(mutex)
		mutex = 0
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// releaseLock releases the single-instance lock.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.ReleaseMutex(mutex); err != nil {
		log.Printf("Failed to release mutex %v", err)
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
	mutex = 0
}
