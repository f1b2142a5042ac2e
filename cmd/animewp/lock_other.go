//go:build !unix && !windows

package main

// acquireLock is a no-op where no locking primitive is available.
func acquireLock(_ string) (bool, error) {
	return true, nil
}

func releaseLock() {}
