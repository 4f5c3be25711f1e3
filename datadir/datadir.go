// SPDX-License-Identifier: MIT

// Package datadir holds the process-wide base directory pruning tables
// are read from and written to. It is set at most once per process,
// mirroring original_source's OnceLock<PathBuf> global: a search that
// spans many goroutines (the batch driver) shares one data directory,
// configured once at startup by whatever front end embeds this module.
package datadir

import (
	"path/filepath"
	"sync"
)

var (
	mu  sync.RWMutex
	dir string
	set bool
)

// Set records path as the process-wide data directory. Only the first
// call takes effect; subsequent calls are no-ops, matching OnceLock's
// set-once semantics.
func Set(path string) {
	mu.Lock()
	defer mu.Unlock()
	if set {
		return
	}
	dir = path
	set = true
}

// Get returns the configured data directory and true, or ("", false)
// if none has been set yet.
func Get() (string, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return dir, set
}

// Join resolves filename against the configured data directory, or
// returns filename unchanged if no data directory has been set.
func Join(filename string) string {
	if d, ok := Get(); ok {
		return filepath.Join(d, filename)
	}
	return filename
}
