package fsutil

import (
	"path/filepath"
	"sync"
)

var pathMutexes sync.Map

// GetPathMutex returns the mutex guarding a cleaned path, creating it on first use
func GetPathMutex(path string) *sync.Mutex {
	mu, _ := pathMutexes.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return mu.(*sync.Mutex)
}
