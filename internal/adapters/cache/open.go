package cache

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/sx-cli/internal/core/ports"
)

// Supported backends
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// SQLiteFilename is the database name used inside the cache directory
const SQLiteFilename = "cache.db"

// Store is a CacheStore that owns resources
type Store interface {
	ports.CacheStore
	Clear() (int, error)
	Close() error
}

// Backends lists the accepted backend names
func Backends() []string {
	return []string{BackendFile, BackendSQLite, BackendMemory, BackendNone}
}

// Open creates the store for backend inside dir. BackendNone returns a nil
// store, which disables persistence.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendNone:
		return nil, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	case "", BackendFile:
		return NewFileStore(filepath.Join(dir, "entries"))
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dir, SQLiteFilename))
	default:
		return nil, fmt.Errorf("unknown cache backend %q (want one of %s)", backend, strings.Join(Backends(), ", "))
	}
}
