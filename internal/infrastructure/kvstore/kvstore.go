package kvstore

import (
	"fmt"
)

// Persisted keys. The value under KeyIncidents is a JSON array of incident
// records; KeyTheme holds "light" or "dark"; KeyUsers the registered names.
const (
	KeyIncidents = "incidents"
	KeyTheme     = "theme"
	KeyUsers     = "users"
)

// Store is the persistence contract: a string-keyed text store. Get
// reports absence via the second return value rather than an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// Backend names accepted by New.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// New builds a Store for the named backend. path is ignored for memory.
func New(backend, path string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendFile:
		return NewFile(path)
	case BackendSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown kvstore backend %q", backend)
	}
}
