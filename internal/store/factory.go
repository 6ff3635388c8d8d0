package store

import "fmt"

// Open returns a Store for the configured backend, "file" or "sqlite".
func Open(backend, path string) (Store, error) {
	switch backend {
	case "", "file":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
