package nsglob

// A Provider exposes a hierarchical namespace for Glob to walk. The
// typical implementation is a disk filesystem (see [FS]), but it could be
// anything with named entries arranged in directories - objects in a
// bucket, records in a database, a tree fixed up in memory for a test.
//
// The entry type T is opaque to the matching engine: entries are received
// from the provider and handed back to the caller untouched.
//
// Lookup paths may carry a trailing separator; implementations should
// treat such paths as directory lookups. Lookup failures of any kind are
// reported by returning nothing - the engine treats a missing path as a
// dead end, never as an error.
//
// A Provider must be safe for concurrent reads if Glob is called from
// multiple goroutines at once.
type Provider[T any] interface {
	// PathOf returns the canonical path string for an entry.
	PathOf(entry T) string

	// List returns the children of the directory at path, in the order
	// the results should be produced. A missing or unlistable directory
	// yields nil.
	List(path string) []T

	// FindDirectory resolves path to a directory entry, if one exists
	// there.
	FindDirectory(path string) (T, bool)

	// FindFile resolves path to a file entry, if one exists there.
	FindFile(path string) (T, bool)
}
