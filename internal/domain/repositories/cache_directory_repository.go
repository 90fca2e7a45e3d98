package repositories

// CacheDirectoryRepository locates and removes dependency-cache directories on disk.
type CacheDirectoryRepository interface {
	// Find walks root and returns every directory called name that is not nested
	// inside another match.
	Find(root, name string) ([]string, error)

	// Remove deletes the directory and everything below it.
	Remove(path string) error
}
