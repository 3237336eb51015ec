package ports

import "distro-collections/internal/types"

// LibraryIndexPort scans a registry directory for versioned library files
// (<name><digits>.yaml) and keeps the highest-suffix file per library.
type LibraryIndexPort interface {
	LatestLibraries(dir string) ([]types.Library, error)
}
