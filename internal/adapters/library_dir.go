package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"

	"distro-collections/internal/ports"
	"distro-collections/internal/types"
)

var libraryFilePattern = regexp.MustCompile(`^([a-z][a-z0-9_-]*?)([0-9][0-9.]*)\.yaml$`)

type LibraryDirAdapter struct {
	Collections ports.CollectionPort
}

func NewLibraryDirAdapter(collections ports.CollectionPort) LibraryDirAdapter {
	return LibraryDirAdapter{Collections: collections}
}

// LatestLibraries scans dir for versioned library files (<name><digits>.yaml)
// and keeps the highest suffix per library, comparing suffixes as Debian
// versions so 10 sorts above 9. Collection files and other non-versioned
// yaml files are skipped.
func (a LibraryDirAdapter) LatestLibraries(dir string) ([]types.Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot list directory %s", dir)).
			WithCause(err)
	}

	latest := map[string]types.Library{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		groups := libraryFilePattern.FindStringSubmatch(entry.Name())
		if groups == nil {
			continue
		}
		candidate := types.Library{
			Name:   groups[1],
			Suffix: groups[2],
			Path:   filepath.Join(dir, entry.Name()),
		}
		current, ok := latest[candidate.Name]
		if !ok || suffixLess(current.Suffix, candidate.Suffix) {
			latest[candidate.Name] = candidate
		}
	}

	names := make([]string, 0, len(latest))
	for name := range latest {
		names = append(names, name)
	}
	sort.Strings(names)

	libraries := make([]types.Library, 0, len(names))
	for _, name := range names {
		library := latest[name]
		collection, err := a.Collections.Load(library.Path)
		if err != nil {
			return nil, err
		}
		library.Repositories = collection.Repositories
		libraries = append(libraries, library)
	}
	return libraries, nil
}

// suffixLess orders numeric file suffixes as Debian versions, falling back
// to plain string comparison when a suffix does not parse.
func suffixLess(a, b string) bool {
	av, errA := debversion.NewVersion(a)
	bv, errB := debversion.NewVersion(b)
	if errA != nil || errB != nil {
		return a < b
	}
	return av.LessThan(bv)
}

var _ ports.LibraryIndexPort = LibraryDirAdapter{}
