package adapters

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"distro-collections/internal/ports"
)

type VersionDirAdapter struct{}

func NewVersionDirAdapter() VersionDirAdapter {
	return VersionDirAdapter{}
}

// FindVersionFile returns the stem of the unique <pkg><digits>.yaml file in
// dir, e.g. "gz-sim10" when gz-sim10.yaml is the only versioned file for
// package gz-sim.
func (a VersionDirAdapter) FindVersionFile(dir string, pkg string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot list directory %s", dir)).
			WithCause(err)
	}

	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(pkg) + `[0-9][0-9.]*\.yaml$`)
	var stems []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if pattern.MatchString(entry.Name()) {
			stems = append(stems, strings.TrimSuffix(entry.Name(), ".yaml"))
		}
	}

	switch len(stems) {
	case 1:
		return stems[0], nil
	case 0:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no versioned file for package %s in %s", pkg, dir))
	default:
		sort.Strings(stems)
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("several versioned files for package %s in %s: %s", pkg, dir, strings.Join(stems, ", ")))
	}
}

var _ ports.VersionIndexPort = VersionDirAdapter{}
