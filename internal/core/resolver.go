package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/ports"
	"distro-collections/internal/types"
)

const mainVersion = "main"

type ResolverCore struct {
	VersionIndex ports.VersionIndexPort
}

func NewResolverCore(versionIndex ports.VersionIndexPort) ResolverCore {
	return ResolverCore{VersionIndex: versionIndex}
}

// Resolve looks up every requested package name across the given collections
// and returns the deduplicated, lexicographically sorted version list.
func (r ResolverCore) Resolve(ctx context.Context, collections []types.Collection, names []string) ([]string, error) {
	if r.VersionIndex == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a version index port")
	}
	if len(collections) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one collection is required")
	}
	if len(names) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package name is required")
	}

	seen := map[string]struct{}{}
	var versions []string
	for _, name := range names {
		matched := false
		for _, collection := range collections {
			pkg, entry, ok, err := matchPackage(collection, name)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			matched = true

			version, err := r.reportedVersion(ctx, collection, pkg, entry.Version)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[version]; dup {
				continue
			}
			seen[version] = struct{}{}
			versions = append(versions, version)
		}
		if !matched {
			return nil, errPackageNotFound(name, collections)
		}
	}

	sort.Strings(versions)
	log.Ctx(ctx).Debug().Int("requested", len(names)).Int("versions", len(versions)).Msg("resolve completed")
	return versions, nil
}

// matchPackage applies the lookup tiers for one document: an exact key always
// wins; otherwise a single substring candidate resolves, and several without
// an exact key is an ambiguity error for the whole query.
func matchPackage(collection types.Collection, name string) (string, types.Repository, bool, error) {
	if entry, ok := collection.Repositories[name]; ok {
		return name, entry, true, nil
	}

	var candidates []string
	for key := range collection.Repositories {
		if strings.Contains(key, name) {
			candidates = append(candidates, key)
		}
	}

	switch len(candidates) {
	case 0:
		return "", types.Repository{}, false, nil
	case 1:
		return candidates[0], collection.Repositories[candidates[0]], true, nil
	default:
		return "", types.Repository{}, false, errAmbiguousMatch(name, collection, candidates)
	}
}

func (r ResolverCore) reportedVersion(ctx context.Context, collection types.Collection, pkg string, version string) (string, error) {
	version = ApplyAliases(version)
	if version != mainVersion {
		return version, nil
	}

	stem, err := r.VersionIndex.FindVersionFile(collection.Dir, pkg)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("cannot resolve main version for package %q in %s", pkg, collection.Dir)).
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("package", pkg).Str("version", stem).Msg("main version resolved from sibling file")
	return stem, nil
}

func errPackageNotFound(name string, collections []types.Collection) error {
	known := map[string]struct{}{}
	for _, collection := range collections {
		for key := range collection.Repositories {
			known[key] = struct{}{}
		}
	}
	available := make([]string, 0, len(known))
	for key := range known {
		available = append(available, key)
	}
	sort.Strings(available)

	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("package not found: %q; available packages: %s", name, strings.Join(available, ", ")))
}

func errAmbiguousMatch(name string, collection types.Collection, candidates []string) error {
	sort.Strings(candidates)
	listed := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		listed = append(listed, fmt.Sprintf("%s (%s)", candidate, collection.Repositories[candidate].Version))
	}

	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("ambiguous package name: %q matches several packages in collection %q: %s", name, collection.Name, strings.Join(listed, ", ")))
}
