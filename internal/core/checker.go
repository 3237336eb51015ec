package core

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/types"
)

type CollectionChecker struct{}

var knownSourceTypes = map[types.SourceType]struct{}{
	types.SourceTypeGit: {},
	types.SourceTypeHg:  {},
	types.SourceTypeSvn: {},
	types.SourceTypeBzr: {},
	types.SourceTypeTar: {},
	types.SourceTypeZip: {},
}

func NewCollectionChecker() CollectionChecker {
	return CollectionChecker{}
}

// Check inspects one loaded collection and returns a problem line per rule
// violation. Rules are local: nothing here talks to the network.
func (c CollectionChecker) Check(ctx context.Context, collection types.Collection) []string {
	assert.NotEmpty(ctx, collection.Name, "collection name must be set")

	names := make([]string, 0, len(collection.Repositories))
	for name := range collection.Repositories {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		entry := collection.Repositories[name]
		if strings.TrimSpace(entry.Version) == "" {
			problems = append(problems, fmt.Sprintf("package %s has an empty version", name))
		}
		if entry.Type == "" {
			problems = append(problems, fmt.Sprintf("package %s has no source type", name))
		} else if _, ok := knownSourceTypes[entry.Type]; !ok {
			problems = append(problems, fmt.Sprintf("package %s has unknown source type %q", name, entry.Type))
		}
		if entry.URL != "" && !wellFormedURL(entry.URL) {
			problems = append(problems, fmt.Sprintf("package %s has a malformed url %q", name, entry.URL))
		}
	}

	log.Ctx(ctx).Debug().Str("collection", collection.Name).Int("problems", len(problems)).Msg("collection checked")
	return problems
}

// wellFormedURL accepts scheme://host forms and scp-like git@host:path
// remotes. Only syntax is checked.
func wellFormedURL(value string) bool {
	if strings.Contains(value, "://") {
		parsed, err := url.Parse(value)
		return err == nil && parsed.Scheme != "" && parsed.Host != ""
	}
	at := strings.Index(value, "@")
	colon := strings.Index(value, ":")
	return at > 0 && colon > at+1 && colon < len(value)-1
}
