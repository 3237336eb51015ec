package app

import (
	"context"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	if len(req.CollectionFiles) == 0 {
		return ListResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one collection file is required")
	}

	result := ListResult{}
	for _, path := range req.CollectionFiles {
		collection, err := s.Collections.Load(path)
		if err != nil {
			return ListResult{}, err
		}

		names := make([]string, 0, len(collection.Repositories))
		for name := range collection.Repositories {
			names = append(names, name)
		}
		sort.Strings(names)

		entries := make([]ListEntry, 0, len(names))
		for _, name := range names {
			entry := collection.Repositories[name]
			entries = append(entries, ListEntry{
				Package: name,
				Type:    entry.Type,
				Version: entry.Version,
			})
		}
		result.Collections = append(result.Collections, ListCollection{
			Name:    collection.Name,
			Path:    path,
			Entries: entries,
		})
	}

	log.Ctx(ctx).Debug().Int("collections", len(result.Collections)).Msg("list request served")
	return result, nil
}
