package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/core"
	"distro-collections/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	if len(req.CollectionFiles) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one collection file is required")
	}
	if len(req.Packages) == 0 {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one package name is required")
	}

	collections := make([]types.Collection, 0, len(req.CollectionFiles))
	for _, path := range req.CollectionFiles {
		collection, err := s.Collections.Load(path)
		if err != nil {
			return ResolveResult{}, err
		}
		collections = append(collections, collection)
	}

	resolver := core.NewResolverCore(s.VersionIndex)
	versions, err := resolver.Resolve(ctx, collections, req.Packages)
	if err != nil {
		return ResolveResult{}, err
	}

	log.Ctx(ctx).Debug().Int("collections", len(collections)).Int("versions", len(versions)).Msg("resolve request served")
	return ResolveResult{Versions: versions}, nil
}
