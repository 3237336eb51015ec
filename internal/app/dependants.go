package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/core"
)

func (s Service) Dependants(ctx context.Context, req DependantsRequest) (DependantsResult, error) {
	if strings.TrimSpace(req.Dir) == "" {
		return DependantsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("registry directory is required")
	}
	if len(req.Targets) == 0 {
		return DependantsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one target library is required")
	}

	libraries, err := s.Libraries.LatestLibraries(req.Dir)
	if err != nil {
		return DependantsResult{}, err
	}

	report, err := core.NewWavePlanner().Plan(ctx, libraries, req.Targets)
	if err != nil {
		return DependantsResult{}, err
	}

	log.Ctx(ctx).Debug().Int("libraries", len(libraries)).Int("targets", len(req.Targets)).Msg("dependants computed")
	return DependantsResult{Report: report}, nil
}
