package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
)

func (s Service) PlanRetarget(ctx context.Context, req RetargetRequest) (RetargetPlan, error) {
	if strings.TrimSpace(req.Dir) == "" {
		return RetargetPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("registry directory is required")
	}
	if strings.TrimSpace(req.Library) == "" {
		return RetargetPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("library name is required")
	}
	if strings.TrimSpace(req.From) == "" || strings.TrimSpace(req.To) == "" {
		return RetargetPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source and target versions are required")
	}
	if req.From == req.To {
		return RetargetPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("source and target versions must differ")
	}

	changes, err := s.Retargeter.Plan(req.Dir, req.Library, req.From, req.To)
	if err != nil {
		return RetargetPlan{}, err
	}

	log.Ctx(ctx).Debug().Str("library", req.Library).Int("files", len(changes)).Msg("retarget planned")
	return RetargetPlan{Changes: changes}, nil
}

func (s Service) ApplyRetarget(ctx context.Context, plan RetargetPlan) (RetargetResult, error) {
	if err := s.Retargeter.Apply(plan.Changes); err != nil {
		return RetargetResult{}, err
	}

	log.Ctx(ctx).Debug().Int("files", len(plan.Changes)).Msg("retarget applied")
	return RetargetResult{Applied: len(plan.Changes)}, nil
}
