package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/adapters"
	"distro-collections/internal/core"
)

// Validate checks every requested collection document against the local
// registry rules. The returned result carries the per-file problem lists
// even when the error is set, so callers can report detail before failing.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	paths := append([]string(nil), req.CollectionFiles...)
	if dir := strings.TrimSpace(req.Dir); dir != "" {
		found, err := adapters.ListYAMLFiles(dir)
		if err != nil {
			return ValidateResult{}, err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no collection files to validate")
	}

	checker := core.NewCollectionChecker()
	result := ValidateResult{Checked: len(paths)}
	total := 0
	for _, path := range paths {
		collection, err := s.Collections.Load(path)
		if err != nil {
			return ValidateResult{}, err
		}
		problems := checker.Check(ctx, collection)
		if len(problems) == 0 {
			continue
		}
		total += len(problems)
		result.Problems = append(result.Problems, CollectionProblems{Path: path, Problems: problems})
	}

	log.Ctx(ctx).Debug().Int("checked", result.Checked).Int("problems", total).Msg("validation completed")
	if total > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%d problems in %d of %d collections", total, len(result.Problems), result.Checked))
	}
	return result, nil
}
