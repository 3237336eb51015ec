package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"distro-collections/internal/types"
)

type WavePlanner struct{}

func NewWavePlanner() WavePlanner {
	return WavePlanner{}
}

// Plan lists, per target, the libraries whose latest registry file depends on
// it, then groups every participating library into merge waves by longest
// downstream path. Merging from the highest wave number downward never lands
// a dependant before its upstream.
func (p WavePlanner) Plan(ctx context.Context, libraries []types.Library, targets []string) (types.DependantsReport, error) {
	if len(targets) == 0 {
		return types.DependantsReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one target library is required")
	}

	report := types.DependantsReport{}
	participants := map[string]struct{}{}
	for _, target := range targets {
		dependants := dependantsOf(libraries, target)
		for _, name := range dependants {
			participants[name] = struct{}{}
		}
		report.Targets = append(report.Targets, types.TargetDependants{
			Target:     target,
			Dependants: dependants,
		})
	}

	adjacency := map[string][]string{}
	for participant := range participants {
		adjacency[participant] = dependantsOf(libraries, participant)
	}

	levels := map[string]int{}
	state := map[string]visitState{}
	for participant := range adjacency {
		if err := assignLevel(adjacency, participant, levels, state); err != nil {
			return types.DependantsReport{}, err
		}
	}

	byLevel := map[int][]string{}
	for name, level := range levels {
		byLevel[level] = append(byLevel[level], name)
	}
	for level, names := range byLevel {
		sort.Strings(names)
		report.Waves = append(report.Waves, types.Wave{Level: level, Libraries: names})
	}
	sort.Slice(report.Waves, func(i, j int) bool {
		return report.Waves[i].Level > report.Waves[j].Level
	})

	log.Ctx(ctx).Debug().Int("targets", len(targets)).Int("waves", len(report.Waves)).Msg("wave planning completed")
	return report, nil
}

// dependantsOf returns the sorted library names whose repositories mapping
// carries name as a key. A library file always lists its own repository;
// that structural self-reference is not a dependency edge.
func dependantsOf(libraries []types.Library, name string) []string {
	var dependants []string
	for _, library := range libraries {
		if library.Name == name {
			continue
		}
		if _, ok := library.Repositories[name]; ok {
			dependants = append(dependants, library.Name)
		}
	}
	sort.Strings(dependants)
	return dependants
}

type visitState int

const (
	visitUnseen visitState = iota
	visitInProgress
	visitDone
)

// assignLevel computes the longest-path level of a vertex: leaves sit at
// level 1, everything else one above its deepest dependant.
func assignLevel(adjacency map[string][]string, vertex string, levels map[string]int, state map[string]visitState) error {
	switch state[vertex] {
	case visitDone:
		return nil
	case visitInProgress:
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("dependency cycle detected involving %q", vertex))
	}
	state[vertex] = visitInProgress

	level := 1
	for _, successor := range adjacency[vertex] {
		if err := assignLevel(adjacency, successor, levels, state); err != nil {
			return err
		}
		if levels[successor]+1 > level {
			level = levels[successor] + 1
		}
	}

	levels[vertex] = level
	state[vertex] = visitDone
	return nil
}
