package app

import "distro-collections/internal/types"

type ResolveRequest struct {
	CollectionFiles []string
	Packages        []string
}

type ResolveResult struct {
	Versions []string
}

type ValidateRequest struct {
	CollectionFiles []string
	Dir             string
}

type CollectionProblems struct {
	Path     string
	Problems []string
}

type ValidateResult struct {
	Checked  int
	Problems []CollectionProblems
}

type ListRequest struct {
	CollectionFiles []string
}

type ListEntry struct {
	Package string
	Type    types.SourceType
	Version string
}

type ListCollection struct {
	Name    string
	Path    string
	Entries []ListEntry
}

type ListResult struct {
	Collections []ListCollection
}

type RetargetRequest struct {
	Dir     string
	Library string
	From    string
	To      string
}

type RetargetPlan struct {
	Changes []types.RetargetChange
}

type RetargetResult struct {
	Applied int
}

type DependantsRequest struct {
	Dir     string
	Targets []string
}

type DependantsResult struct {
	Report types.DependantsReport
}
