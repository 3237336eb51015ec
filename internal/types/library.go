package types

// Library is the newest versioned document for one library in a registry
// directory, e.g. gz-sim9.yaml for gz-sim when no gz-sim10.yaml exists.
// Its repositories mapping enumerates everything needed to build that
// library version, which is what the dependants analysis walks.
type Library struct {
	Name         string
	Suffix       string
	Path         string
	Repositories map[string]Repository
}
