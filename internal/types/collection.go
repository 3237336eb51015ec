package types

// Repository is one pinned source entry in a collection document.  Version
// is the only field the resolver interprets; Type and URL are carried
// through for tooling that wants them (list, validate).
type Repository struct {
	Type    SourceType `yaml:"type,omitempty"`
	URL     string     `yaml:"url,omitempty"`
	Version string     `yaml:"version"`
}

// Collection is a parsed collection document.  Name is the file stem with
// the conventional "collection-" prefix stripped, so collection-harmonic.yaml
// is reported as "harmonic".  Dir is the directory holding the source file;
// main-version indirection scans it for versioned sibling files.
type Collection struct {
	Name         string
	Path         string
	Dir          string
	Repositories map[string]Repository
}
