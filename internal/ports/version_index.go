package ports

// VersionIndexPort locates the concrete versioned file behind a symbolic
// "main" version: given the directory of the collection document and the
// matched package name, it returns the stem of the unique sibling file named
// <package><digits>.yaml (digits may be dotted, e.g. "gz-sim9.1.yaml").
//
// Zero candidates and multiple candidates are both errors; the resolver
// wraps them into its own indirection failure naming package and directory.
// Keeping the directory scan behind this interface lets tests substitute an
// in-memory fake.
type VersionIndexPort interface {
	FindVersionFile(dir string, pkg string) (string, error)
}
