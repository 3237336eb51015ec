package types

// RetargetChange is one planned file edit: the document before and after
// rewriting a library's pinned version, plus the rendered unified diff.
type RetargetChange struct {
	Path string
	Old  []byte
	New  []byte
	Diff string
}
