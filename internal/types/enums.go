package types

type SourceType string

const (
	SourceTypeGit SourceType = "git"
	SourceTypeHg  SourceType = "hg"
	SourceTypeSvn SourceType = "svn"
	SourceTypeBzr SourceType = "bzr"
	SourceTypeTar SourceType = "tar"
	SourceTypeZip SourceType = "zip"
)
