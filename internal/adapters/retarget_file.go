package adapters

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"distro-collections/internal/ports"
	"distro-collections/internal/types"
)

type RetargetFileAdapter struct{}

func NewRetargetFileAdapter() RetargetFileAdapter {
	return RetargetFileAdapter{}
}

// Plan inspects every yaml file under dir and records an edit for each one
// whose entry for library carries exactly the version from. Documents are
// edited as node trees, so comments, key order, and quoting of untouched
// content survive the rewrite.
func (a RetargetFileAdapter) Plan(dir string, library string, from string, to string) ([]types.RetargetChange, error) {
	paths, err := ListYAMLFiles(dir)
	if err != nil {
		return nil, err
	}

	var changes []types.RetargetChange
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("collection file not found: %s", path)).
				WithCause(err)
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid collection document: %s", path)).
				WithCause(err)
		}

		version := versionNode(&doc, library)
		if version == nil || version.Value != from {
			continue
		}
		version.Value = to

		rendered, err := renderDocument(&doc)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to render %s", path)).
				WithCause(err)
		}

		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(data)),
			B:        difflib.SplitLines(string(rendered)),
			FromFile: filepath.Base(path),
			ToFile:   filepath.Base(path),
			Context:  3,
		})
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to diff %s", path)).
				WithCause(err)
		}

		changes = append(changes, types.RetargetChange{
			Path: path,
			Old:  data,
			New:  rendered,
			Diff: diff,
		})
	}
	return changes, nil
}

func (a RetargetFileAdapter) Apply(changes []types.RetargetChange) error {
	for _, change := range changes {
		if err := os.WriteFile(change.Path, change.New, 0644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to write %s", change.Path)).
				WithCause(err)
		}
	}
	return nil
}

// versionNode walks document -> repositories mapping (wrapped or bare) ->
// library entry -> version scalar, returning nil when any step is missing.
func versionNode(doc *yaml.Node, library string) *yaml.Node {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil
	}

	repositories := root
	if wrapped := mappingValue(root, "repositories"); wrapped != nil && wrapped.Kind == yaml.MappingNode {
		repositories = wrapped
	}

	entry := mappingValue(repositories, library)
	if entry == nil || entry.Kind != yaml.MappingNode {
		return nil
	}
	version := mappingValue(entry, "version")
	if version == nil || version.Kind != yaml.ScalarNode {
		return nil
	}
	return version
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func renderDocument(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var _ ports.RetargetPort = RetargetFileAdapter{}
