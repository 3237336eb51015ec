package adapters

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"distro-collections/internal/ports"
	"distro-collections/internal/types"
)

type CollectionFileAdapter struct{}

func NewCollectionFileAdapter() CollectionFileAdapter {
	return CollectionFileAdapter{}
}

func (a CollectionFileAdapter) Load(path string) (types.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Collection{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("collection file not found: %s", path)).
			WithCause(err)
	}

	repositories, err := decodeRepositories(data)
	if err != nil {
		return types.Collection{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid collection document: %s", path)).
			WithCause(err)
	}

	return types.Collection{
		Name:         collectionName(path),
		Path:         path,
		Dir:          filepath.Dir(path),
		Repositories: repositories,
	}, nil
}

// decodeRepositories accepts both document shapes: the vcstool-style
// `repositories:` wrapper and the bare top-level package mapping.
func decodeRepositories(data []byte) (map[string]types.Repository, error) {
	var root map[string]yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("document is empty")
	}

	if wrapped, ok := root["repositories"]; ok {
		repositories := map[string]types.Repository{}
		if err := wrapped.Decode(&repositories); err != nil {
			return nil, err
		}
		return repositories, nil
	}

	repositories := make(map[string]types.Repository, len(root))
	for name, node := range root {
		var entry types.Repository
		if err := node.Decode(&entry); err != nil {
			return nil, fmt.Errorf("package %s: %w", name, err)
		}
		repositories[name] = entry
	}
	return repositories, nil
}

func collectionName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimPrefix(stem, "collection-")
}

// ListYAMLFiles returns the sorted *.yaml paths directly under dir.
func ListYAMLFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("cannot list directory %s", dir)).
			WithCause(err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

var _ ports.CollectionPort = CollectionFileAdapter{}
