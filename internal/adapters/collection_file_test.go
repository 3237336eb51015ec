package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distro-collections/internal/types"
)

func TestCollectionFileAdapter_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collection-harmonic.yaml")
	content := `# Gazebo Harmonic
repositories:
  gz-cmake:
    type: git
    url: https://github.com/gazebosim/gz-cmake
    version: gz-cmake3
  gz-sim:
    type: git
    url: https://github.com/gazebosim/gz-sim
    version: gz-sim8
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	collection, err := NewCollectionFileAdapter().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "harmonic", collection.Name)
	assert.Equal(t, path, collection.Path)
	assert.Equal(t, dir, collection.Dir)
	assert.Len(t, collection.Repositories, 2)
	assert.Equal(t, types.Repository{
		Type:    types.SourceTypeGit,
		URL:     "https://github.com/gazebosim/gz-sim",
		Version: "gz-sim8",
	}, collection.Repositories["gz-sim"])
}

func TestCollectionFileAdapter_LoadBareMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jetty.yaml")
	content := `gz-common:
  type: git
  url: https://github.com/gazebosim/gz-common
  version: gz-common6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	collection, err := NewCollectionFileAdapter().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jetty", collection.Name)
	assert.Equal(t, "gz-common6", collection.Repositories["gz-common"].Version)
}

func TestCollectionFileAdapter_LoadMissingFile(t *testing.T) {
	_, err := NewCollectionFileAdapter().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	var builder *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &builder)
	assert.Contains(t, builder.Msg, "collection file not found:")
}

func TestCollectionFileAdapter_LoadInvalidDocument(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "repositories: [unclosed\n"},
		{"scalar document", "42\n"},
		{"empty document", ""},
		{"duplicate package", "repositories:\n  gz-sim:\n    version: gz-sim8\n  gz-sim:\n    version: gz-sim9\n"},
		{"entry not a mapping", "gz-sim: just-a-string\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "broken.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := NewCollectionFileAdapter().Load(path)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

			var builder *errbuilder.ErrBuilder
			require.ErrorAs(t, err, &builder)
			assert.Contains(t, builder.Msg, "invalid collection document:")
		})
	}
}

func TestListYAMLFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("{}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	paths, err := ListYAMLFiles(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "b.yaml"),
	}, paths)
}
