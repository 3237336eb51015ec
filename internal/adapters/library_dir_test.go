package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLibraryFile(t *testing.T, dir string, name string, deps ...string) {
	t.Helper()
	content := "repositories:\n"
	for _, dep := range deps {
		content += "  " + dep + ":\n    type: git\n    url: https://github.com/gazebosim/" + dep + "\n    version: main\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLibraryDirAdapter_LatestLibraries(t *testing.T) {
	dir := t.TempDir()
	writeLibraryFile(t, dir, "gz-sim9.yaml", "gz-sim", "gz-common")
	writeLibraryFile(t, dir, "gz-sim10.yaml", "gz-sim", "gz-common", "gz-math")
	writeLibraryFile(t, dir, "gz-common5.yaml", "gz-common")
	writeLibraryFile(t, dir, "collection-harmonic.yaml", "gz-sim", "gz-common")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("registry\n"), 0o644))

	adapter := NewLibraryDirAdapter(NewCollectionFileAdapter())
	libraries, err := adapter.LatestLibraries(dir)
	require.NoError(t, err)

	require.Len(t, libraries, 2)
	assert.Equal(t, "gz-common", libraries[0].Name)
	assert.Equal(t, "5", libraries[0].Suffix)
	assert.Equal(t, "gz-sim", libraries[1].Name)
	assert.Equal(t, "10", libraries[1].Suffix)
	assert.Equal(t, filepath.Join(dir, "gz-sim10.yaml"), libraries[1].Path)
	assert.Contains(t, libraries[1].Repositories, "gz-math")
}

func TestLibraryDirAdapter_SuffixOrdering(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"9", "10", true},
		{"10", "9", false},
		{"9", "9.1", true},
		{"9.1", "9", false},
		{"10", "10", false},
	}

	for _, tt := range tests {
		if got := suffixLess(tt.a, tt.b); got != tt.want {
			t.Fatalf("suffixLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLibraryDirAdapter_PropagatesLoadFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gz-sim9.yaml"), []byte("repositories: [broken\n"), 0o644))

	adapter := NewLibraryDirAdapter(NewCollectionFileAdapter())
	_, err := adapter.LatestLibraries(dir)
	require.Error(t, err)
}
