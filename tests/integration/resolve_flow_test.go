package integration

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distro-collections/internal/adapters"
	"distro-collections/internal/core"
	"distro-collections/internal/types"
	"distro-collections/tests/testutil"
)

// TestResolveFlowAgainstFixtures runs the resolver over the committed
// collection fixtures with the real filesystem adapters, no fakes.
func TestResolveFlowAgainstFixtures(t *testing.T) {
	root := testutil.RepoRoot(t)
	harmonic := filepath.Join(root, "fixtures", "collection-harmonic.yaml")
	ionic := filepath.Join(root, "fixtures", "collection-ionic.yaml")
	jetty := filepath.Join(root, "fixtures", "collection-jetty.yaml")

	resolver := core.NewResolverCore(adapters.NewVersionDirAdapter())

	t.Run("merges and sorts across collections", func(t *testing.T) {
		collections := loadCollections(t, harmonic, ionic)
		versions, err := resolver.Resolve(t.Context(), collections, []string{"gz-sim", "gz-common"})
		require.NoError(t, err)
		assert.Equal(t, []string{"gz-common5", "gz-common6", "gz-sim8", "gz-sim9"}, versions)
	})

	t.Run("aliases rewrite reported versions", func(t *testing.T) {
		collections := loadCollections(t, harmonic)
		versions, err := resolver.Resolve(t.Context(), collections, []string{"sdformat"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sdformat14"}, versions)
	})

	t.Run("substring match resolves a single candidate", func(t *testing.T) {
		collections := loadCollections(t, ionic)
		versions, err := resolver.Resolve(t.Context(), collections, []string{"transport"})
		require.NoError(t, err)
		assert.Equal(t, []string{"gz-transport14"}, versions)
	})

	t.Run("main versions resolve through sibling files", func(t *testing.T) {
		collections := loadCollections(t, jetty)
		versions, err := resolver.Resolve(t.Context(), collections, []string{"gz-sim", "gz-common", "sdformat"})
		require.NoError(t, err)
		assert.Equal(t, []string{"gz-common6", "gz-sim10", "sdformat16"}, versions)
	})

	t.Run("exact and substring hits deduplicate", func(t *testing.T) {
		collections := loadCollections(t, ionic)
		versions, err := resolver.Resolve(t.Context(), collections, []string{"gz-sim", "sim"})
		require.NoError(t, err)
		assert.Equal(t, []string{"gz-sim9"}, versions)
	})

	t.Run("resolution is repeatable", func(t *testing.T) {
		collections := loadCollections(t, harmonic, ionic)
		first, err := resolver.Resolve(t.Context(), collections, []string{"gz-math", "gz-cmake"})
		require.NoError(t, err)
		second, err := resolver.Resolve(t.Context(), collections, []string{"gz-math", "gz-cmake"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestResolveFlowFailures(t *testing.T) {
	root := testutil.RepoRoot(t)
	harmonic := filepath.Join(root, "fixtures", "collection-harmonic.yaml")
	ionic := filepath.Join(root, "fixtures", "collection-ionic.yaml")

	resolver := core.NewResolverCore(adapters.NewVersionDirAdapter())

	t.Run("unknown package lists the available union", func(t *testing.T) {
		collections := loadCollections(t, harmonic, ionic)
		_, err := resolver.Resolve(t.Context(), collections, []string{"gz-nonexistent"})
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

		var builder *errbuilder.ErrBuilder
		require.ErrorAs(t, err, &builder)
		assert.Contains(t, builder.Msg, "package not found:")
		assert.Contains(t, builder.Msg, "gz-cmake, gz-common, gz-math, gz-sim, gz-transport, sdformat")
	})

	t.Run("ambiguous substring names the candidates", func(t *testing.T) {
		collections := loadCollections(t, harmonic)
		_, err := resolver.Resolve(t.Context(), collections, []string{"gz"})
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))

		var builder *errbuilder.ErrBuilder
		require.ErrorAs(t, err, &builder)
		assert.Contains(t, builder.Msg, "ambiguous package name:")
		assert.Contains(t, builder.Msg, `collection "harmonic"`)
		assert.Contains(t, builder.Msg, "gz-sim (gz-sim8)")
	})

	t.Run("missing collection file is a document error", func(t *testing.T) {
		loader := adapters.NewCollectionFileAdapter()
		_, err := loader.Load(filepath.Join(root, "fixtures", "collection-missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	})
}

func loadCollections(t *testing.T, paths ...string) []types.Collection {
	t.Helper()
	loader := adapters.NewCollectionFileAdapter()
	collections := make([]types.Collection, 0, len(paths))
	for _, path := range paths {
		collection, err := loader.Load(path)
		require.NoError(t, err)
		collections = append(collections, collection)
	}
	return collections
}
