package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distro-collections/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/distro-collections", "resolve",
		"--collection-file", "fixtures/collection-harmonic.yaml",
		"--collection-file", "fixtures/collection-ionic.yaml",
		"--lib", "gz-sim",
		"--lib", "gz-common",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))

	assert.Equal(t, "gz-common5 gz-common6 gz-sim8 gz-sim9\n", string(out))
}

func TestResolveCommandE2EMainIndirection(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/distro-collections", "resolve",
		"--collection-file", "fixtures/collection-jetty.yaml",
		"--lib", "gz-sim",
		"--lib", "sdformat",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))

	assert.Equal(t, "gz-sim10 sdformat16\n", string(out))
}

func TestResolveCommandE2EUnknownPackage(t *testing.T) {
	root := testutil.RepoRoot(t)

	// go run does not forward the child's exit status, so build the binary
	// and execute it directly to observe the CLI's own exit code.
	bin := filepath.Join(t.TempDir(), "distro-collections")
	build := exec.Command("go", "build", "-o", bin, "./cmd/distro-collections")
	build.Dir = root
	build.Env = append(os.Environ(), "GO111MODULE=on")
	buildOut, err := build.CombinedOutput()
	require.NoError(t, err, string(buildOut))

	cmd := exec.Command(bin, "resolve",
		"--collection-file", "fixtures/collection-harmonic.yaml",
		"--lib", "gz-nonexistent",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, string(out))
	assert.Equal(t, 5, exitErr.ExitCode(), string(out))
	assert.True(t, strings.Contains(string(out), "package not found:"), string(out))
}
