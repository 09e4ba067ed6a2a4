package installer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForMode(t *testing.T) {
	add, err := ForMode(ModeAdd, "uv", "/proj")
	require.NoError(t, err)
	require.IsType(t, &UVAdd{}, add)

	sync, err := ForMode(ModeSync, "uv", "/proj")
	require.NoError(t, err)
	require.IsType(t, &UVSync{}, sync)

	_, err = ForMode("install", "uv", "/proj")
	require.Error(t, err)
}

func TestUVAddCommandForwardsManifestPath(t *testing.T) {
	u := &UVAdd{UVPath: "uv", Dir: "/proj"}
	require.Equal(t, []string{"uv", "add", "-r", "/proj/requirements.txt"}, u.Command("/proj/requirements.txt"))
	require.Equal(t, "uv add", u.Name())
}

func TestUVAddDefaultsBinaryName(t *testing.T) {
	u := &UVAdd{Dir: "/proj"}
	require.Equal(t, "uv", u.Command("x")[0])

	custom := &UVAdd{UVPath: "/usr/local/bin/uv", Dir: "/proj"}
	require.Equal(t, "/usr/local/bin/uv", custom.Command("x")[0])
}

func TestUVSyncCommandIgnoresManifestPath(t *testing.T) {
	u := &UVSync{UVPath: "uv", Dir: "/proj"}
	require.Equal(t, []string{"uv", "sync"}, u.Command("/proj/uv.lock"))
	require.Equal(t, "uv sync", u.Name())
}

func TestRunReportsExitCode(t *testing.T) {
	code, err := run(t.TempDir(), []string{"sh", "-c", "exit 3"})
	require.Error(t, err)
	require.Equal(t, 3, code)
}

func TestRunMissingBinary(t *testing.T) {
	code, err := run(t.TempDir(), []string{"definitely-not-a-real-binary"})
	require.Error(t, err)
	require.Equal(t, 1, code)
}

func TestRunSuccess(t *testing.T) {
	code, err := run(t.TempDir(), []string{"sh", "-c", "true"})
	require.NoError(t, err)
	require.Equal(t, 0, code)
}
