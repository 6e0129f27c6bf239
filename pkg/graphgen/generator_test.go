package graphgen

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	g := NewGenerator("", "3")

	assert.Equal(t, DefaultExecutable, g.Executable)
	assert.Equal(t,
		[]string{"Dataset/ModelNet40/airplane/train/airplane_0001.off", "3", "-p", "Dataset/ModelNet40-path-3/airplane/train/airplane_0001.path", "-r"},
		g.Args("Dataset/ModelNet40/airplane/train/airplane_0001.off", "Dataset/ModelNet40-path-3/airplane/train/airplane_0001.path"),
	)
}

func TestCommand(t *testing.T) {
	g := NewGenerator("/opt/gg/GraphGenerator", "12")
	assert.Equal(t, "/opt/gg/GraphGenerator a.off 12 -p a.path -r", g.Command("a.off", "a.path"))
}

func TestDryRun(t *testing.T) {
	var out bytes.Buffer
	d := &DryRun{Generator: NewGenerator("gen", "5"), Out: &out}

	require.NoError(t, d.Convert(context.Background(), "x.off", "x.path"))
	assert.Equal(t, "gen x.off 5 -p x.path -r\n", out.String())
}

// fakeGenerator writes a shell script that records its arguments and
// creates the -p output, or fails when the input name contains "broken".
func fakeGenerator(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script generator stub requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	script := `#!/bin/sh
case "$1" in
*broken*) echo "Not an OFF file!" >&2; exit 255;;
esac
echo "Parsing $1"
echo "$@" > "$4"
`
	path := filepath.Join(t.TempDir(), "GraphGenerator")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestConvertRunsExecutable(t *testing.T) {
	exe := fakeGenerator(t)
	dir := t.TempDir()
	dst := filepath.Join(dir, "chair_0001.path")

	var stdout bytes.Buffer
	g := NewGenerator(exe, "4")
	g.Stdout = &stdout

	require.NoError(t, g.Convert(context.Background(), "chair_0001.off", dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "chair_0001.off 4 -p "+dst+" -r", strings.TrimSpace(string(data)))
	assert.Contains(t, stdout.String(), "Parsing chair_0001.off")
}

func TestConvertReportsFailure(t *testing.T) {
	exe := fakeGenerator(t)
	dst := filepath.Join(t.TempDir(), "broken.path")

	err := NewGenerator(exe, "4").Convert(context.Background(), "broken.off", dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not an OFF file!")

	var exitErr *exec.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.NoFileExists(t, dst)
}

func TestConvertMissingExecutable(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "does-not-exist"), "4")
	err := g.Convert(context.Background(), "a.off", "a.path")
	assert.Error(t, err)
}
