package bake

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates every file (slash-separated, relative to root)
func makeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f), 0644))
	}
}

var datasetFiles = []string{
	"ModelNet40/airplane/train/airplane_0001.off",
	"ModelNet40/airplane/train/airplane_0002.off",
	"ModelNet40/airplane/test/airplane_0627.off",
	"ModelNet40/bathtub/train/bathtub_0001.off",
	"ModelNet40/bathtub/test/bathtub_0107.off",
	"ModelNet40/chair/train/chair_0001.off",
	"ModelNet40/chair/test/chair_0890.off",
	"ModelNet40/chair/test/README.txt",
	"metadata_modelnet40.csv",
}

func collect(t *testing.T, root string, order Order) []string {
	t.Helper()
	var visited []string
	err := Walk(root, order, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return visited
}

func TestWalkVisitsAllFiles(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, datasetFiles...)

	visited := collect(t, root, OrderNative)
	sort.Strings(visited)

	expected := append([]string(nil), datasetFiles...)
	sort.Strings(expected)
	assert.Equal(t, expected, visited)
}

func TestWalkReverseVisitsSameSet(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, datasetFiles...)

	native := collect(t, root, OrderNative)
	reverse := collect(t, root, OrderReverse)

	sort.Strings(native)
	sort.Strings(reverse)
	assert.Equal(t, native, reverse)
}

func TestWalkReverseDescendingSiblings(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, datasetFiles...)

	var dirs []string
	seen := map[string]bool{}
	for _, f := range collect(t, root, OrderReverse) {
		dir := filepath.ToSlash(filepath.Dir(filepath.FromSlash(f)))
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	assert.Equal(t, []string{
		".",
		"ModelNet40/chair/train",
		"ModelNet40/chair/test",
		"ModelNet40/bathtub/train",
		"ModelNet40/bathtub/test",
		"ModelNet40/airplane/train",
		"ModelNet40/airplane/test",
	}, dirs)
}

func TestWalkFilesBeforeSubdirectories(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, "z_top.off", "a/nested.off", "a/b/deeper.off")

	for _, order := range []Order{OrderNative, OrderReverse} {
		visited := collect(t, root, order)
		assert.Equal(t, []string{"z_top.off", "a/nested.off", "a/b/deeper.off"}, visited, "order %s", order)
	}
}

func TestWalkStopsOnCallbackError(t *testing.T) {
	root := t.TempDir()
	makeTree(t, root, datasetFiles...)

	stop := os.ErrClosed
	count := 0
	err := Walk(root, OrderNative, func(path string) error {
		count++
		if strings.HasSuffix(path, ".off") {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Less(t, count, len(datasetFiles))
}

func TestWalkMissingRoot(t *testing.T) {
	err := Walk(filepath.Join(t.TempDir(), "missing"), OrderNative, func(string) error { return nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseOrder(t *testing.T) {
	for input, expected := range map[string]Order{"": OrderNative, "native": OrderNative, "Reverse": OrderReverse} {
		order, err := ParseOrder(input)
		require.NoError(t, err)
		assert.Equal(t, expected, order)
	}

	_, err := ParseOrder("sorted")
	assert.Error(t, err)
	assert.Equal(t, "reverse", OrderReverse.String())
}
