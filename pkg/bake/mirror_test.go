package bake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationPath(t *testing.T) {
	src := filepath.Join("Dataset", "ModelNet40", "airplane", "train", "airplane_0001.off")

	for _, layers := range []string{"1", "3", "16"} {
		expected := filepath.Join("Dataset", "ModelNet40-path-"+layers, "airplane", "train", "airplane_0001.path")
		assert.Equal(t, expected, DestinationPath(src, DefaultDatasetName, layers))
	}
}

func TestDestinationPathAbsolute(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "ModelNet40", "chair", "test", "chair_0890.off")
	expected := filepath.Join(root, "ModelNet40-path-2", "chair", "test", "chair_0890.path")

	assert.Equal(t, expected, DestinationPath(src, DefaultDatasetName, "2"))
}

func TestDestinationPathWholeElementsOnly(t *testing.T) {
	src := filepath.Join("ModelNet40x", "offset.off", "ModelNet40", "a.off")
	expected := filepath.Join("ModelNet40x", "offset.off", "ModelNet40-path-3", "a.path")

	assert.Equal(t, expected, DestinationPath(src, DefaultDatasetName, "3"))
}

func TestDestinationPathCustomDataset(t *testing.T) {
	src := filepath.Join("data", "ModelNet10", "bed", "train", "bed_0001.off")
	expected := filepath.Join("data", "ModelNet10-path-5", "bed", "train", "bed_0001.path")

	assert.Equal(t, expected, DestinationPath(src, "ModelNet10", "5"))
}

func TestOutputRoot(t *testing.T) {
	assert.Equal(t,
		filepath.Join("Dataset", "ModelNet40-path-3"),
		OutputRoot("Dataset", DefaultDatasetName, "3"))
	assert.Equal(t,
		filepath.Join("Dataset", "ModelNet40-path-3"),
		OutputRoot(filepath.Join("Dataset", "ModelNet40"), DefaultDatasetName, "3"))
	assert.Equal(t,
		filepath.Join("Dataset", "ModelNet40-path-3", "airplane"),
		OutputRoot(filepath.Join("Dataset", "ModelNet40", "airplane"), DefaultDatasetName, "3"))
}

func TestKnownOutputRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Dataset", "ModelNet40", "bed"), 0755))

	dir, ok := KnownOutputRoot(filepath.Join(root, "Dataset"), DefaultDatasetName, "3")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "Dataset", "ModelNet40-path-3"), dir)

	dir, ok = KnownOutputRoot(filepath.Join(root, "Dataset", "ModelNet40", "bed"), DefaultDatasetName, "3")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "Dataset", "ModelNet40-path-3", "bed"), dir)

	// the dataset is two levels down
	_, ok = KnownOutputRoot(root, DefaultDatasetName, "3")
	assert.False(t, ok)
}

func TestIsSource(t *testing.T) {
	assert.True(t, IsSource("airplane_0001.off"))
	assert.True(t, IsSource(".off"))
	assert.False(t, IsSource("airplane_0001.path"))
	assert.False(t, IsSource("airplane_0001.off.bak"))
	assert.False(t, IsSource("airplane_0001.OFF"))
	assert.False(t, IsSource("metadata_modelnet40.csv"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.path")

	ok, err := Exists(file)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(file, nil, 0644))
	ok, err = Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(dir)
	require.NoError(t, err)
	assert.False(t, ok, "a directory is not a finished output")
}
