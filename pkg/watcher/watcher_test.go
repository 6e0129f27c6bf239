package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mesh.off")
	require.NoError(t, os.WriteFile(file, []byte("OFF\n0 0 0\n"), 0644))

	w, err := New(20 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	changed := make(chan string, 4)
	require.NoError(t, w.Watch([]string{file}, func(path string) { changed <- path }))
	w.Start()

	require.NoError(t, os.WriteFile(file, []byte("OFF\n1 0 0\n0 0 0\n"), 0644))

	select {
	case path := <-changed:
		assert.Equal(t, file, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "mesh.off")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New(10 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	var calls atomic.Int32
	require.NoError(t, w.Watch([]string{file}, func(string) { calls.Add(1) }))
	w.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.off"), nil, 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatchDebounces(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cupe_uv.png")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	w, err := New(300 * time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	var calls atomic.Int32
	require.NoError(t, w.Watch([]string{file}, func(string) { calls.Add(1) }))
	w.Start()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte{byte(i)}, 0644))
	}

	require.Eventually(t, func() bool { return calls.Load() > 0 }, 5*time.Second, 20*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := New(time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch([]string{filepath.Join(t.TempDir(), "missing", "mesh.off")}, func(string) {})
	assert.Error(t, err)
}
