package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotReloaderSeesNewerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchline")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o755))

	h, err := WatchFile(path, 5*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, h.Newer())

	fired := make(chan struct{}, 1)
	h.OnNewBinary(func() { fired <- struct{}{} })

	later := h.Baseline().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	h.Run(ctx)

	select {
	case <-fired:
	default:
		t.Fatal("callback did not fire")
	}

	h.ResetBaseline()
	assert.False(t, h.Newer())
}

func TestHotReloaderStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchline")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o755))
	h, err := WatchFile(path, time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Run(ctx)
	assert.Equal(t, path, h.ExecPath())
}

func TestWatchFileMissing(t *testing.T) {
	_, err := WatchFile(filepath.Join(t.TempDir(), "nope"), time.Second)
	assert.Error(t, err)
}
