package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"matchline/internal/match"
	"matchline/internal/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ persist.Store = (*Prefs)(nil)

func TestStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchline", prefsFile)
	p := LoadFile(path)

	_, ok, err := p.Get("ANSWERS")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Set("ANSWERS", `[["L1","R4"]]`))
	v, ok, err := LoadFile(path).Get("ANSWERS")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[["L1","R4"]]`, v)

	require.NoError(t, p.Remove("ANSWERS"))
	_, ok, _ = LoadFile(path).Get("ANSWERS")
	assert.False(t, ok)
}

func TestBridgeOverPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	b := persist.NewBridge(LoadFile(path), "")
	want := []match.Pairing{{Left: "L2", Right: "R3"}}
	require.NoError(t, b.Save(want))

	got, ok, err := persist.NewBridge(LoadFile(path), "").Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestFloatsAndNonStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p := LoadFile(path)
	assert.Equal(t, 640.0, p.FloatWithFallback("window.width", 640))

	p.SetFloat("window.width", 900)
	require.NoError(t, p.Save())
	q := LoadFile(path)
	assert.Equal(t, 900.0, q.FloatWithFallback("window.width", 640))

	_, ok, _ := q.Get("window.width")
	assert.False(t, ok, "floats are not string values")
}

func TestMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	p := LoadFile(path)
	assert.Equal(t, "", p.String("ANSWERS"))
	assert.Equal(t, path, p.Path())
}

func TestConcurrentSavesKeepFileWhole(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p := LoadFile(path)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, p.Set(fmt.Sprintf("key.%d", i), "v"))
		}(i)
		go func(i int) {
			defer wg.Done()
			p.SetFloat("window.width", float64(i))
			assert.NoError(t, p.Save())
		}(i)
	}
	wg.Wait()

	q := LoadFile(path)
	for i := 0; i < 16; i++ {
		assert.Equal(t, "v", q.String(fmt.Sprintf("key.%d", i)))
	}
}
