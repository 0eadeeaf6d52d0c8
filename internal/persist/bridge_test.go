package persist

import (
	"errors"
	"testing"

	"matchline/internal/match"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesJSONArray(t *testing.T) {
	store := NewMemoryStore()
	b := NewBridge(store, "")

	require.NoError(t, b.Save([]match.Pairing{{Left: "L1", Right: "R4"}, {Left: "L2", Right: "R3"}}))
	raw, ok, err := store.Get(DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[["L1","R4"],["L2","R3"]]`, raw)
}

func TestSaveEmpty(t *testing.T) {
	store := NewMemoryStore()
	b := NewBridge(store, "")
	assert.ErrorIs(t, b.Save(nil), ErrNothingToSave)
	_, ok, _ := store.Get(DefaultKey)
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := NewBridge(NewMemoryStore(), "quiz-1")
	want := []match.Pairing{{Left: "L3", Right: "R2"}, {Left: "L1", Right: "R4"}}
	require.NoError(t, b.Save(want))

	got, ok, err := b.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, "quiz-1", b.Key())
}

func TestLoadAbsent(t *testing.T) {
	b := NewBridge(NewMemoryStore(), "")
	got, ok, err := b.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	_, err = b.MustLoad()
	assert.ErrorIs(t, err, ErrNothingToLoad)
}

func TestLoadNullIsNothing(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(DefaultKey, "null"))
	b := NewBridge(store, "")

	got, ok, err := b.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	_, err = b.MustLoad()
	assert.ErrorIs(t, err, ErrNothingToLoad)
}

func TestLoadMalformed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(DefaultKey, `{"L1":"R4"}`))
	_, _, err := NewBridge(store, "").Load()
	assert.Error(t, err)
}

func TestClearSaved(t *testing.T) {
	b := NewBridge(NewMemoryStore(), "")
	require.NoError(t, b.Save([]match.Pairing{{Left: "L1", Right: "R1"}}))
	require.NoError(t, b.ClearSaved())
	require.NoError(t, b.ClearSaved())

	_, ok, err := b.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

type failingStore struct{}

var errDisk = errors.New("disk full")

func (failingStore) Get(string) (string, bool, error) { return "", false, errDisk }
func (failingStore) Set(string, string) error         { return errDisk }
func (failingStore) Remove(string) error              { return errDisk }

func TestStoreErrorsAreWrapped(t *testing.T) {
	b := NewBridge(failingStore{}, "")
	assert.ErrorIs(t, b.Save([]match.Pairing{{Left: "L1", Right: "R1"}}), errDisk)
	_, _, err := b.Load()
	assert.ErrorIs(t, err, errDisk)
	assert.ErrorIs(t, b.ClearSaved(), errDisk)
}
