package mainwindow

import (
	"path/filepath"
	"testing"

	"matchline/internal/app"
	"matchline/internal/persist"
	"matchline/internal/quiz"
	"matchline/internal/render"
	"matchline/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWindow(t *testing.T) (*MainWindow, *app.State, *prefs.Prefs) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	p := prefs.LoadFile(filepath.Join(t.TempDir(), "preferences.json"))
	state, err := app.NewState(quiz.Default(), persist.NewBridge(p, ""), render.DefaultStyle())
	require.NoError(t, err)
	mw := New(a, state, p)
	t.Cleanup(mw.Close)
	return mw, state, p
}

func TestToolbarActions(t *testing.T) {
	mw, state, p := newWindow(t)
	assert.Equal(t, "Who created it?", mw.Title())

	mw.onSave()
	assert.Equal(t, "Nothing to save", mw.Status())

	state.Resize(state.Quiz.Size())
	_, err := state.Connect("L1", "R4")
	require.NoError(t, err)
	mw.onSave()
	assert.Equal(t, "Saved 1 pairings", mw.Status())
	assert.JSONEq(t, `[["L1","R4"]]`, p.String(persist.DefaultKey))

	mw.onReset()
	assert.Empty(t, state.Pairings())
	mw.onLoad()
	assert.Len(t, state.Pairings(), 1)
	assert.Equal(t, "1 of 4 correct", mw.Status())

	mw.onUndo()
	mw.onUndo()
	assert.Equal(t, "Nothing to undo", mw.Status())
}

func TestPreferencesRoundTrip(t *testing.T) {
	mw, _, p := newWindow(t)
	mw.Resize(fyne.NewSize(900, 480))
	mw.SavePreferences()

	reloaded := prefs.LoadFile(p.Path())
	assert.Equal(t, 0.7, reloaded.FloatWithFallback(prefKeySplit, 0))
	assert.Greater(t, reloaded.FloatWithFallback(prefKeyWidth, 0), 0.0)
}
