// Package mainwindow provides the main application window.
package mainwindow

import (
	"errors"
	"fmt"

	"matchline/internal/app"
	"matchline/internal/match"
	"matchline/internal/persist"
	"matchline/internal/render"
	"matchline/internal/version"
	"matchline/ui/canvas"
	"matchline/ui/panels"
	"matchline/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyWidth  = "window.width"
	prefKeyHeight = "window.height"
	prefKeySplit  = "window.split"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	board     *canvas.BoardCanvas
	results   *panels.ResultsPanel
	split     *container.Split
	statusBar *widget.Label

	savedSize  fyne.Size
	savedSplit float64
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(state.Quiz.Title)

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreGeometry()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.board = canvas.NewBoardCanvas(mw.state)
	mw.results = panels.NewResultsPanel(mw.state)
	mw.statusBar = widget.NewLabel("Drag from a left item to a right item")

	boardArea := container.NewBorder(
		mw.createToolbar(), // top
		nil,                // bottom
		nil,                // left
		nil,                // right
		mw.board,           // center
	)

	mw.split = container.NewHSplit(boardArea, mw.results.Container())
	mw.split.SetOffset(0.7)

	content := container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.split,                          // center
	)
	mw.SetContent(content)

	mw.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			mw.board.Cancel()
		}
	})
}

// createToolbar creates the answer buttons.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewButton("Reset", mw.onReset),
		widget.NewButton("Back", mw.onUndo),
		widget.NewSeparator(),
		widget.NewButton("Save", mw.onSave),
		widget.NewButton("Delete", mw.onDeleteSaved),
		widget.NewButton("Read", mw.onLoad),
		widget.NewSeparator(),
		widget.NewButton("Check", mw.onCheck),
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Snapshot...", mw.onExportSnapshot),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
		fyne.NewMenuItem("Reset", mw.onReset),
	)

	answersMenu := fyne.NewMenu("Answers",
		fyne.NewMenuItem("Save", mw.onSave),
		fyne.NewMenuItem("Read Saved", mw.onLoad),
		fyne.NewMenuItem("Delete Saved", mw.onDeleteSaved),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Check", mw.onCheck),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, answersMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventStatus, func(data interface{}) {
		if msg, ok := data.(string); ok {
			mw.updateStatus(msg)
		}
	})

	mw.state.On(app.EventPairingsChanged, func(interface{}) {
		mw.board.Refresh()
	})

	mw.board.OnCommit(func(c match.Commit) {
		if len(c.Replaced) > 0 {
			mw.updateStatus(fmt.Sprintf("Paired %s, replacing %s", c.Pairing, c.Replaced[0]))
			return
		}
		mw.updateStatus("Paired " + c.Pairing.String())
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// Status returns the status bar text.
func (mw *MainWindow) Status() string {
	return mw.statusBar.Text
}

func (mw *MainWindow) restoreGeometry() {
	w := mw.prefs.FloatWithFallback(prefKeyWidth, 720)
	h := mw.prefs.FloatWithFallback(prefKeyHeight, 400)
	mw.savedSize = fyne.NewSize(float32(w), float32(h))
	mw.Resize(mw.savedSize)

	mw.savedSplit = mw.prefs.FloatWithFallback(prefKeySplit, 0.7)
	mw.split.SetOffset(mw.savedSplit)
}

// SavePreferencesIfChanged writes window geometry when it changed since the
// last save.
func (mw *MainWindow) SavePreferencesIfChanged() {
	if mw.Canvas().Size() == mw.savedSize && mw.split.Offset == mw.savedSplit {
		return
	}
	mw.SavePreferences()
}

// SavePreferences writes window geometry to the preferences file.
func (mw *MainWindow) SavePreferences() {
	mw.savedSize = mw.Canvas().Size()
	mw.savedSplit = mw.split.Offset
	mw.prefs.SetFloat(prefKeyWidth, float64(mw.savedSize.Width))
	mw.prefs.SetFloat(prefKeyHeight, float64(mw.savedSize.Height))
	mw.prefs.SetFloat(prefKeySplit, mw.savedSplit)
	if err := mw.prefs.Save(); err != nil {
		fyne.LogError("Failed to save preferences", err)
	}
}

func (mw *MainWindow) onReset() {
	mw.state.Reset()
}

func (mw *MainWindow) onUndo() {
	// An empty ledger is reported through the status bar.
	_ = mw.state.Undo()
}

func (mw *MainWindow) onSave() {
	if err := mw.state.Save(); err != nil && !errors.Is(err, persist.ErrNothingToSave) {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onLoad() {
	if _, err := mw.state.Load(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
	mw.board.Refresh()
}

func (mw *MainWindow) onDeleteSaved() {
	dialog.ShowConfirm("Delete Saved Answers", "Remove the saved answers?", func(ok bool) {
		if !ok {
			return
		}
		if err := mw.state.DeleteSaved(); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
}

func (mw *MainWindow) onCheck() {
	if _, err := mw.state.Check(); err != nil {
		dialog.ShowError(err, mw.Window)
	}
}

func (mw *MainWindow) onExportSnapshot() {
	save := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if w == nil {
			return
		}
		defer w.Close()
		if err := render.Encode(w, mw.board.Snapshot(), render.FormatFromPath(w.URI().Name())); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Snapshot written to " + w.URI().Name())
	}, mw.Window)
	save.SetFileName("board.png")
	save.Show()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About matchline",
		fmt.Sprintf("matchline v%s\n\n"+
			"Drag lines between the two lists to match them up.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
