// Package panels provides the side panels of the main window.
package panels

import (
	"fmt"

	"matchline/internal/app"
	"matchline/internal/match"
	"matchline/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ResultsPanel lists the committed pairings and, after a check, the verdict
// for each one and the score.
type ResultsPanel struct {
	state *app.State

	list    *widget.List
	score   *widget.Label
	rows    []string
	content fyne.CanvasObject
}

// NewResultsPanel creates the panel and subscribes it to session events.
func NewResultsPanel(state *app.State) *ResultsPanel {
	rp := &ResultsPanel{
		state: state,
		score: widget.NewLabel(""),
	}
	rp.list = widget.NewList(
		func() int { return len(rp.rows) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(rp.rows[id])
		},
	)

	legend := widget.NewRichTextFromMarkdown(fmt.Sprintf(
		"Lines: default `%s`, correct `%s`, wrong `%s`",
		colorutil.Hex(state.Style.Stroke), colorutil.Hex(state.Style.Correct), colorutil.Hex(state.Style.Incorrect)))

	rp.content = container.NewBorder(
		container.NewVBox(widget.NewLabelWithStyle(state.Quiz.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), rp.score),
		legend,
		nil,
		nil,
		rp.list,
	)

	state.On(app.EventPairingsChanged, func(interface{}) { rp.Update() })
	state.On(app.EventValidated, func(interface{}) { rp.Update() })
	rp.Update()
	return rp
}

// Container returns the panel's root object.
func (rp *ResultsPanel) Container() fyne.CanvasObject {
	return rp.content
}

// Rows returns the lines currently shown.
func (rp *ResultsPanel) Rows() []string {
	return rp.rows
}

// Update rebuilds the rows from the session.
func (rp *ResultsPanel) Update() {
	results := rp.state.Results()
	if results != nil {
		rp.rows = nil
		for _, r := range results {
			rp.rows = append(rp.rows, FormatResult(rp.state, r))
		}
		rp.score.SetText(fmt.Sprintf("Score: %d / %d", match.Score(results), len(rp.state.Quiz.Answers)))
	} else {
		pairings := rp.state.Pairings()
		rp.rows = nil
		for _, p := range pairings {
			rp.rows = append(rp.rows, fmt.Sprintf("%s → %s", rp.state.Quiz.Label(p.Left), rp.state.Quiz.Label(p.Right)))
		}
		rp.score.SetText(fmt.Sprintf("%d of %d paired", len(pairings), len(rp.state.Quiz.Left)))
	}
	rp.list.Refresh()
}

// FormatResult renders one verdict, naming the expected partner when the
// pairing is wrong.
func FormatResult(state *app.State, r match.Result) string {
	q := state.Quiz
	line := fmt.Sprintf("%s → %s", q.Label(r.Pairing.Left), q.Label(r.Pairing.Right))
	if r.Correct {
		return "✓ " + line
	}
	return fmt.Sprintf("✗ %s (expected %s)", line, q.Label(r.Expected))
}
