// Package replay drives a matching session from a scripted list of pointer
// and button steps, for headless testing and demos.
package replay

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"matchline/internal/app"
	"matchline/internal/match"
	"matchline/internal/persist"
	"matchline/internal/render"
	"matchline/pkg/geometry"

	"gopkg.in/yaml.v3"
)

// Actions understood in a script step.
const (
	ActionPress      = "press"
	ActionMove       = "move"
	ActionRelease    = "release"
	ActionCancel     = "cancel"
	ActionConnect    = "connect"
	ActionUndo       = "undo"
	ActionReset      = "reset"
	ActionSave       = "save"
	ActionLoad       = "load"
	ActionClearSaved = "clear-saved"
	ActionCheck      = "check"
	ActionExpect     = "expect"
)

// Step is one scripted action. Pointer actions use X and Y; connect uses
// From and To; expect compares the ledger with Pairs.
type Step struct {
	Action string      `yaml:"action"`
	X      float64     `yaml:"x,omitempty"`
	Y      float64     `yaml:"y,omitempty"`
	From   string      `yaml:"from,omitempty"`
	To     string      `yaml:"to,omitempty"`
	Pairs  [][2]string `yaml:"pairs,omitempty"`
}

// Script is a replay file. A zero size means the quiz's design size.
type Script struct {
	Width    float64 `yaml:"width,omitempty"`
	Height   float64 `yaml:"height,omitempty"`
	Steps    []Step  `yaml:"steps"`
	Snapshot string  `yaml:"snapshot,omitempty"`
}

// ErrExpectation is returned when an expect step does not match.
var ErrExpectation = errors.New("expectation failed")

// LoadScript reads a YAML replay file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML replay script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		if !known(st.Action) {
			return nil, fmt.Errorf("step %d: unknown action %q", i+1, st.Action)
		}
	}
	return &s, nil
}

func known(action string) bool {
	switch action {
	case ActionPress, ActionMove, ActionRelease, ActionCancel, ActionConnect,
		ActionUndo, ActionReset, ActionSave, ActionLoad, ActionClearSaved,
		ActionCheck, ActionExpect:
		return true
	}
	return false
}

// Runner executes scripts against a session, drawing lines on its own
// raster surfaces so the result can be snapshotted.
type Runner struct {
	state   *app.State
	out     io.Writer
	base    *render.RasterSurface
	overlay *render.RasterSurface
}

// NewRunner attaches raster surfaces to state and writes a log of every
// step to out.
func NewRunner(state *app.State, out io.Writer) *Runner {
	r := &Runner{
		state:   state,
		out:     out,
		base:    render.NewRasterSurface(1, 1),
		overlay: render.NewRasterSurface(1, 1),
	}
	state.SetRenderer(render.NewLayer(r.overlay, r.base, state.Style))
	return r
}

// Run lays the board out and executes every step. Recoverable step
// failures (nothing to undo, nothing saved) are reported and skipped;
// storage errors and failed expectations stop the run.
func (r *Runner) Run(s *Script) error {
	size := r.state.Quiz.Size()
	if s.Width > 0 && s.Height > 0 {
		size = geometry.NewSize(s.Width, s.Height)
	}
	r.base.Resize(int(size.Width), int(size.Height))
	r.overlay.Resize(int(size.Width), int(size.Height))
	r.state.Resize(size)

	for i, st := range s.Steps {
		if err := r.step(st); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}

	if s.Snapshot != "" {
		if err := r.WriteSnapshot(s.Snapshot); err != nil {
			return err
		}
		fmt.Fprintf(r.out, "snapshot written to %s\n", s.Snapshot)
	}
	return nil
}

func (r *Runner) step(st Step) error {
	p := geometry.NewPoint2D(st.X, st.Y)
	switch st.Action {
	case ActionPress:
		if !r.state.Press(p) {
			fmt.Fprintf(r.out, "press (%g, %g): no item\n", st.X, st.Y)
		}
	case ActionMove:
		r.state.Move(p)
	case ActionRelease:
		if c, ok := r.state.Release(); ok {
			r.printCommit(c)
		} else {
			fmt.Fprintln(r.out, "release: no pairing")
		}
	case ActionCancel:
		r.state.Cancel()
	case ActionConnect:
		c, err := r.state.Connect(st.From, st.To)
		if err != nil {
			fmt.Fprintf(r.out, "connect: %v\n", err)
			return nil
		}
		r.printCommit(c)
	case ActionUndo:
		if err := r.state.Undo(); err != nil && !errors.Is(err, match.ErrEmptyLedger) {
			return err
		}
		fmt.Fprintln(r.out, r.state.Status())
	case ActionReset:
		r.state.Reset()
		fmt.Fprintln(r.out, r.state.Status())
	case ActionSave:
		if err := r.state.Save(); err != nil && !errors.Is(err, persist.ErrNothingToSave) {
			return err
		}
		fmt.Fprintln(r.out, r.state.Status())
	case ActionLoad:
		ok, err := r.state.Load()
		if err != nil {
			return err
		}
		if ok {
			r.printResults(r.state.Results())
		} else {
			fmt.Fprintln(r.out, r.state.Status())
		}
	case ActionClearSaved:
		if err := r.state.DeleteSaved(); err != nil {
			return err
		}
		fmt.Fprintln(r.out, r.state.Status())
	case ActionCheck:
		results, err := r.state.Check()
		if err != nil {
			return err
		}
		r.printResults(results)
	case ActionExpect:
		got := r.state.Controller().List()
		if len(got) != len(st.Pairs) {
			return fmt.Errorf("%w: have %v, want %v", ErrExpectation, got, st.Pairs)
		}
		for i := range got {
			if got[i] != st.Pairs[i] {
				return fmt.Errorf("%w: have %v, want %v", ErrExpectation, got, st.Pairs)
			}
		}
	}
	return nil
}

func (r *Runner) printCommit(c match.Commit) {
	if len(c.Replaced) > 0 {
		fmt.Fprintf(r.out, "paired %s (replaced %v)\n", c.Pairing, c.Replaced)
		return
	}
	fmt.Fprintf(r.out, "paired %s\n", c.Pairing)
}

func (r *Runner) printResults(results []match.Result) {
	for _, res := range results {
		mark := "ok"
		if !res.Correct {
			mark = "wrong, expected " + res.Expected
		}
		fmt.Fprintf(r.out, "  %s: %s\n", res.Pairing, mark)
	}
	fmt.Fprintln(r.out, r.state.Status())
}

// Snapshot composes the current board.
func (r *Runner) Snapshot() *image.RGBA {
	return render.Snapshot(r.state.Items(), r.base.Image(), r.overlay.Image())
}

// WriteSnapshot encodes the board to path, as TIFF for .tif/.tiff and PNG
// otherwise.
func (r *Runner) WriteSnapshot(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := render.Encode(f, r.Snapshot(), render.FormatFromPath(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return f.Close()
}
