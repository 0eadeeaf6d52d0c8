// Package app ties the matching board to its quiz, storage and listeners.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"matchline/internal/match"
	"matchline/internal/persist"
	"matchline/internal/quiz"
	"matchline/internal/render"
	"matchline/pkg/geometry"
)

// State holds one matching session: the quiz, the board controller and the
// persistence bridge. Board operations must run on the UI event loop; the
// mutex only guards listeners and the last status and results.
type State struct {
	mu sync.RWMutex

	Quiz  *quiz.Quiz
	Style render.Style

	reference  *match.Reference
	controller *match.Controller
	bridge     *persist.Bridge
	size       geometry.Size

	status  string
	results []match.Result

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventPairingsChanged EventType = iota // data: []match.Pairing
	EventLayoutChanged                    // data: geometry.Size
	EventSaved                            // data: int (pairings saved)
	EventLoaded                           // data: []match.Pairing
	EventSavedCleared                     // data: nil
	EventValidated                        // data: []match.Result
	EventStatus                           // data: string
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a session for q, saving through bridge.
func NewState(q *quiz.Quiz, bridge *persist.Bridge, style render.Style) (*State, error) {
	reg, err := match.NewRegistry(q.Items())
	if err != nil {
		return nil, fmt.Errorf("quiz %q: %w", q.Title, err)
	}
	ref, err := q.Reference()
	if err != nil {
		return nil, fmt.Errorf("quiz %q: %w", q.Title, err)
	}
	return &State{
		Quiz:       q,
		Style:      style,
		reference:  ref,
		controller: match.NewController(reg, nil),
		bridge:     bridge,
		listeners:  make(map[EventType][]EventListener),
	}, nil
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Controller returns the board controller.
func (s *State) Controller() *match.Controller {
	return s.controller
}

// Items returns the board items in declaration order.
func (s *State) Items() []*match.Item {
	return s.controller.Registry().Items()
}

// Pairings returns the committed pairings.
func (s *State) Pairings() []match.Pairing {
	return s.controller.Pairings()
}

// Size returns the surface size of the last Resize.
func (s *State) Size() geometry.Size {
	return s.size
}

// Status returns the last status message.
func (s *State) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Results returns the verdicts of the last check, if any.
func (s *State) Results() []match.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.results
}

func (s *State) setStatus(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	s.mu.Lock()
	s.status = msg
	s.mu.Unlock()
	s.Emit(EventStatus, msg)
}

// SetRenderer attaches the line renderer and redraws committed lines.
func (s *State) SetRenderer(r match.Renderer) {
	s.controller.SetRenderer(r)
}

// Resize lays the board out on a surface of the given size. Committed
// pairings survive and their lines follow the new anchors.
func (s *State) Resize(size geometry.Size) {
	s.size = size
	s.controller.Relayout(quiz.NewColumnLayout(s.Quiz, size))
	s.Emit(EventLayoutChanged, size)
}

// Press starts a gesture at p.
func (s *State) Press(p geometry.Point2D) bool {
	return s.controller.Press(p)
}

// Move updates the running gesture.
func (s *State) Move(p geometry.Point2D) {
	s.controller.Move(p)
}

// Release ends the running gesture, committing a pairing when a candidate
// is held.
func (s *State) Release() (match.Commit, bool) {
	commit, ok := s.controller.Release()
	if ok {
		s.clearResults()
		s.Emit(EventPairingsChanged, s.Pairings())
	}
	return commit, ok
}

// Cancel abandons the running gesture.
func (s *State) Cancel() {
	s.controller.Cancel()
}

// Connect runs a full gesture from one item's center to another's.
func (s *State) Connect(from, to string) (match.Commit, error) {
	reg := s.controller.Registry()
	a, b := reg.Item(from), reg.Item(to)
	if a == nil {
		return match.Commit{}, fmt.Errorf("%w %q", match.ErrUnknownItem, from)
	}
	if b == nil {
		return match.Commit{}, fmt.Errorf("%w %q", match.ErrUnknownItem, to)
	}
	if !s.Press(a.Bounds.Center()) {
		return match.Commit{}, fmt.Errorf("cannot start a line on %s", from)
	}
	s.Move(b.Bounds.Center())
	commit, ok := s.Release()
	if !ok {
		return match.Commit{}, fmt.Errorf("%s cannot be paired with %s", from, to)
	}
	return commit, nil
}

// Undo removes the most recent pairing.
func (s *State) Undo() error {
	p, err := s.controller.Undo()
	if errors.Is(err, match.ErrEmptyLedger) {
		s.setStatus("Nothing to undo")
		return err
	}
	if err != nil {
		return err
	}
	s.clearResults()
	s.setStatus("Removed %s", p)
	s.Emit(EventPairingsChanged, s.Pairings())
	return nil
}

// Reset removes every pairing.
func (s *State) Reset() {
	s.controller.Reset()
	s.clearResults()
	s.setStatus("Board cleared")
	s.Emit(EventPairingsChanged, s.Pairings())
}

// Save writes the pairings to storage.
func (s *State) Save() error {
	pairings := s.Pairings()
	if err := s.bridge.Save(pairings); err != nil {
		if errors.Is(err, persist.ErrNothingToSave) {
			s.setStatus("Nothing to save")
		}
		return err
	}
	s.setStatus("Saved %d pairings", len(pairings))
	s.Emit(EventSaved, len(pairings))
	return nil
}

// Load replaces the pairings with the saved ones and checks them. It
// reports false when nothing was saved. Saved pairings that name unknown
// items are skipped and logged.
func (s *State) Load() (bool, error) {
	pairings, ok, err := s.bridge.Load()
	if err != nil {
		return false, err
	}
	if !ok {
		s.setStatus("Nothing to load")
		return false, nil
	}
	if err := s.controller.Restore(pairings); err != nil {
		log.Printf("Persist: skipped saved pairings: %v", err)
	}
	s.Emit(EventLoaded, s.Pairings())
	s.Emit(EventPairingsChanged, s.Pairings())
	if _, err := s.Check(); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteSaved removes the saved pairings from storage.
func (s *State) DeleteSaved() error {
	if err := s.bridge.ClearSaved(); err != nil {
		return err
	}
	s.setStatus("Saved answers deleted")
	s.Emit(EventSavedCleared, nil)
	return nil
}

// Check validates the pairings and redraws them in the correct and
// incorrect colors.
func (s *State) Check() ([]match.Result, error) {
	results, err := s.controller.Check(s.reference, s.Style.Correct, s.Style.Incorrect)
	if err != nil {
		return nil, err
	}
	score := match.Score(results)
	log.Printf("Validate: %d of %d correct", score, len(results))

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()
	s.setStatus("%d of %d correct", score, s.reference.Len())
	s.Emit(EventValidated, results)
	return results, nil
}

func (s *State) clearResults() {
	s.mu.Lock()
	s.results = nil
	s.mu.Unlock()
}
