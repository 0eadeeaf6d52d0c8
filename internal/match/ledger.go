package match

import (
	"encoding/json"
	"fmt"
)

// Pairing connects one left item to one right item.
type Pairing struct {
	Left  string
	Right string
}

func (p Pairing) String() string {
	return p.Left + "-" + p.Right
}

// MarshalJSON encodes the pairing as a two element array.
func (p Pairing) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{p.Left, p.Right})
}

// UnmarshalJSON decodes a two element array.
func (p *Pairing) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("pairing needs 2 ids, got %d", len(pair))
	}
	p.Left, p.Right = pair[0], pair[1]
	return nil
}

// Ledger is the ordered list of committed pairings. Commit order is kept so
// the most recent pairing can be undone. No id appears in two pairings.
type Ledger struct {
	pairs []Pairing
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Commit appends p after removing every pairing that already uses p.Left or
// p.Right. The removed pairings are returned so their members can be freed.
func (l *Ledger) Commit(p Pairing) []Pairing {
	var removed []Pairing
	kept := l.pairs[:0]
	for _, q := range l.pairs {
		if q.Left == p.Left || q.Right == p.Right {
			removed = append(removed, q)
			continue
		}
		kept = append(kept, q)
	}
	l.pairs = append(kept, p)
	return removed
}

// UndoLast removes and returns the most recently committed pairing.
func (l *Ledger) UndoLast() (Pairing, error) {
	if len(l.pairs) == 0 {
		return Pairing{}, ErrEmptyLedger
	}
	last := l.pairs[len(l.pairs)-1]
	l.pairs = l.pairs[:len(l.pairs)-1]
	return last, nil
}

// Clear removes every pairing.
func (l *Ledger) Clear() {
	l.pairs = nil
}

// Len returns the number of committed pairings.
func (l *Ledger) Len() int {
	return len(l.pairs)
}

// Pairings returns a copy of the pairings in commit order.
func (l *Ledger) Pairings() []Pairing {
	out := make([]Pairing, len(l.pairs))
	copy(out, l.pairs)
	return out
}

// List returns the pairings as [left, right] id arrays in commit order.
func (l *Ledger) List() [][2]string {
	out := make([][2]string, len(l.pairs))
	for i, p := range l.pairs {
		out[i] = [2]string{p.Left, p.Right}
	}
	return out
}

// Partner returns the id paired with id, on either side.
func (l *Ledger) Partner(id string) (string, bool) {
	for _, p := range l.pairs {
		switch id {
		case p.Left:
			return p.Right, true
		case p.Right:
			return p.Left, true
		}
	}
	return "", false
}
