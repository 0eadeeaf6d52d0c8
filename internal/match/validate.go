package match

import (
	"fmt"
	"image/color"
)

// Reference is the answer key: the correct right id for every left id.
type Reference struct {
	answers map[string]string
	order   []string
}

// NewReference builds an answer key from [left, right] pairs.
func NewReference(pairs [][2]string) (*Reference, error) {
	ref := &Reference{answers: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		if _, dup := ref.answers[p[0]]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateReference, p[0])
		}
		ref.answers[p[0]] = p[1]
		ref.order = append(ref.order, p[0])
	}
	return ref, nil
}

// Expected returns the correct right id for a left id.
func (r *Reference) Expected(left string) (string, bool) {
	right, ok := r.answers[left]
	return right, ok
}

// Len returns the number of answers.
func (r *Reference) Len() int {
	return len(r.order)
}

// Pairs returns the answer key in declaration order.
func (r *Reference) Pairs() [][2]string {
	out := make([][2]string, len(r.order))
	for i, left := range r.order {
		out[i] = [2]string{left, r.answers[left]}
	}
	return out
}

// Result is the verdict for one committed pairing.
type Result struct {
	Pairing  Pairing
	Correct  bool
	Expected string // Right id the answer key asks for
}

// Validate classifies each pairing against the answer key. It fails on the
// first pairing whose left id the key does not know.
func Validate(pairings []Pairing, ref *Reference) ([]Result, error) {
	results := make([]Result, 0, len(pairings))
	for _, p := range pairings {
		want, ok := ref.Expected(p.Left)
		if !ok {
			return nil, fmt.Errorf("%w for %s", ErrMissingReference, p.Left)
		}
		results = append(results, Result{
			Pairing:  p,
			Correct:  p.Right == want,
			Expected: want,
		})
	}
	return results, nil
}

// Score returns how many results are correct.
func Score(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Correct {
			n++
		}
	}
	return n
}

// ColorFunc picks the stroke color of a committed pairing.
type ColorFunc func(Pairing) color.Color

// CorrectnessColors returns a ColorFunc painting correct pairings ok and
// incorrect ones bad. Pairings without a result get ok.
func CorrectnessColors(results []Result, ok, bad color.Color) ColorFunc {
	verdict := make(map[Pairing]bool, len(results))
	for _, r := range results {
		verdict[r.Pairing] = r.Correct
	}
	return func(p Pairing) color.Color {
		if correct, found := verdict[p]; found && !correct {
			return bad
		}
		return ok
	}
}
