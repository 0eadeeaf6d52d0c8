package match

import "errors"

var (
	// ErrEmptyLedger is returned when undoing with no committed pairings.
	ErrEmptyLedger = errors.New("ledger is empty")

	// ErrMissingReference means a pairing's left id has no reference answer.
	// The item set and the answer key disagree, which is a data bug.
	ErrMissingReference = errors.New("no reference answer")

	// ErrUnknownItem is returned for ids that are not on the board.
	ErrUnknownItem = errors.New("unknown item")

	// ErrDuplicateReference is returned when an answer key lists a left id twice.
	ErrDuplicateReference = errors.New("duplicate reference answer")
)
