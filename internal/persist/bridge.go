package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"matchline/internal/match"
)

// DefaultKey is the storage key the pairing list is saved under.
const DefaultKey = "ANSWERS"

var (
	// ErrNothingToSave is returned by Save when there are no pairings.
	ErrNothingToSave = errors.New("nothing to save")
	// ErrNothingToLoad marks an absent key for callers that want an error.
	ErrNothingToLoad = errors.New("nothing to load")
)

// Bridge reads and writes the pairing list as a JSON array of
// [left, right] id pairs under a single key.
type Bridge struct {
	store Store
	key   string
}

// NewBridge creates a bridge over store. An empty key means DefaultKey.
func NewBridge(store Store, key string) *Bridge {
	if key == "" {
		key = DefaultKey
	}
	return &Bridge{store: store, key: key}
}

// Key returns the storage key.
func (b *Bridge) Key() string {
	return b.key
}

// Save overwrites the saved list with pairings.
func (b *Bridge) Save(pairings []match.Pairing) error {
	if len(pairings) == 0 {
		log.Println("Persist: nothing to save")
		return ErrNothingToSave
	}
	data, err := json.Marshal(pairings)
	if err != nil {
		return fmt.Errorf("encode pairings: %w", err)
	}
	if err := b.store.Set(b.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", b.key, err)
	}
	log.Printf("Persist: saved %d pairings under %s", len(pairings), b.key)
	return nil
}

// Load returns the saved list. ok is false when nothing has been saved.
func (b *Bridge) Load() (pairings []match.Pairing, ok bool, err error) {
	raw, found, err := b.store.Get(b.key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", b.key, err)
	}
	if !found {
		log.Println("Persist: nothing to load")
		return nil, false, nil
	}
	if err := json.Unmarshal([]byte(raw), &pairings); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", b.key, err)
	}
	// A stored null decodes without error but holds no list.
	if pairings == nil {
		log.Printf("Persist: %s holds no list, nothing to load", b.key)
		return nil, false, nil
	}
	return pairings, true, nil
}

// MustLoad is Load with an absent key reported as ErrNothingToLoad.
func (b *Bridge) MustLoad() ([]match.Pairing, error) {
	pairings, ok, err := b.Load()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNothingToLoad
	}
	return pairings, nil
}

// ClearSaved removes the saved list. Removing an absent key is not an error.
func (b *Bridge) ClearSaved() error {
	if err := b.store.Remove(b.key); err != nil {
		return fmt.Errorf("remove %s: %w", b.key, err)
	}
	log.Printf("Persist: removed %s", b.key)
	return nil
}
