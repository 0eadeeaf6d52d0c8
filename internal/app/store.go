package app

import (
	"fmt"

	"matchline/internal/config"
	"matchline/internal/persist"
	"matchline/internal/persist/sqlitekv"
	"matchline/internal/quiz"
	"matchline/ui/prefs"
)

// OpenStore opens the key-value store selected by cfg.Store. The prefs store
// reuses p when given, so window settings and answers share one file
// writer. The returned close function is never nil.
func OpenStore(cfg config.Config, p *prefs.Prefs) (persist.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case config.StorePrefs:
		if p == nil {
			p = prefs.Load()
		}
		return p, noop, nil
	case config.StoreSQLite:
		s, err := sqlitekv.Open(cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.StoreMemory:
		return persist.NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// NewSession loads the configured quiz and opens the configured store.
func NewSession(cfg config.Config, p *prefs.Prefs) (*State, func() error, error) {
	q, err := quiz.LoadOrDefault(cfg.QuizPath)
	if err != nil {
		return nil, nil, err
	}
	style, err := cfg.Style()
	if err != nil {
		return nil, nil, err
	}
	store, closeStore, err := OpenStore(cfg, p)
	if err != nil {
		return nil, nil, err
	}
	state, err := NewState(q, persist.NewBridge(store, cfg.StorageKey), style)
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	return state, closeStore, nil
}
