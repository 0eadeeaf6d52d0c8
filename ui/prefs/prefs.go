// Package prefs provides JSON-based application preferences. Prefs also
// serves as the default key-value store for saved answers.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	saveMu sync.Mutex // serialises file writes
	values map[string]interface{}
	path   string
}

// Load reads preferences from ~/.config/matchline/preferences.json.
// Returns empty Prefs if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFile(filepath.Join(configDir, "matchline", prefsFile))
}

// LoadFile reads preferences from path. Unreadable or malformed files
// give empty Prefs that will overwrite them on Save.
func LoadFile(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	_ = json.Unmarshal(data, &p.values)
	return p
}

// Path returns the backing file.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	// Snapshot under saveMu so the last write carries the latest values.
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if n, ok := p.values[key].(float64); ok {
		return n
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	s, _, _ := p.Get(key)
	return s
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Get returns a string preference and whether it is set.
func (p *Prefs) Get(key string) (string, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s, ok := p.values[key].(string)
	return s, ok, nil
}

// Set stores a string preference and writes the file.
func (p *Prefs) Set(key, value string) error {
	p.SetString(key, value)
	return p.Save()
}

// Remove deletes a preference and writes the file.
func (p *Prefs) Remove(key string) error {
	p.mu.Lock()
	delete(p.values, key)
	p.mu.Unlock()
	return p.Save()
}
