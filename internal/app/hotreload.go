package app

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

// HotReloader polls the running binary and reports once when a newer build
// replaces it.
type HotReloader struct {
	execPath      string
	baseline      time.Time
	checkInterval time.Duration
	onNewBinary   func()
}

// NewHotReloader watches the current executable. It returns nil if the
// executable cannot be located.
func NewHotReloader(checkInterval time.Duration) *HotReloader {
	execPath, err := os.Executable()
	if err != nil {
		return nil
	}
	// go build replaces the file behind a symlink
	if real, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = real
	}
	h, err := WatchFile(execPath, checkInterval)
	if err != nil {
		return nil
	}
	return h
}

// WatchFile watches an arbitrary file.
func WatchFile(path string, checkInterval time.Duration) (*HotReloader, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &HotReloader{
		execPath:      path,
		baseline:      info.ModTime(),
		checkInterval: checkInterval,
	}, nil
}

// OnNewBinary sets the callback run when a newer file is seen. It runs on
// the watcher goroutine.
func (h *HotReloader) OnNewBinary(callback func()) {
	h.onNewBinary = callback
}

// Run polls until ctx is done or a newer file is seen, whichever comes
// first. The callback fires at most once per Run.
func (h *HotReloader) Run(ctx context.Context) {
	ticker := time.NewTicker(h.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if h.Newer() {
				if h.onNewBinary != nil {
					h.onNewBinary()
				}
				return
			}
		}
	}
}

// Newer reports whether the file changed since the baseline.
func (h *HotReloader) Newer() bool {
	info, err := os.Stat(h.execPath)
	if err != nil {
		return false
	}
	return info.ModTime().After(h.baseline)
}

// ExecPath returns the watched path.
func (h *HotReloader) ExecPath() string {
	return h.execPath
}

// Baseline returns the modification time changes are compared against.
func (h *HotReloader) Baseline() time.Time {
	return h.baseline
}

// ResetBaseline accepts the current file as seen, so a declined restart is
// not offered again for the same build.
func (h *HotReloader) ResetBaseline() {
	if info, err := os.Stat(h.execPath); err == nil {
		h.baseline = info.ModTime()
	}
}

// Restart replaces the process with the watched binary, keeping arguments
// and environment. It does not return on success.
func (h *HotReloader) Restart() error {
	return syscall.Exec(h.execPath, os.Args, os.Environ())
}
