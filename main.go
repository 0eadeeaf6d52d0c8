// Package main provides the entry point for the matchline desktop app.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"matchline/internal/app"
	"matchline/internal/config"
	"matchline/internal/version"
	"matchline/ui/mainwindow"
	"matchline/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s", version.String())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	// A quiz path on the command line wins over MATCHLINE_QUIZ.
	if len(os.Args) > 1 {
		cfg.QuizPath = os.Args[1]
	}

	appPrefs := prefs.Load()
	state, closeStore, err := app.NewSession(cfg, appPrefs)
	if err != nil {
		log.Fatalf("Session: %v", err)
	}
	defer closeStore()

	fyneApp := fyneapp.NewWithID("io.matchline.desktop")
	fyneApp.Settings().SetTheme(&app.MatchTheme{})

	win := mainwindow.New(fyneApp, state, appPrefs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.HotReload {
		setupHotReload(ctx, win)
	}

	win.ShowAndRun()
	win.SavePreferences()
}

// setupHotReload offers a restart when the binary is rebuilt.
func setupHotReload(ctx context.Context, win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.Baseline().Format("15:04:05"))

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				win.SavePreferencesIfChanged()
			}
		}
	}()

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					go reloader.Run(ctx)
					return
				}
				log.Println("Hot reload: saving preferences before restart...")
				win.SavePreferences()
				log.Println("Hot reload: restarting...")
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})

	go reloader.Run(ctx)
}
