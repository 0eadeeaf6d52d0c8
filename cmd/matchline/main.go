// Command matchline runs matching quizzes headlessly: replay scripted
// gestures, inspect and clear saved answers, and check them.
package main

import (
	"fmt"
	"os"

	"matchline/internal/app"
	"matchline/internal/config"
	"matchline/internal/replay"
	"matchline/internal/version"

	"github.com/spf13/cobra"
)

// options are the persistent flags; empty values keep the environment's.
type options struct {
	quiz  string
	store string
	db    string
	key   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "matchline",
		Short:        "Drag-to-match quizzes from the command line",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.quiz, "quiz", "", "quiz file (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&opts.store, "store", "", "answer store: prefs, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&opts.db, "db", "", "sqlite database path")
	rootCmd.PersistentFlags().StringVar(&opts.key, "key", "", "storage key for saved answers")

	rootCmd.AddCommand(replayCmd(opts))
	rootCmd.AddCommand(savedCmd(opts))
	rootCmd.AddCommand(clearSavedCmd(opts))
	rootCmd.AddCommand(checkCmd(opts))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// session builds a session from the environment with flags applied on top.
func (o *options) session() (*app.State, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if o.quiz != "" {
		cfg.QuizPath = o.quiz
	}
	if o.store != "" {
		cfg.Store = o.store
	}
	if o.db != "" {
		cfg.DBPath = o.db
	}
	if o.key != "" {
		cfg.StorageKey = o.key
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return app.NewSession(cfg, nil)
}

func replayCmd(opts *options) *cobra.Command {
	var snapshot string

	cmd := &cobra.Command{
		Use:   "replay [script.yaml]",
		Short: "Run a scripted sequence of gestures and buttons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := replay.LoadScript(args[0])
			if err != nil {
				return err
			}
			if snapshot != "" {
				script.Snapshot = snapshot
			}

			state, closeStore, err := opts.session()
			if err != nil {
				return err
			}
			defer closeStore()

			return replay.NewRunner(state, cmd.OutOrStdout()).Run(script)
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "write the final board to this .png or .tiff file")
	return cmd
}

func savedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "Print the saved answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, closeStore, err := opts.session()
			if err != nil {
				return err
			}
			defer closeStore()

			ok, err := state.Load()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved answers")
				return nil
			}
			for _, p := range state.Pairings() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s -> %s\n", p, state.Quiz.Label(p.Left), state.Quiz.Label(p.Right))
			}
			return nil
		},
	}
}

func clearSavedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-saved",
		Short: "Delete the saved answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, closeStore, err := opts.session()
			if err != nil {
				return err
			}
			defer closeStore()

			if err := state.DeleteSaved(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), state.Status())
			return nil
		},
	}
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the saved answers against the quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, closeStore, err := opts.session()
			if err != nil {
				return err
			}
			defer closeStore()

			ok, err := state.Load()
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no saved answers")
			}
			for _, r := range state.Results() {
				mark := "✓"
				if !r.Correct {
					mark = "✗"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", mark, state.Quiz.Label(r.Pairing.Left), state.Quiz.Label(r.Pairing.Right))
			}
			fmt.Fprintln(cmd.OutOrStdout(), state.Status())
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
