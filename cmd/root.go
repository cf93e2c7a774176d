package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nshant/revise/internal/progress"
	"github.com/nshant/revise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "revise",
	Short: "Spaced-repetition quiz scheduler",
	Long:  "Revise — terminal spaced-repetition trainer that schedules quiz questions with an SM-2 scheduler and tracks per-category progress.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REVISE_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "User whose progress to operate on")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weakspotsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REVISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openService opens the store and wires the progress service. The
// returned closer releases the database.
func openService(cmd *cobra.Command) (*progress.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	svc := progress.NewService(
		st.Performance(),
		st.Questions(),
		st.Categories(),
		st.Attempts(),
		newLogger(cmd),
	)
	return svc, func() { _ = st.Close() }, nil
}
