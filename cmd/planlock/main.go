// planlock is a CLI for the guided planning workflow: create a task, answer
// its clarifying-question battery, and lock the plan into a spec document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planlock/planlock/internal/catalog"
	"github.com/planlock/planlock/internal/planning"
	"github.com/planlock/planlock/internal/storage"
	"github.com/planlock/planlock/internal/storage/sqlite"
)

var (
	dbPath      string
	catalogPath string

	store   storage.Storage
	service *planning.Service
)

var rootCmd = &cobra.Command{
	Use:   "planlock",
	Short: "Guided planning with lockable specs",
	Long: `planlock attaches a guided planning workflow to a task: it generates a
fixed battery of clarifying questions, collects answers incrementally, and
once every question is answered lets you lock the plan into an immutable
spec document.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		store, err = sqlite.New(dbPath)
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		cat := catalog.Default()
		if catalogPath != "" {
			cat, err = catalog.Load(catalogPath)
			if err != nil {
				return err
			}
		}

		service = planning.NewService(store, cat, nil)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if store != nil {
			store.Close()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", storage.DefaultConfig().Path, "path to the SQLite database")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to an alternate question catalog (YAML)")

	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(lockCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
