package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npradeep/joule/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz results per topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		registry, errs := loadTopics(cmd)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "skipping topic:", e)
		}

		repo := st.EventRepo()
		for _, tp := range registry.All() {
			qs, err := repo.QuizStats(cmd.Context(), tp.ID)
			if err != nil {
				return fmt.Errorf("quiz stats for %s: %w", tp.ID, err)
			}
			if qs.Attempts == 0 {
				fmt.Printf("%-18s not attempted\n", tp.ID)
				continue
			}
			status := "not passed"
			if qs.Passed {
				status = "passed"
			}
			fmt.Printf("%-18s best %d/10 over %d attempt(s), %s\n",
				tp.ID, qs.BestScore, qs.Attempts, status)
		}
		return nil
	},
}
