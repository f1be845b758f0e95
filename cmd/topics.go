package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/npradeep/joule/internal/topic"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List available topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, errs := loadTopics(cmd)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "skipping topic:", e)
		}
		for _, tp := range registry.All() {
			fmt.Printf("%-18s %s — %s\n", tp.ID, tp.Title, tp.Tagline)
		}
		return nil
	},
}

var topicsValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate topic JSON files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			tp, err := topic.LoadFile(path)
			if err != nil {
				failed = true
				fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", path, err)
				continue
			}
			fmt.Printf("OK   %s (%s)\n", path, tp.ID)
		}
		if failed {
			return fmt.Errorf("one or more topic files are invalid")
		}
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsValidateCmd)
}
