package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn <topic-id>",
	Short: "Jump straight into a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, errs := loadTopics(cmd)
		for _, e := range errs {
			fmt.Fprintln(cmd.ErrOrStderr(), "skipping topic:", e)
		}
		if _, ok := registry.Get(args[0]); !ok {
			return fmt.Errorf("unknown topic %q (run `joule topics` to list them)", args[0])
		}
		return runAppWithTopic(cmd, args[0])
	},
}
