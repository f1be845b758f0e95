package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/npradeep/joule/internal/app"
	"github.com/npradeep/joule/internal/audio"
	"github.com/npradeep/joule/internal/config"
	"github.com/npradeep/joule/internal/selfupdate"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppWithTopic(cmd, "")
}

// runAppWithTopic launches the TUI, opening startTopic's lesson first
// when it is non-empty.
func runAppWithTopic(cmd *cobra.Command, startTopic string) error {
	cfg := config.Load()

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

	sound := audio.NewPlayer()
	noSound, _ := cmd.Flags().GetBool("no-sound")
	if cfg.Sound.Enabled && !noSound {
		if err := sound.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "Sound unavailable:", err)
		}
		defer sound.Close()
	} else {
		sound.SetEnabled(false)
	}

	opts := app.Options{
		Registry:   registry,
		EventRepo:  st.EventRepo(),
		SnapRepo:   st.SnapshotRepo(),
		Sound:      sound,
		StartTopic: startTopic,
	}

	if cfg.Update.Check {
		opts.LatestVersion = checkForUpdate(cmd.Context())
	}

	return app.Run(opts)
}

// loadTopics builds the registry: built-in topics plus any *.json files
// in the config dir's topics/ folder and in the --topic-dir directory.
func loadTopics(cmd *cobra.Command) (*topic.Registry, []error) {
	registry := topic.NewRegistry()
	errs := topic.LoadDir(registry, filepath.Join(config.DefaultConfigDir(), "topics"))
	if dir, _ := cmd.Flags().GetString("topic-dir"); dir != "" {
		errs = append(errs, topic.LoadDir(registry, dir)...)
	}
	return registry, errs
}

// checkForUpdate asks GitHub for the latest release with a short
// deadline so a slow network never delays startup noticeably. Returns
// the newer version, or "" when current, unreachable, or a dev build.
func checkForUpdate(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, 1500*time.Millisecond)
	defer cancel()

	res, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !res.UpdateAvailable {
		return ""
	}
	return res.LatestVersion
}
