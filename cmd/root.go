package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npradeep/joule/internal/config"
	"github.com/npradeep/joule/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "joule",
	Short: "Interactive physics micro-lessons in the terminal",
	Long: "Joule — guided-discovery physics lessons on the command line.\n" +
		"Predict, play with a live simulation, and test yourself, one\n" +
		"ten-minute topic at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JOULE_DB env var)")
	rootCmd.PersistentFlags().Bool("no-sound", false, "Disable feedback chimes")
	rootCmd.PersistentFlags().String("topic-dir", "", "Extra directory of topic JSON files to load")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initConfig wires viper: config.toml in the XDG config dir, then
// JOULE_* environment variables on top.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath(config.DefaultConfigDir())

	viper.SetEnvPrefix("JOULE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; defaults cover everything.
	_ = viper.ReadInConfig()
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := config.Load().Database.Path; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
