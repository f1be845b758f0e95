package config

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg := Load()

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Sound.Enabled", cfg.Sound.Enabled, true},
		{"Database.Path", cfg.Database.Path, ""},
		{"Update.Check", cfg.Update.Check, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		field  func(Config) any
		want   any
	}{
		{
			name:   "sound.enabled",
			envKey: "JOULE_SOUND_ENABLED",
			envVal: "false",
			field:  func(c Config) any { return c.Sound.Enabled },
			want:   false,
		},
		{
			name:   "database.path",
			envKey: "JOULE_DATABASE_PATH",
			envVal: "/tmp/joule-test.db",
			field:  func(c Config) any { return c.Database.Path },
			want:   "/tmp/joule-test.db",
		},
		{
			name:   "update.check",
			envKey: "JOULE_UPDATE_CHECK",
			envVal: "false",
			field:  func(c Config) any { return c.Update.Check },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper()
			viper.SetEnvPrefix("JOULE")
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			viper.AutomaticEnv()

			os.Setenv(tt.envKey, tt.envVal)
			defer os.Unsetenv(tt.envKey)

			cfg := Load()
			got := tt.field(cfg)
			if got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.name, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultConfigDir(); got != "/tmp/xdg/joule" {
		t.Errorf("DefaultConfigDir() = %q", got)
	}
}
