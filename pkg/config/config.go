package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/neosapience/typecast-mcp/pkg/configutil"
	"github.com/neosapience/typecast-mcp/pkg/errorsx"
)

// Config is the process configuration, passed explicitly into component
// constructors at startup. Nothing reads the environment deep inside a
// call path.
type Config struct {
	APIHost   string        `mapstructure:"api_host"`
	APIKey    string        `mapstructure:"api_key"`
	OutputDir string        `mapstructure:"output_dir"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Player    PlayerConfig  `mapstructure:"player"`
	Privacy   PrivacyConfig `mapstructure:"privacy"`
}

// PlayerConfig selects the playback implementation and its settings.
type PlayerConfig struct {
	Provider string         `mapstructure:"provider"`
	Settings map[string]any `mapstructure:"settings"`
}

type PrivacyConfig struct {
	RedactPII bool `mapstructure:"redact_pii"`
}

// Load reads configuration from an optional file plus the TYPECAST_*
// environment variables. Env vars win over file values; `${VAR}` strings
// inside the player settings map are expanded.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("api_host", "https://api.typecast.ai")
	v.SetDefault("api_key", "")
	v.SetDefault("output_dir", defaultOutputDir())
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("player.provider", "auto")
	v.SetDefault("privacy.redact_pii", false)

	v.BindEnv("api_host", "TYPECAST_API_HOST")
	v.BindEnv("api_key", "TYPECAST_API_KEY")
	v.BindEnv("output_dir", "TYPECAST_OUTPUT_DIR")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorsx.Wrap(fmt.Errorf("read config: %w", err), errorsx.ReasonConfig)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errorsx.Wrap(fmt.Errorf("unmarshal config: %w", err), errorsx.ReasonConfig)
	}

	cfg.APIHost = os.ExpandEnv(cfg.APIHost)
	cfg.APIKey = os.ExpandEnv(cfg.APIKey)
	cfg.OutputDir = os.ExpandEnv(cfg.OutputDir)
	cfg.Player.Settings = expandSettings(cfg.Player.Settings)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields no component can default for us.
func (c *Config) Validate() error {
	if err := configutil.RequireString(c.APIKey, "api_key (TYPECAST_API_KEY)"); err != nil {
		return errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	if err := configutil.RequireString(c.OutputDir, "output_dir"); err != nil {
		return errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	return nil
}

func defaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "typecast_output"
	}
	return filepath.Join(home, "Downloads", "typecast_output")
}

func expandSettings(settings map[string]any) map[string]any {
	if settings == nil {
		return nil
	}
	for k, val := range settings {
		settings[k] = expandAny(val)
	}
	return settings
}

func expandAny(v any) any {
	switch val := v.(type) {
	case string:
		return os.ExpandEnv(val)
	case []any:
		for i := range val {
			val[i] = expandAny(val[i])
		}
		return val
	case map[string]any:
		for k, item := range val {
			val[k] = expandAny(item)
		}
		return val
	default:
		return v
	}
}
