package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "SQUASHBOX"

// Config holds host settings. Simulation constants live in Tuning.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Level  string       `mapstructure:"level"`
	Debug  bool         `mapstructure:"debug"`
	Watch  bool         `mapstructure:"watch"`
	Paths  PathsConfig  `mapstructure:"paths"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

// PathsConfig names the directories checked for on-disk data overrides.
type PathsConfig struct {
	Prefabs string `mapstructure:"prefabs"`
	Levels  string `mapstructure:"levels"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "squashbox")
	v.SetDefault("window.tps", 144)
	v.SetDefault("level", "default")
	v.SetDefault("debug", false)
	v.SetDefault("watch", false)
	v.SetDefault("paths.prefabs", "prefabs")
	v.SetDefault("paths.levels", "levels")
}

// LoadConfig reads configPath (optional) over the defaults. SQUASHBOX_*
// environment variables override both, e.g. SQUASHBOX_WINDOW_TPS=60.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("config: window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
