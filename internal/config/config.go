package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "JASKCALC"
	envConfig  = "JASKCALC_CONFIG"
	maxTape    = 50
	appDirName = "jaskcalc"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Log  LogConfig
	Keys map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale   string
	TapeSize int `mapstructure:"tape_size"`
	Mouse    bool
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		UI:  UIConfig{Locale: "en-US", TapeSize: 5, Mouse: true},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns the config file location: $JASKCALC_CONFIG or
// ~/.config/jaskcalc/config.toml.
func Path() string {
	if p := os.Getenv(envConfig); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", appDirName, "config.toml")
}

// Load reads configuration from path (or the default location when path is
// empty) and the environment. Env var overrides use prefix JASKCALC_.
func Load(path string) (Config, error) {
	d := Default()
	v := viper.New()

	v.SetDefault("ui.locale", d.UI.Locale)
	v.SetDefault("ui.tape_size", d.UI.TapeSize)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetConfigType("toml")
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

func normalize(c Config) Config {
	c.UI.Locale = strings.TrimSpace(c.UI.Locale)
	if c.UI.Locale == "" {
		c.UI.Locale = Default().UI.Locale
	}
	if c.UI.TapeSize < 0 {
		c.UI.TapeSize = 0
	}
	if c.UI.TapeSize > maxTape {
		c.UI.TapeSize = maxTape
	}
	c.Log.File = strings.TrimSpace(c.Log.File)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	return c
}

// Save writes cfg to path, creating the config directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.tape_size", cfg.UI.TapeSize)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
