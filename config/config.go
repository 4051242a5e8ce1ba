// Package config loads viewer settings from a YAML file, MIDIMSG_*
// environment variables and command-line flags through viper.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete viewer configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Input   InputConfig   `mapstructure:"input"`
	Table   TableConfig   `mapstructure:"table"`
	UI      UIConfig      `mapstructure:"ui"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// File is the debug log path. Empty disables logging.
	File string `mapstructure:"file"`
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
}

// InputConfig controls how message tables are read
type InputConfig struct {
	// Charset is a WHATWG encoding label, e.g. "utf-8", "windows-1252", "shift_jis"
	Charset string `mapstructure:"charset"`
	// Delimiter is the CSV field separator
	Delimiter string `mapstructure:"delimiter"`
}

// TableConfig controls the message table
type TableConfig struct {
	// Sortable lists the column names that take part in the sort cycle
	Sortable []string `mapstructure:"sortable"`
	// Collation is the BCP 47 language used to order text columns
	Collation string `mapstructure:"collation"`
	// Channels is the number of channel checkboxes in the filter panel
	Channels int `mapstructure:"channels"`
}

// UIConfig controls the terminal UI behavior
type UIConfig struct {
	// NoticeMs is how long status notices stay in the footer
	NoticeMs int `mapstructure:"notice_ms"`
	// AltScreen runs the viewer in the terminal's alternate screen
	AltScreen bool `mapstructure:"alt_screen"`
}

// NoticeDuration returns NoticeMs as a duration.
func (c UIConfig) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeMs) * time.Millisecond
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			File:  "",
			Level: "info",
		},
		Input: InputConfig{
			Charset:   "utf-8",
			Delimiter: ",",
		},
		Table: TableConfig{
			Sortable:  []string{"Tick", "Track", "Channel", "Status", "Length", "Type", "Summary"},
			Collation: "en",
			Channels:  16,
		},
		UI: UIConfig{
			NoticeMs:  2000,
			AltScreen: true,
		},
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetDefault("input.charset", defaults.Input.Charset)
	v.SetDefault("input.delimiter", defaults.Input.Delimiter)

	v.SetDefault("table.sortable", defaults.Table.Sortable)
	v.SetDefault("table.collation", defaults.Table.Collation)
	v.SetDefault("table.channels", defaults.Table.Channels)

	v.SetDefault("ui.notice_ms", defaults.UI.NoticeMs)
	v.SetDefault("ui.alt_screen", defaults.UI.AltScreen)
}

// New returns a viper instance with defaults, env binding and config search
// paths set up. cfgFile overrides the search.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("MIDIMSG")
	// MIDIMSG_INPUT_CHARSET for input.charset
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file into v if one exists. A missing file found by
// searching is not an error; a missing explicit file is.
func Read(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "midimsg")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".midimsg"
	}
	return filepath.Join(home, ".config", "midimsg")
}
