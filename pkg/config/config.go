package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/filescope/filescope/pkg/fsutils"
	"github.com/spf13/viper"
)

// Drive is a named filesystem root the user can switch to without
// retyping its address. The URL scheme selects the backend.
type Drive struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
	// ExplicitTLS/ImplicitTLS only apply to ftp URLs.
	ExplicitTLS bool `mapstructure:"explicit_tls"`
	ImplicitTLS bool `mapstructure:"implicit_tls"`
}

// Command is a stored command template bound to a digit key (1-9) by
// its position in the list. "{path}" expands to the selected entry.
type Command struct {
	Name     string `mapstructure:"name"`
	Template string `mapstructure:"template"`
}

type Config struct {
	Drives   []Drive   `mapstructure:"drives"`
	Commands []Command `mapstructure:"commands"`
}

const maxCommandPresets = 9

// Defaults mirror what the browser offers out of the box when no
// config file exists.
func defaultDrives() []Drive {
	return []Drive{
		{Name: "root", URL: "file:///"},
		{Name: "home", URL: "file://~"},
	}
}

func defaultCommands() []Command {
	return []Command{
		{Name: "du", Template: `du -s -h "{path}"`},
		{Name: "mkdir", Template: `mkdir "{path}"`},
		{Name: "cp", Template: `cp "{path}" `},
		{Name: "open", Template: `open "{path}"`},
		{Name: "mv", Template: `mv "{path}" `},
	}
}

// Load reads the config file if present and falls back to defaults.
// cfgFile == "" means the default location ~/.filescope/config.yaml.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(fsutils.ExpandHome(settingsDir))
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	v.SetEnvPrefix("FILESCOPE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Drives) == 0 {
		cfg.Drives = defaultDrives()
	}
	if len(cfg.Commands) == 0 {
		cfg.Commands = defaultCommands()
	}
	if len(cfg.Commands) > maxCommandPresets {
		cfg.Commands = cfg.Commands[:maxCommandPresets]
	}
	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Drives:   defaultDrives(),
		Commands: defaultCommands(),
	}
}

// CommandForDigit returns the preset bound to digit 1-9, or ok=false.
func (c *Config) CommandForDigit(digit int) (Command, bool) {
	i := digit - 1
	if i < 0 || i >= len(c.Commands) {
		return Command{}, false
	}
	return c.Commands[i], true
}

// DriveByName returns the drive preset with the given name, or ok=false.
func (c *Config) DriveByName(name string) (Drive, bool) {
	for _, d := range c.Drives {
		if d.Name == name {
			return d, true
		}
	}
	return Drive{}, false
}

const settingsDir = "~/.filescope"

// SettingsDirPath is where the config, state and log files live.
func SettingsDirPath() string {
	return fsutils.ExpandHome(settingsDir)
}

// LogFilePath is the destination of the file logger.
func LogFilePath() string {
	return filepath.Join(SettingsDirPath(), "filescope.log")
}
