package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/compozy/utildemo/engine/core"
	"github.com/compozy/utildemo/engine/utils"
	"github.com/spf13/viper"
)

const (
	// ConfigName is the base name of the config file searched in the working directory
	ConfigName = "utildemo"
	// EnvPrefix prefixes environment overrides, e.g. UTILDEMO_LOG_LEVEL
	EnvPrefix = "UTILDEMO"

	defaultConfigType = "yaml"
	defaultLogLevel   = "info"
)

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"     yaml:"log"`
	Strings StringsConfig `mapstructure:"strings" yaml:"strings"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// StringsConfig represents string processing configuration
type StringsConfig struct {
	ConcatMode string `mapstructure:"concat_mode" yaml:"concat_mode"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: defaultLogLevel,
		},
		Strings: StringsConfig{
			ConcatMode: string(utils.ConcatBuilder),
		},
	}
}

// SetDefaults registers the default values on a viper instance
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("strings.concat_mode", def.Strings.ConcatMode)
}

// BindEnv enables UTILDEMO_* environment overrides on a viper instance
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load loads configuration from a file, falling back to ./utildemo.yaml.
// A missing file is not an error; defaults and environment still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	if configPath == "" {
		candidate := filepath.Join(".", ConfigName+"."+defaultConfigType)
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType(defaultConfigType)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return FromViper(v)
}

// FromViper unmarshals and validates the configuration held by v
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, core.NewError(err, core.ErrorCodeConfigInvalid, nil)
	}

	return cfg, nil
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	mode, err := utils.ParseConcatMode(c.Strings.ConcatMode)
	if err != nil {
		return fmt.Errorf("strings.concat_mode: %w", err)
	}
	c.Strings.ConcatMode = string(mode)

	return nil
}

// ToServiceConfig converts the config into the operations service configuration
func (c *Config) ToServiceConfig() *utils.Config {
	return &utils.Config{
		ConcatMode: utils.ConcatMode(c.Strings.ConcatMode),
	}
}
