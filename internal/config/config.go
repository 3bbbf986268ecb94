package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys shared by the config file, flags and KANCLI_* environment variables
const (
	KeyProfile = "profile"
	KeyRegion  = "region"
	KeyOutput  = "output"
	KeyPager   = "pager"
	KeyDebug   = "debug"
)

// EnvPrefix prefixes environment overrides, e.g. KANCLI_REGION
const EnvPrefix = "KANCLI"

// Config represents the application configuration
type Config struct {
	AWSProfile string `yaml:"aws_profile,omitempty"`
	AWSRegion  string `yaml:"aws_region,omitempty"`
	Output     string `yaml:"output,omitempty"`
	Pager      string `yaml:"pager,omitempty"`
}

// GetConfigDir returns the config directory path ($XDG_CONFIG_HOME/kancli)
func GetConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kancli")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kancli"
	}
	return filepath.Join(home, ".config", "kancli")
}

// GetConfigPath returns the config file path
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// LoadConfig loads the configuration from the default path
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigPath())
}

// LoadConfigFrom loads the configuration from path. A missing file yields
// an empty config.
func LoadConfigFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveConfigTo writes the configuration to path, creating its directory
func SaveConfigTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Bind layers flags, KANCLI_* environment variables, the config file and
// the AWS environment into v, highest precedence first.
func Bind(v *viper.Viper, flags *pflag.FlagSet, cfg *Config) error {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	for _, key := range []string{KeyProfile, KeyRegion, KeyOutput, KeyPager, KeyDebug} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	v.SetDefault(KeyProfile, firstNonEmpty(cfg.AWSProfile, os.Getenv("AWS_PROFILE")))
	v.SetDefault(KeyRegion, firstNonEmpty(cfg.AWSRegion, os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION")))
	v.SetDefault(KeyOutput, firstNonEmpty(cfg.Output, "text"))
	v.SetDefault(KeyPager, firstNonEmpty(cfg.Pager, os.Getenv("PAGER")))

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
