// Package config loads easyforth settings.
//
// Values are layered, each source overriding the ones before it: built in
// defaults, then a yaml config file, then EASYFORTH_ environment variables,
// then any command line flags that were explicitly set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable that Load considers.
const EnvPrefix = "EASYFORTH_"

// Output modes.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputYAML  = "yaml"
)

// Defaults.
const (
	DefaultPrompt   = "ok> "
	DefaultMaxDepth = 1024
	DefaultMemLimit = 1 << 20
	DefaultOutput   = OutputText
)

// DefaultFiles are searched for, in order, when no config file is named.
var DefaultFiles = []string{"easyforth.yaml", "easyforth.yml"}

// Config holds all easyforth settings.
type Config struct {
	Prompt      string        `koanf:"prompt"`
	HistoryFile string        `koanf:"history_file"`
	Trace       bool          `koanf:"trace"`
	MaxDepth    int           `koanf:"max_depth"`
	MemLimit    int           `koanf:"mem_limit"`
	Output      string        `koanf:"output"`
	Preload     []string      `koanf:"preload"`
	Timeout     time.Duration `koanf:"timeout"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

func defaults() map[string]interface{} {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".easyforth_history")
	}
	return map[string]interface{}{
		"prompt":       DefaultPrompt,
		"history_file": history,
		"trace":        false,
		"max_depth":    DefaultMaxDepth,
		"mem_limit":    DefaultMemLimit,
		"output":       DefaultOutput,
		"preload":      []string{},
		"timeout":      "0s",
	}
}

// Load builds a Config. An explicitly named cfgFile must exist; otherwise
// the first of DefaultFiles found in the working directory is used, if any.
// Only flags that were changed are applied; a flag named --max-depth sets
// the max_depth key, and the --config flag itself is ignored.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	cfgFile, err := findConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	return "", nil
}

// Validate checks that all settings are in range.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %v", cfg.MaxDepth))
	}
	if cfg.MemLimit < 0 {
		errs = append(errs, fmt.Errorf("mem_limit must not be negative, got %v", cfg.MemLimit))
	}
	if cfg.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %v", cfg.Timeout))
	}
	switch cfg.Output {
	case OutputText, OutputTable, OutputYAML:
	default:
		errs = append(errs, fmt.Errorf("invalid output %q, expected one of %v, %v or %v",
			cfg.Output, OutputText, OutputTable, OutputYAML))
	}
	return errors.Join(errs...)
}
