// Package config loads runtime settings from flags, environment
// variables, and an optional YAML file. Precedence from highest to
// lowest: flags, environment, file, built-in defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix namespaces the environment variables read by Load, e.g.
// DECKDRILL_DATA_DIR maps to the data-dir key.
const envPrefix = "DECKDRILL_"

// Config holds every runtime knob of the program.
type Config struct {
	// DataDir is scanned once at startup for YAML deck files.
	DataDir string `koanf:"data-dir" validate:"required"`
	// LogDir receives the plain and shadow answer logs.
	LogDir string `koanf:"log-dir" validate:"required"`
	// LogLevel controls diagnostic verbosity on stderr.
	LogLevel string `koanf:"log-level" validate:"required,oneof=debug info warn error"`
	// Seed fixes the card shuffle and mode draws; zero seeds from the
	// clock.
	Seed int64 `koanf:"seed"`
}

// Load parses command-line arguments and merges them with environment
// variables and the optional config file. args is usually os.Args[1:].
func Load(args []string) (*Config, error) {
	f := pflag.NewFlagSet("deckdrill", pflag.ContinueOnError)
	f.String("data-dir", "data", "directory containing YAML deck files")
	f.String("log-dir", "data", "directory the answer logs are written to")
	f.String("log-level", "info", "log verbosity: debug, info, warn or error")
	f.Int64("seed", 0, "random seed for shuffling; 0 seeds from the clock")
	cfgFile := f.String("config", "", "optional YAML config file")
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if *cfgFile != "" {
		if err := k.Load(file.Provider(*cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", *cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("loading flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
