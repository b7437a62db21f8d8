package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces gradecast environment variables, e.g.
// GRADECAST_PARAMS_FILE or GRADECAST_HISTORY_DB.
const EnvPrefix = "GRADECAST_"

// Load builds a Config by layering defaults, an optional YAML file,
// and environment variables. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) when path is non-empty
//  3. env (prefix GRADECAST_)
func Load(path string) (*Config, error) {
	base, err := New()
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Map env keys like GRADECAST_DEFAULT_VALUE -> default_value.
	// Underscores are preserved to match the koanf struct tags.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
