package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/contig/internal/stress"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"ops":       "ops",
	"seed":      "seed",
	"max-value": "max_value",
	"max-batch": "max_batch",
	"duration":  "duration",
}

// loadConfig resolves the stress config from, in increasing priority:
// defaults, the config file, ARRAY_STRESS_* environment variables and
// flags that were set explicitly.
func loadConfig(v *viper.Viper, configFile string, flags *pflag.FlagSet) (stress.Config, error) {
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("array-stress")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.array-stress")
	}

	defaults := stress.DefaultConfig()
	v.SetDefault("ops", defaults.Ops)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("max_value", defaults.MaxValue)
	v.SetDefault("max_batch", defaults.MaxBatch)
	v.SetDefault("duration", defaults.Duration)

	v.SetEnvPrefix("ARRAY_STRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return stress.Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return stress.Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg stress.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return stress.Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}
