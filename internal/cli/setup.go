package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"veridex/internal/cache"
	"veridex/internal/model"
	"veridex/internal/registry"
)

// loadConfig builds the effective configuration: defaults overlaid with
// the config file, if one was found
func loadConfig() (model.Config, error) {
	cfg := model.DefaultConfig()

	path := viper.ConfigFileUsed()
	if path == "" {
		cfg.Output.Verbose = verbose
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	return cfg, nil
}

// buildRegistry constructs the model registry backed by the configured cache
func buildRegistry(cfg model.Config) *registry.Registry {
	if !cfg.Cache.Enabled {
		return registry.New(nil, cfg.Cache.TTL.Std())
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(home, ".veridex", "cache")
		}
	}
	if dir == "" {
		return registry.New(nil, cfg.Cache.TTL.Std())
	}

	ttl := cfg.Cache.TTL.Std()
	store := cache.NewLayeredCache(ttl, dir, ttl)
	return registry.New(store, ttl)
}
