package main

import (
	"fmt"
	"strconv"

	"github.com/webbmaffian/go-chainmap/chainmap"
)

type config struct {
	Keys         int
	Capacity     int
	LoadFactor   float64
	GrowthFactor int
	Verbose      bool
}

func loadConfig(getenv func(string) string) (cfg config, err error) {
	cfg = config{
		Keys:         14,
		Capacity:     chainmap.DefaultCapacity,
		LoadFactor:   chainmap.DefaultLoadFactor,
		GrowthFactor: chainmap.DefaultGrowthFactor,
	}

	if err = parseInt(getenv, "CHAINMAP_KEYS", &cfg.Keys); err != nil {
		return
	}

	if cfg.Keys < 0 {
		return cfg, fmt.Errorf("invalid CHAINMAP_KEYS: %d is negative", cfg.Keys)
	}

	if err = parseInt(getenv, "CHAINMAP_CAPACITY", &cfg.Capacity); err != nil {
		return
	}

	if err = parseInt(getenv, "CHAINMAP_GROWTH_FACTOR", &cfg.GrowthFactor); err != nil {
		return
	}

	if s := getenv("CHAINMAP_LOAD_FACTOR"); s != "" {
		if cfg.LoadFactor, err = strconv.ParseFloat(s, 64); err != nil {
			return cfg, fmt.Errorf("invalid CHAINMAP_LOAD_FACTOR: %w", err)
		}
	}

	if s := getenv("CHAINMAP_VERBOSE"); s != "" {
		if cfg.Verbose, err = strconv.ParseBool(s); err != nil {
			return cfg, fmt.Errorf("invalid CHAINMAP_VERBOSE: %w", err)
		}
	}

	return
}

func parseInt(getenv func(string) string, name string, dst *int) (err error) {
	s := getenv(name)

	if s == "" {
		return
	}

	if *dst, err = strconv.Atoi(s); err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}

	return
}

func (cfg config) options() []chainmap.Option {
	return []chainmap.Option{
		chainmap.WithCapacity(cfg.Capacity),
		chainmap.WithLoadFactor(cfg.LoadFactor),
		chainmap.WithGrowthFactor(cfg.GrowthFactor),
	}
}
