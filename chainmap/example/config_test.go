package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func env(vars map[string]string) func(string) string {
	return func(name string) string {
		return vars[name]
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(env(nil))

	if err != nil {
		t.Fatal(err)
	}

	want := config{
		Keys:         14,
		Capacity:     16,
		LoadFactor:   0.75,
		GrowthFactor: 2,
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(env(map[string]string{
		"CHAINMAP_KEYS":          "1000",
		"CHAINMAP_CAPACITY":      "64",
		"CHAINMAP_LOAD_FACTOR":   "0.5",
		"CHAINMAP_GROWTH_FACTOR": "4",
		"CHAINMAP_VERBOSE":       "true",
	}))

	if err != nil {
		t.Fatal(err)
	}

	want := config{
		Keys:         1000,
		Capacity:     64,
		LoadFactor:   0.5,
		GrowthFactor: 4,
		Verbose:      true,
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	for name, val := range map[string]string{
		"CHAINMAP_KEYS":          "-1",
		"CHAINMAP_CAPACITY":      "sixteen",
		"CHAINMAP_LOAD_FACTOR":   "most",
		"CHAINMAP_GROWTH_FACTOR": "2.5",
		"CHAINMAP_VERBOSE":       "loud",
	} {
		if _, err := loadConfig(env(map[string]string{name: val})); err == nil {
			t.Errorf("%s=%s: expected error", name, val)
		}
	}
}
