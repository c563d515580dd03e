package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	TrainEpisodes int     `yaml:"train_episodes"` // vs. the random baseline
	SelfEpisodes  int     `yaml:"self_episodes"`  // self-play on the shared table
	EvalEpisodes  int     `yaml:"eval_episodes"`
	ExploreRate   float64 `yaml:"explore_rate"`
	Alpha         float64 `yaml:"alpha"`
	Decay         float64 `yaml:"decay"`
	Seed          uint64  `yaml:"seed"`
	OutDir        string  `yaml:"out_dir"` // empty disables CSV output
}

func defaultConfig() config {
	return config{
		TrainEpisodes: 20000,
		SelfEpisodes:  20000,
		EvalEpisodes:  1000,
		ExploreRate:   0.1,
		Alpha:         0.5,
		Decay:         0.99999,
		Seed:          1,
		OutDir:        "runs",
	}
}

// loadConfig reads a YAML config over the defaults. A missing file is
// not an error: it just means an all-defaults run.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
