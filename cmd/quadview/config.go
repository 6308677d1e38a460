package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config holds the viewer application settings. All fields are optional in
// the TOML file; unset fields keep their defaults and flags override the
// file.
type config struct {
	// Image is the root tile's file path; nested tile paths derive from it
	// (data/root.jpg -> data/root_2.jpg).
	Image string `toml:"image"`
	// StartPath is the initial navigation path, e.g. "0_2".
	StartPath string `toml:"start_path"`
	// CacheSize bounds the decoded-tile cache.
	CacheSize int `toml:"cache_size"`
	// Frames is the zoom animation length in ticks.
	Frames int `toml:"frames"`
	// TPS is the tick rate; 30 matches the animation's ~33 ms tuning.
	TPS int `toml:"tps"`

	WindowWidth  int `toml:"window_width"`
	WindowHeight int `toml:"window_height"`
}

func defaultConfig() config {
	return config{
		Image:        "root.jpg",
		CacheSize:    16,
		Frames:       20,
		TPS:          30,
		WindowWidth:  800,
		WindowHeight: 800,
	}
}

// loadConfig reads a TOML config over the defaults. A missing file is an
// error only when the path was explicitly given; the default location may
// simply not exist.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
