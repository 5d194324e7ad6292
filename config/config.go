// Package config loads the engine's recognized options from a YAML file.
//
// Everything here is glue configuration: solver guardrails and policy
// knobs, score database location, logging and API listen address. Solver
// packages never read files themselves - they take plain Options structs,
// and this package translates between the two.
package config

import (
	"github.com/spf13/viper"

	"github.com/tourlab/tourlab/solve"
)

// Solver carries the recognized solver options.
type Solver struct {
	BruteForceCityLimit       int  `mapstructure:"brute_force_city_limit"`
	HeldKarpCityLimit         int  `mapstructure:"held_karp_city_limit"`
	NearestNeighborMultiStart bool `mapstructure:"nearest_neighbor_multi_start"`
	StartCity                 int  `mapstructure:"start_city"`
	CancelCheckInterval       int  `mapstructure:"cancel_check_interval"`
}

// Options converts the file representation into solve.Options.
func (s Solver) Options() solve.Options {
	return solve.Options{
		BruteForceCityLimit:       s.BruteForceCityLimit,
		HeldKarpCityLimit:         s.HeldKarpCityLimit,
		NearestNeighborMultiStart: s.NearestNeighborMultiStart,
		StartCity:                 s.StartCity,
		CancelCheckInterval:       s.CancelCheckInterval,
	}
}

// Database locates the score store.
type Database struct {
	Path string `mapstructure:"path"`
}

// Log configures the binary's logger sink.
type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"` // empty ⇒ stderr only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Server configures the optional JSON API.
type Server struct {
	Addr string `mapstructure:"addr"`
}

// Config is the root document.
type Config struct {
	Solver   Solver   `mapstructure:"solver"`
	Database Database `mapstructure:"database"`
	Log      Log      `mapstructure:"log"`
	Server   Server   `mapstructure:"server"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Solver: Solver{
			BruteForceCityLimit: solve.DefaultBruteForceCityLimit,
			HeldKarpCityLimit:   solve.DefaultHeldKarpCityLimit,
			CancelCheckInterval: solve.DefaultCancelCheckInterval,
		},
		Database: Database{Path: "tourlab.db"},
		Log: Log{
			Level:      "info",
			File:       "",
			MaxSizeMB:  20,
			MaxBackups: 3,
		},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path and unmarshals it over the defaults, so a partial file
// only overrides what it names. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
