package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// duration lets toml files use "500ms" style values.
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = duration(v)
	return nil
}

type fileConfig struct {
	ServerAddr    *string   `toml:"server_addr"`
	RingCapacity  *int      `toml:"ring_capacity"`
	FeedInterval  *duration `toml:"feed_interval"`
	DrainInterval *duration `toml:"drain_interval"`
	Verbose       *bool     `toml:"verbose"`
}

// loadConfigFile fills opts from the toml file at path.
// Flags named in explicit were set on the command line and keep their value.
func loadConfigFile(path string, opts *Options, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var cfg fileConfig
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return fmt.Errorf("decode config file %q: %w", path, err)
	}

	if cfg.ServerAddr != nil && !explicit["server-addr"] {
		opts.ServerAddr = *cfg.ServerAddr
	}
	if cfg.RingCapacity != nil && !explicit["ring-capacity"] {
		opts.RingCapacity = *cfg.RingCapacity
	}
	if cfg.FeedInterval != nil && !explicit["feed-interval"] {
		opts.FeedInterval = time.Duration(*cfg.FeedInterval)
	}
	if cfg.DrainInterval != nil && !explicit["drain-interval"] {
		opts.DrainInterval = time.Duration(*cfg.DrainInterval)
	}
	if cfg.Verbose != nil && !explicit["v"] {
		opts.Verbose = *cfg.Verbose
	}

	return nil
}

func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
