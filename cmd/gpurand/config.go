package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/samcharles93/gpurand/internal/device"
)

// Config represents the gpurand configuration file (~/.config/gpurand/config.yaml).
// Pointer fields distinguish "not set" from zero values.
type Config struct {
	Count   *int64  `yaml:"count"`
	Seed    *uint64 `yaml:"seed"`
	Variant string  `yaml:"variant"`
	Lanes   *int64  `yaml:"lanes"`

	// Devices
	Device          *int64        `yaml:"device"`
	Devices         []device.Spec `yaml:"devices"`
	HostMemoryBytes *int64        `yaml:"host_memory_bytes"`

	// Output
	Format    string `yaml:"format"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	// Server
	ServerAddress string   `yaml:"server_address"`
	MaxCount      *int64   `yaml:"max_count"`
	RateLimit     *float64 `yaml:"rate_limit"`
	RateBurst     *int64   `yaml:"rate_burst"`
}

// fileConfig is the config loaded for the running command.
var fileConfig Config

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gpurand", "config.yaml")
}

// LoadConfig reads path, or the default location when path is empty. A
// missing default file yields a zero Config; a missing explicit file is an
// error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = configPath()
		if path == "" {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyConfig copies config file values into the flag variables whose flags
// were not set on the command line or in the environment.
func applyConfig(c *cli.Command, cfg Config) {
	if cfg.Count != nil && !c.IsSet("count") {
		count = *cfg.Count
	}
	if cfg.Seed != nil && !c.IsSet("seed") {
		seed = *cfg.Seed
	}
	if cfg.Variant != "" && !c.IsSet("variant") {
		variant = cfg.Variant
	}
	if cfg.Lanes != nil && !c.IsSet("lanes") {
		lanes = *cfg.Lanes
	}
	if cfg.Device != nil && !c.IsSet("device") {
		deviceOrdinal = *cfg.Device
	}
	if cfg.HostMemoryBytes != nil && !c.IsSet("host-memory") {
		hostMemory = *cfg.HostMemoryBytes
	}
	if cfg.Format != "" && !c.IsSet("format") {
		outputFormat = cfg.Format
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
	if cfg.LogFile != "" && !c.IsSet("log-file") {
		logFile = cfg.LogFile
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, addr *string, maxCount *int64, rateLimit *float64, burst *int64) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		*addr = cfg.ServerAddress
	}
	if cfg.MaxCount != nil && !c.IsSet("max-count") {
		*maxCount = *cfg.MaxCount
	}
	if cfg.RateLimit != nil && !c.IsSet("rate-limit") {
		*rateLimit = *cfg.RateLimit
	}
	if cfg.RateBurst != nil && !c.IsSet("rate-burst") {
		*burst = *cfg.RateBurst
	}
}

// deviceConfig describes the devices to expose. The --device-memory and
// --compute-units flags shape the single default device and are ignored
// when the config file lists devices.
func deviceConfig(cfg Config) device.Config {
	out := device.Config{
		Devices:         cfg.Devices,
		HostMemoryBytes: hostMemory,
	}
	if len(out.Devices) == 0 {
		out.Devices = []device.Spec{{
			MemoryBytes:  deviceMemory,
			ComputeUnits: int(computeUnits),
		}}
	}
	return out
}
