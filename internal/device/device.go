// Package device implements a software accelerator: a capacity-accounted
// memory arena and in-order execution queues whose commands run on a
// worker goroutine, asynchronously to the caller.
package device

import (
	"fmt"
	"runtime"
)

const (
	DefaultMemoryBytes     int64 = 4 << 30
	DefaultHostMemoryBytes int64 = 4 << 30
)

// Spec describes one device made available by Provision.
type Spec struct {
	Name         string `yaml:"name"`
	MemoryBytes  int64  `yaml:"memory_bytes"`
	ComputeUnits int    `yaml:"compute_units"`
}

// Config lists the devices to expose. An empty Devices list yields a single
// device sized with the defaults.
type Config struct {
	Devices         []Spec `yaml:"devices"`
	HostMemoryBytes int64  `yaml:"host_memory_bytes"`
}

type Device struct {
	Ordinal      int
	Name         string
	MemoryBytes  int64
	ComputeUnits int

	arena *Arena
}

// Enumerate returns the device specs Config describes, with defaults filled in.
func Enumerate(cfg Config) []Spec {
	specs := cfg.Devices
	if len(specs) == 0 {
		specs = []Spec{{}}
	}
	out := make([]Spec, len(specs))
	for i, s := range specs {
		if s.Name == "" {
			s.Name = fmt.Sprintf("soft%d", i)
		}
		if s.MemoryBytes <= 0 {
			s.MemoryBytes = DefaultMemoryBytes
		}
		if s.ComputeUnits <= 0 {
			s.ComputeUnits = runtime.NumCPU()
		}
		out[i] = s
	}
	return out
}

// Provision opens the device at ordinal, or the device with the most compute
// units when ordinal is negative.
func Provision(cfg Config, ordinal int) (*Device, error) {
	specs := Enumerate(cfg)
	if ordinal >= len(specs) {
		return nil, fmt.Errorf("invalid device ordinal %d (%d devices available)", ordinal, len(specs))
	}
	if ordinal < 0 {
		ordinal = 0
		for i, s := range specs {
			if s.ComputeUnits > specs[ordinal].ComputeUnits {
				ordinal = i
			}
		}
	}

	hostBytes := cfg.HostMemoryBytes
	if hostBytes <= 0 {
		hostBytes = DefaultHostMemoryBytes
	}
	s := specs[ordinal]
	return &Device{
		Ordinal:      ordinal,
		Name:         s.Name,
		MemoryBytes:  s.MemoryBytes,
		ComputeUnits: s.ComputeUnits,
		arena:        NewArena(s.MemoryBytes, hostBytes),
	}, nil
}

func (d *Device) Arena() *Arena {
	return d.arena
}

func (d *Device) String() string {
	return fmt.Sprintf("%s (ordinal %d, %d compute units, %d MiB)", d.Name, d.Ordinal, d.ComputeUnits, d.MemoryBytes>>20)
}
