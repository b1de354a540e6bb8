package server

import (
	"net/http"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/rng"
	"github.com/samcharles93/gpurand/internal/version"
)

type VariantInfo struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	StateWords   int    `json:"state_words"`
	MaxLanes     int    `json:"max_lanes"`
	DefaultLanes int    `json:"default_lanes"`
	Default      bool   `json:"default"`
}

type DeviceInfo struct {
	Ordinal      int    `json:"ordinal"`
	Name         string `json:"name"`
	MemoryBytes  int64  `json:"memory_bytes"`
	ComputeUnits int    `json:"compute_units"`
	Selected     bool   `json:"selected"`
}

func (s *Server) handleHealth(c *echo.Context) error {
	usage := s.dev.Arena().Usage()
	return writeJSON(c, http.StatusOK, map[string]any{
		"status":              "ok",
		"version":             version.String(),
		"device":              s.dev.Name,
		"outstanding_buffers": usage.Outstanding(),
	})
}

func (s *Server) handleVariants(c *echo.Context) error {
	variants := rng.Variants()
	data := make([]VariantInfo, 0, len(variants))
	for _, v := range variants {
		data = append(data, VariantInfo{
			Name:         v.Name,
			Description:  v.Description,
			StateWords:   v.StateWords,
			MaxLanes:     v.MaxLanes,
			DefaultLanes: v.DefaultLanes,
			Default:      v.Name == s.cfg.Defaults.Variant,
		})
	}
	return writeJSON(c, http.StatusOK, map[string]any{
		"object": "list",
		"data":   data,
	})
}

func (s *Server) handleDevices(c *echo.Context) error {
	specs := s.cfg.Devices
	if len(specs) == 0 {
		specs = []device.Spec{{
			Name:         s.dev.Name,
			MemoryBytes:  s.dev.MemoryBytes,
			ComputeUnits: s.dev.ComputeUnits,
		}}
	}
	data := make([]DeviceInfo, 0, len(specs))
	for i, spec := range specs {
		data = append(data, DeviceInfo{
			Ordinal:      i,
			Name:         spec.Name,
			MemoryBytes:  spec.MemoryBytes,
			ComputeUnits: spec.ComputeUnits,
			Selected:     i == s.dev.Ordinal,
		})
	}
	return writeJSON(c, http.StatusOK, map[string]any{"object": "list", "data": data})
}
