package device

import (
	"runtime"
	"testing"
)

func TestEnumerateDefaults(t *testing.T) {
	t.Parallel()
	specs := Enumerate(Config{})
	if len(specs) != 1 {
		t.Fatalf("expected one default device, got %d", len(specs))
	}
	s := specs[0]
	if s.Name != "soft0" {
		t.Fatalf("unexpected name: %q", s.Name)
	}
	if s.MemoryBytes != DefaultMemoryBytes {
		t.Fatalf("unexpected memory: %d", s.MemoryBytes)
	}
	if s.ComputeUnits != runtime.NumCPU() {
		t.Fatalf("unexpected compute units: %d", s.ComputeUnits)
	}
}

func TestProvisionPicksMostComputeUnits(t *testing.T) {
	t.Parallel()
	cfg := Config{Devices: []Spec{
		{Name: "small", ComputeUnits: 2},
		{Name: "large", ComputeUnits: 16},
		{Name: "medium", ComputeUnits: 8},
	}}

	dev, err := Provision(cfg, -1)
	if err != nil {
		t.Fatalf("Provision: %v", err)
	}
	if dev.Name != "large" || dev.Ordinal != 1 {
		t.Fatalf("expected large device, got %s", dev)
	}

	explicit, err := Provision(cfg, 2)
	if err != nil {
		t.Fatalf("Provision explicit: %v", err)
	}
	if explicit.Name != "medium" {
		t.Fatalf("expected medium device, got %s", explicit)
	}

	if _, err := Provision(cfg, 3); err == nil {
		t.Fatal("expected error for out of range ordinal")
	}
}
