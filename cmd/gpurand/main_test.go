package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/pipeline"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runApp(t *testing.T, args ...string) error {
	t.Helper()
	app := newApp()
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	return app.Run(context.Background(), append([]string{"gpurand"}, args...))
}

func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "")
	return path
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, `
count: 10
seed: 99
variant: mt19937
devices:
  - name: big
    memory_bytes: 1048576
    compute_units: 8
log_level: debug
server_address: 0.0.0.0:9000
rate_limit: 2.5
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Count == nil || *cfg.Count != 10 {
		t.Fatalf("count not loaded: %+v", cfg.Count)
	}
	if cfg.Seed == nil || *cfg.Seed != 99 {
		t.Fatalf("seed not loaded: %+v", cfg.Seed)
	}
	if cfg.Variant != "mt19937" || cfg.LogLevel != "debug" || cfg.ServerAddress != "0.0.0.0:9000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Devices) != 1 || cfg.Devices[0].Name != "big" || cfg.Devices[0].ComputeUnits != 8 {
		t.Fatalf("devices not loaded: %+v", cfg.Devices)
	}
	if cfg.RateLimit == nil || *cfg.RateLimit != 2.5 {
		t.Fatalf("rate limit not loaded: %+v", cfg.RateLimit)
	}
	if cfg.Lanes != nil {
		t.Fatalf("unset lanes should stay nil")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "count: [1, 2")
	if _, err := LoadConfig(bad); err == nil {
		t.Fatal("expected parse error")
	}

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.Count != nil || cfg.Variant != "" {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestApplyConfigKeepsExplicitFlags(t *testing.T) {
	ten := int64(10)
	nine := uint64(9)
	cfg := Config{Count: &ten, Seed: &nine, Variant: "mt19937"}

	cmd := &cli.Command{
		Name:  "test",
		Flags: generationFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			applyConfig(c, cfg)
			return nil
		},
	}
	if err := cmd.Run(context.Background(), []string{"test", "--seed", "5"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 10 {
		t.Fatalf("config count not applied: %d", count)
	}
	if seed != 5 {
		t.Fatalf("explicit seed overridden: %d", seed)
	}
	if variant != "mt19937" {
		t.Fatalf("config variant not applied: %q", variant)
	}
}

func TestDeviceConfig(t *testing.T) {
	oldMem, oldUnits, oldHost := deviceMemory, computeUnits, hostMemory
	t.Cleanup(func() { deviceMemory, computeUnits, hostMemory = oldMem, oldUnits, oldHost })

	deviceMemory, computeUnits, hostMemory = 1<<20, 3, 1<<21
	cfg := deviceConfig(Config{})
	if len(cfg.Devices) != 1 || cfg.Devices[0].MemoryBytes != 1<<20 || cfg.Devices[0].ComputeUnits != 3 {
		t.Fatalf("flags not applied to default device: %+v", cfg)
	}
	if cfg.HostMemoryBytes != 1<<21 {
		t.Fatalf("host memory not applied: %d", cfg.HostMemoryBytes)
	}

	fromFile := Config{}
	fromFile.Devices = append(fromFile.Devices, cfg.Devices[0], cfg.Devices[0])
	if got := deviceConfig(fromFile); len(got.Devices) != 2 {
		t.Fatalf("configured device list not used: %+v", got)
	}
}

func TestWriteValues(t *testing.T) {
	req := pipeline.Request{Count: 3, Seed: 1, Variant: "mt2203"}
	values := []float32{0.25, 0.5, 0.75}

	var buf bytes.Buffer
	if err := writeValues(&buf, req, values, "text", 2); err != nil {
		t.Fatalf("text: %v", err)
	}
	if buf.String() != "0.25\n0.5\n" {
		t.Fatalf("unexpected text output: %q", buf.String())
	}

	buf.Reset()
	if err := writeValues(&buf, req, values, "text", 0); err != nil {
		t.Fatalf("text: %v", err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Fatalf("head 0 should print all values: %q", buf.String())
	}

	buf.Reset()
	if err := writeValues(&buf, req, values, "json", 1); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out jsonOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if out.Count != 3 || len(out.Values) != 3 || out.Values[2] != 0.75 {
		t.Fatalf("unexpected json output: %+v", out)
	}

	buf.Reset()
	if err := writeValues(&buf, req, values, "binary", 1); err != nil {
		t.Fatalf("binary: %v", err)
	}
	if buf.Len() != 12 {
		t.Fatalf("expected 12 bytes, got %d", buf.Len())
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf.Bytes()[4:])); got != 0.5 {
		t.Fatalf("unexpected second value: %v", got)
	}

	buf.Reset()
	if err := writeValues(&buf, req, values, "none", 0); err != nil || buf.Len() != 0 {
		t.Fatalf("none should write nothing: %v %q", err, buf.String())
	}
}

func TestSummarize(t *testing.T) {
	s := summarize([]float32{0, 0.5, 1})
	if s.Count != 3 || s.Min != 0 || s.Max != 1 || s.Mean != 0.5 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if math.Abs(s.StdDev-0.5) > 1e-12 {
		t.Fatalf("unexpected stddev: %v", s.StdDev)
	}
	if !strings.HasPrefix(s.String(), "count=3 min=0.000000 max=1.000000") {
		t.Fatalf("unexpected summary string: %q", s.String())
	}
	if (summarize(nil) != valueSummary{}) {
		t.Fatal("empty input should give a zero summary")
	}
}

func TestGenerateCommandIsDeterministic(t *testing.T) {
	cfg := emptyConfig(t)
	dir := t.TempDir()

	var runs [2]jsonOutput
	for i := range runs {
		out := filepath.Join(dir, "run"+string(rune('a'+i))+".json")
		err := runApp(t, "--config", cfg, "--log-level", "error",
			"--count", "10", "--seed", "777", "--format", "json", "--out", out,
			"--compute-units", "2", "--device-memory", "1048576", "--host-memory", "1048576")
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if err := json.Unmarshal(data, &runs[i]); err != nil {
			t.Fatalf("decode output: %v", err)
		}
	}

	if len(runs[0].Values) != 10 {
		t.Fatalf("expected 10 values, got %d", len(runs[0].Values))
	}
	for i, v := range runs[0].Values {
		if v < 0 || v >= 1 {
			t.Fatalf("value %d out of range: %v", i, v)
		}
		if runs[1].Values[i] != v {
			t.Fatalf("runs differ at %d: %v != %v", i, v, runs[1].Values[i])
		}
	}
}

func TestGenerateCommandFailures(t *testing.T) {
	cfg := emptyConfig(t)
	base := []string{"--config", cfg, "--log-level", "error", "--format", "none",
		"--device-memory", "1048576", "--host-memory", "1048576"}

	err := runApp(t, append(base, "--count", "0")...)
	var exit cli.ExitCoder
	if !errors.As(err, &exit) || exit.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %v", err)
	}
	if !strings.Contains(err.Error(), "validate") || !strings.Contains(err.Error(), "GenerationError") {
		t.Fatalf("diagnostic should name stage and kind: %v", err)
	}

	err = runApp(t, append(base, "--count", "10000000")...)
	if err == nil || !strings.Contains(err.Error(), "AllocationError") || !strings.Contains(err.Error(), "allocate_buffers") {
		t.Fatalf("expected allocation failure, got %v", err)
	}

	err = runApp(t, append(base, "--variant", "xorwow")...)
	if err == nil || !strings.Contains(err.Error(), "UnsupportedVariantError") {
		t.Fatalf("expected unsupported variant, got %v", err)
	}

	if err := runApp(t, append(base, "--count", "lots")...); err == nil {
		t.Fatal("non-integer count should be rejected")
	}
	if err := runApp(t, append(base, "--seed", "-1")...); err == nil {
		t.Fatal("negative seed should be rejected")
	}
}

func TestFailedGenerateLeavesNoOutputFile(t *testing.T) {
	cfg := emptyConfig(t)
	dir := t.TempDir()
	base := []string{"--config", cfg, "--log-level", "error", "--format", "text",
		"--device-memory", "1048576", "--host-memory", "1048576"}

	for name, args := range map[string][]string{
		"validation": {"--count", "0"},
		"allocation": {"--count", "10000000"},
		"variant":    {"--variant", "xorwow"},
	} {
		out := filepath.Join(dir, name+".txt")
		if err := runApp(t, append(append(base, args...), "--out", out)...); err == nil {
			t.Fatalf("%s: expected failure", name)
		}
		if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("%s: output file should not exist, stat: %v", name, err)
		}
	}

	out := filepath.Join(dir, "ok.txt")
	if err := runApp(t, append(base, "--count", "4", "--out", out)...); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Count(string(data), "\n") != 4 {
		t.Fatalf("expected 4 lines, got %q", data)
	}
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	if err := writeOutput(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "0.5\n")
		return err
	}); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if data, err := os.ReadFile(path); err != nil || string(data) != "0.5\n" {
		t.Fatalf("unexpected file: %q %v", data, err)
	}

	boom := errors.New("boom")
	if err := writeOutput(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected write error, got %v", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("partial output should be removed, stat: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
	if err := writeOutput(missing, func(io.Writer) error { return nil }); err == nil || !strings.Contains(err.Error(), "create output") {
		t.Fatalf("expected create error, got %v", err)
	}
}

func TestGenerateReportsNormalizedVariant(t *testing.T) {
	cfg := emptyConfig(t)
	out := filepath.Join(t.TempDir(), "out.json")
	err := runApp(t, "--config", cfg, "--log-level", "error",
		"--count", "3", "--variant", " MT19937 ", "--format", "json", "--out", out,
		"--device-memory", "1048576", "--host-memory", "1048576")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var got jsonOutput
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.Variant != "mt19937" {
		t.Fatalf("variant written as %q", got.Variant)
	}
}
