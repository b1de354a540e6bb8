package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
)

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:   "generate",
		Usage:  "Generate uniform float32 values in [0, 1) (default command)",
		Action: withSetup(generateAction),
	}
}

func generateAction(ctx context.Context, cmd *cli.Command) error {
	log := logger.FromContext(ctx)

	format := strings.ToLower(outputFormat)
	switch format {
	case "text", "json", "binary", "none":
	default:
		return cli.Exit(fmt.Sprintf("error: unknown format %q (expected text, json, binary, none)", outputFormat), 1)
	}

	dev, err := provision()
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: provision device: %v", err), 1)
	}
	log.Debug("device provisioned", "device", dev.String())

	req := currentRequest()
	start := time.Now()
	var stats *valueSummary
	err = pipeline.Run(ctx, dev, req, func(values []float32) error {
		if summary {
			s := summarize(values)
			stats = &s
		}
		return writeOutput(outputPath, func(w io.Writer) error {
			return writeValues(w, req, values, format, int(head))
		})
	})
	if err != nil {
		return failure(err)
	}
	log.Debug("generation complete", "count", req.Count, "elapsed", time.Since(start))

	if stats != nil {
		_, _ = fmt.Fprintln(os.Stderr, stats.String())
	}
	return nil
}

// writeOutput runs write against stdout, or against a file created at path.
// It is called once the values exist, so a failed run leaves no file behind;
// a failed write removes the partial file.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}

type jsonOutput struct {
	Variant string    `json:"variant"`
	Seed    uint64    `json:"seed"`
	Count   int64     `json:"count"`
	Values  []float32 `json:"values"`
}

// writeValues renders values in format. head limits the text format only; a
// non-positive head prints every value.
func writeValues(w io.Writer, req pipeline.Request, values []float32, format string, head int) error {
	switch format {
	case "none":
		return nil
	case "json":
		return json.NewEncoder(w).Encode(jsonOutput{
			Variant: req.Variant,
			Seed:    req.Seed,
			Count:   req.Count,
			Values:  values,
		})
	case "binary":
		bw := bufio.NewWriterSize(w, 1<<20)
		if err := binary.Write(bw, binary.LittleEndian, values); err != nil {
			return fmt.Errorf("write binary output: %w", err)
		}
		return bw.Flush()
	default:
		if head > 0 && head < len(values) {
			values = values[:head]
		}
		bw := bufio.NewWriter(w)
		buf := make([]byte, 0, 32)
		for _, v := range values {
			buf = strconv.AppendFloat(buf[:0], float64(v), 'f', -1, 32)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("write text output: %w", err)
			}
		}
		return bw.Flush()
	}
}

type valueSummary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

func summarize(values []float32) valueSummary {
	if len(values) == 0 {
		return valueSummary{}
	}
	xs := make([]float64, len(values))
	for i, v := range values {
		xs[i] = float64(v)
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return valueSummary{
		Count:  len(xs),
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   mean,
		StdDev: std,
	}
}

func (s valueSummary) String() string {
	return fmt.Sprintf("count=%d min=%.6f max=%.6f mean=%.6f stddev=%.6f", s.Count, s.Min, s.Max, s.Mean, s.StdDev)
}
