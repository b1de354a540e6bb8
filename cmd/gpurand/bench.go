package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
)

func benchCmd() *cli.Command {
	var (
		warmupRuns int64
		benchRuns  int64
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Measure pipeline throughput over repeated runs",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "warmup",
				Usage:       "number of warmup runs",
				Value:       1,
				Destination: &warmupRuns,
			},
			&cli.Int64Flag{
				Name:        "runs",
				Usage:       "number of benchmark runs",
				Value:       5,
				Destination: &benchRuns,
			},
		},
		Action: withSetup(func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			if benchRuns <= 0 {
				return cli.Exit("error: --runs must be > 0", 1)
			}

			dev, err := provision()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: provision device: %v", err), 1)
			}
			req := currentRequest()
			if err := req.Validate(); err != nil {
				return failure(err)
			}

			// Pipeline progress logs are silenced inside timed runs.
			quiet := logger.WithContext(ctx, logger.Nop())

			fmt.Println("=== gpurand bench ===")
			fmt.Printf("Device:   %s\n", dev)
			fmt.Printf("Variant:  %s\n", req.Variant)
			fmt.Printf("Count:    %d values (%.1f MB)\n", req.Count, float64(req.Bytes())/(1024*1024))
			fmt.Printf("CPUs:     %d\n", runtime.NumCPU())
			fmt.Printf("Warmup:   %d runs\n", warmupRuns)
			fmt.Printf("Runs:     %d\n", benchRuns)
			fmt.Println()

			for i := range int(warmupRuns) {
				log.Info("warmup run", "run", i+1)
				if err := pipeline.Run(quiet, dev, req, nil); err != nil {
					return failure(err)
				}
			}

			durations := make([]time.Duration, 0, benchRuns)
			for i := range int(benchRuns) {
				log.Info("benchmark run", "run", i+1)
				start := time.Now()
				if err := pipeline.Run(quiet, dev, req, nil); err != nil {
					return failure(err)
				}
				durations = append(durations, time.Since(start))
			}

			fmt.Println("=== Results ===")
			fmt.Printf("%-6s %12s %14s %10s\n", "Run", "Duration", "Msamples/s", "GB/s")
			var total time.Duration
			for i, d := range durations {
				msps, gbps := throughput(req.Count, d)
				fmt.Printf("%-6d %12s %14.2f %10.2f\n", i+1, d.Round(time.Microsecond), msps, gbps)
				total += d
			}
			avg := total / time.Duration(len(durations))
			msps, gbps := throughput(req.Count, avg)
			fmt.Printf("\n%-6s %12s %14.2f %10.2f\n", "Avg", avg.Round(time.Microsecond), msps, gbps)
			return nil
		}),
	}
}

func throughput(count int64, d time.Duration) (msamples, gbytes float64) {
	secs := d.Seconds()
	if secs <= 0 {
		return 0, 0
	}
	return float64(count) / secs / 1e6, float64(count*4) / secs / 1e9
}
