package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
	"github.com/samcharles93/gpurand/internal/server"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
		maxCount    int64
		rateLimit   float64
		rateBurst   int64
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the generation HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Sources:     cli.EnvVars("GPURAND_ADDR"),
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
			&cli.Int64Flag{
				Name:        "max-count",
				Usage:       "largest count a single request may ask for",
				Value:       server.DefaultMaxCount,
				Sources:     cli.EnvVars("GPURAND_MAX_COUNT"),
				Destination: &maxCount,
			},
			&cli.Float64Flag{
				Name:        "rate-limit",
				Usage:       "generation requests per second (0 disables the limit)",
				Sources:     cli.EnvVars("GPURAND_RATE_LIMIT"),
				Destination: &rateLimit,
			},
			&cli.Int64Flag{
				Name:        "rate-burst",
				Usage:       "burst size for --rate-limit",
				Value:       4,
				Destination: &rateBurst,
			},
		},
		Action: withSetup(func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, fileConfig, &addr, &maxCount, &rateLimit, &rateBurst)

			devCfg := deviceConfig(fileConfig)
			dev, err := device.Provision(devCfg, int(deviceOrdinal))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: provision device: %v", err), 1)
			}

			req := currentRequest()
			srv := server.New(dev, server.Config{
				Defaults: pipeline.Defaults{
					Count:   req.Count,
					Seed:    req.Seed,
					Variant: req.Variant,
					Lanes:   req.Lanes,
				},
				MaxCount:          maxCount,
				RequestsPerSecond: rateLimit,
				Burst:             int(rateBurst),
				Devices:           device.Enumerate(devCfg),
			}, log)

			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			srv.Register(e)
			log.Info("starting server", "address", addr, "device", dev.String())
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(s *http.Server) error {
					s.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		}),
	}
}
