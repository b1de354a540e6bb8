package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/logger"
	"github.com/samcharles93/gpurand/internal/pipeline"
	"github.com/samcharles93/gpurand/internal/version"
)

func main() {
	// A .env file in the working directory feeds the GPURAND_* flag sources.
	_ = godotenv.Load()

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "gpurand",
		Usage:   "Generate uniform float32 random numbers with parallel Mersenne-Twister streams",
		Version: version.String(),
		Flags:   rootFlags(),
		Action:  withSetup(generateAction),
		Commands: []*cli.Command{
			generateCmd(),
			benchCmd(),
			serveCmd(),
			variantsCmd(),
			devicesCmd(),
			versionCmd(),
		},
	}
}

// withSetup loads the config file, applies it to unset flags and installs
// the logger in the context before running fn.
func withSetup(fn cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
		fileConfig = cfg
		applyConfig(cmd, cfg)

		log, closeLog := newLogger(os.Stderr)
		defer closeLog()
		return fn(logger.WithContext(ctx, log), cmd)
	}
}

func newLogger(stderr io.Writer) (logger.Logger, func()) {
	level := logger.ParseLevel(logLevel)
	if debug {
		level = slog.LevelDebug
	}
	if logFile == "" {
		return logger.ForFormat(logFormat, stderr, level), func() {}
	}
	w := logger.RotatingFile(logFile, 0, 0)
	format := logFormat
	if format == "" || format == "pretty" {
		// No colour codes in files.
		format = "text"
	}
	return logger.ForFormat(format, w, level), func() { _ = w.Close() }
}

func provision() (*device.Device, error) {
	return device.Provision(deviceConfig(fileConfig), int(deviceOrdinal))
}

func currentRequest() pipeline.Request {
	l := int(lanes)
	return pipeline.ResolveRequest(pipeline.RequestOptions{
		Count:   &count,
		Seed:    &seed,
		Variant: &variant,
		Lanes:   &l,
	}, pipeline.DefaultSettings())
}

// failure formats a pipeline error as the process diagnostic.
func failure(err error) error {
	if stage := pipeline.Stage(err); stage != "" {
		return cli.Exit(fmt.Sprintf("error: %v", err), 1)
	}
	return cli.Exit(fmt.Sprintf("error (%s): %v", pipeline.Kind(err), err), 1)
}
