package main

import (
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/pipeline"
	"github.com/samcharles93/gpurand/internal/rng"
)

var (
	count   int64
	seed    uint64
	variant string
	lanes   int64

	deviceOrdinal int64
	deviceMemory  int64
	hostMemory    int64
	computeUnits  int64

	outputFormat string
	outputPath   string
	head         int64
	summary      bool

	configFile string
	logLevel   string
	logFormat  string
	logFile    string
	debug      bool
)

func generationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "count",
			Aliases:     []string{"n"},
			Usage:       "number of float32 values to generate",
			Value:       pipeline.DefaultCount,
			Sources:     cli.EnvVars("GPURAND_COUNT"),
			Destination: &count,
		},
		&cli.Uint64Flag{
			Name:        "seed",
			Aliases:     []string{"s"},
			Usage:       "generator seed",
			Value:       pipeline.DefaultSeed,
			Sources:     cli.EnvVars("GPURAND_SEED"),
			Destination: &seed,
		},
		&cli.StringFlag{
			Name:        "variant",
			Usage:       "generator variant (mt2203, mt19937)",
			Value:       rng.Default,
			Sources:     cli.EnvVars("GPURAND_VARIANT"),
			Destination: &variant,
		},
		&cli.Int64Flag{
			Name:        "lanes",
			Usage:       "parallel generator lanes (0 uses the variant default)",
			Sources:     cli.EnvVars("GPURAND_LANES"),
			Destination: &lanes,
		},
	}
}

func deviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "device",
			Aliases:     []string{"d"},
			Usage:       "device ordinal (-1 picks the device with the most compute units)",
			Value:       -1,
			Sources:     cli.EnvVars("GPURAND_DEVICE"),
			Destination: &deviceOrdinal,
		},
		&cli.Int64Flag{
			Name:        "device-memory",
			Usage:       "device memory capacity in bytes when no device list is configured",
			Sources:     cli.EnvVars("GPURAND_DEVICE_MEMORY"),
			Destination: &deviceMemory,
		},
		&cli.Int64Flag{
			Name:        "host-memory",
			Usage:       "host buffer capacity in bytes",
			Sources:     cli.EnvVars("GPURAND_HOST_MEMORY"),
			Destination: &hostMemory,
		},
		&cli.Int64Flag{
			Name:        "compute-units",
			Usage:       "compute units when no device list is configured (0 uses every CPU)",
			Sources:     cli.EnvVars("GPURAND_COMPUTE_UNITS"),
			Destination: &computeUnits,
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output format (text, json, binary, none)",
			Value:       "text",
			Sources:     cli.EnvVars("GPURAND_FORMAT"),
			Destination: &outputFormat,
		},
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "write output to a file instead of stdout",
			Destination: &outputPath,
		},
		&cli.Int64Flag{
			Name:        "head",
			Usage:       "values printed in text format (0 prints all)",
			Value:       10,
			Destination: &head,
		},
		&cli.BoolFlag{
			Name:        "summary",
			Usage:       "print min, max, mean and standard deviation of the values",
			Destination: &summary,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir/gpurand/config.yaml)",
			Sources:     cli.EnvVars("GPURAND_CONFIG"),
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("GPURAND_LOG_LEVEL"),
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Sources:     cli.EnvVars("GPURAND_LOG_FORMAT"),
			Destination: &logFormat,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "write logs to a size-rotated file instead of stderr",
			Sources:     cli.EnvVars("GPURAND_LOG_FILE"),
			Destination: &logFile,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}

func rootFlags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, generationFlags()...)
	flags = append(flags, deviceFlags()...)
	flags = append(flags, outputFlags()...)
	flags = append(flags, loggingFlags()...)
	return flags
}
