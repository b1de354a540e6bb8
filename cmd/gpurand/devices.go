package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/device"
)

func devicesCmd() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "List the configured devices and the one that would be used",
		Action: withSetup(func(ctx context.Context, cmd *cli.Command) error {
			cfg := deviceConfig(fileConfig)
			selected := -1
			if dev, err := device.Provision(cfg, int(deviceOrdinal)); err == nil {
				selected = dev.Ordinal
			}
			fmt.Printf("%-3s %-12s %-6s %s\n", "ID", "NAME", "UNITS", "MEMORY")
			for i, s := range device.Enumerate(cfg) {
				mark := ""
				if i == selected {
					mark = " *"
				}
				fmt.Printf("%-3d %-12s %-6d %d MiB%s\n", i, s.Name, s.ComputeUnits, s.MemoryBytes>>20, mark)
			}
			return nil
		}),
	}
}
