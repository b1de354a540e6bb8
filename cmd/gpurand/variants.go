package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/gpurand/internal/rng"
)

func variantsCmd() *cli.Command {
	return &cli.Command{
		Name:  "variants",
		Usage: "List the registered generator variants",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("%-9s %-7s %-9s %-7s %s\n", "NAME", "STATE", "MAXLANES", "LANES", "DESCRIPTION")
			for _, v := range rng.Variants() {
				name := v.Name
				if name == rng.Default {
					name += "*"
				}
				fmt.Printf("%-9s %-7d %-9d %-7d %s\n", name, v.StateWords, v.MaxLanes, v.DefaultLanes, v.Description)
			}
			return nil
		},
	}
}
