package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/sharkAndshark/mapflow/fixture"
	"github.com/sharkAndshark/mapflow/vectorio"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"
)

func main() {
	app := &cli.App{
		Name:        "mapflow-fixture",
		Description: "Generates geodata test fixtures for MapFlow",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "data",
				Usage:   "output directory for fixtures",
			},
			&cli.StringFlag{
				Name:  "base-name",
				Value: "test_points",
				Usage: "base name shared by the fixture and its components",
			},
			&cli.StringSliceFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "fixture formats to produce (shapefile, geojson)",
			},
			&cli.IntFlag{
				Name:  "fill",
				Usage: "pad the fixture with this many synthetic records",
			},
			&cli.BoolFlag{
				Name:  "keep-workspace",
				Usage: "keep the temporary workspace for debugging",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
			},
		},
		Action: generate,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx *cli.Context) error {
	level := slog.LevelInfo
	if ctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := fixture.ConfigDefault()
	cfg.OutDir = ctx.String("out")
	cfg.BaseName = ctx.String("base-name")
	cfg.Fill = ctx.Int("fill")
	cfg.KeepWorkspace = ctx.Bool("keep-workspace")
	if formats := ctx.StringSlice("format"); len(formats) > 0 {
		cfg.Formats = formats
	}

	gen := fixture.New(vectorio.NewRegistry(), cfg)

	artifacts, err := gen.Generate(ctx.Context)
	if err != nil {
		if errors.Is(err, vectorio.ErrUnavailable) {
			fmt.Printf("Skipping fixture generation: %s\n", err)
			fmt.Printf("You can upload your own dataset for testing instead\n")
			return nil
		}
		return fmt.Errorf("failed to create test fixture: %w", err)
	}

	for _, a := range artifacts {
		fmt.Printf("Created test fixture: %s (%s)\n", a.Path, humanize.Bytes(uint64(a.Size)))
	}
	return nil
}
