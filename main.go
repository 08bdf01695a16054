/*
geodesic writes procedural sphere geometry for shader test harnesses.
With no arguments it prints the edges of an icosahedron subdivided twice
in the points/lines text protocol.
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/geodesic/engine"
	"github.com/spaghettifunk/geodesic/engine/core"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	watch := flag.Bool("watch", false, "regenerate the output file whenever the configuration file changes")
	shape := flag.String("shape", "", "generator: icosphere, icosahedron or random")
	mode := flag.String("mode", "", "record mode: lines or points")
	format := flag.String("format", "", "output format: text or obj")
	subdivisions := flag.Int("subdivisions", 0, "geodesic subdivision levels")
	threshold := flag.Float64("threshold", 0, "face adjacency threshold, 0 for the analytic value")
	output := flag.String("out", "", "output file, - for standard output")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	count := flag.Int("count", 0, "random point count")
	seed := flag.Uint64("seed", 0, "random point seed")
	flag.Parse()

	// Flags override the file only when given explicitly.
	override := func(cfg *engine.ApplicationConfig) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "shape":
				cfg.Shape = engine.Shape(*shape)
			case "mode":
				cfg.Mode = *mode
			case "format":
				cfg.Format = engine.Format(*format)
			case "subdivisions":
				cfg.Subdivisions = *subdivisions
			case "threshold":
				cfg.Threshold = *threshold
			case "out":
				cfg.Output = *output
			case "log-level":
				cfg.LogLevel = core.LogLevel(*logLevel)
			case "count":
				cfg.Random.Count = *count
			case "seed":
				cfg.Random.Seed = *seed
			}
		})
	}

	cfg := engine.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = engine.LoadConfigWith(*configPath, override); err != nil {
			core.LogFatal(err.Error())
		}
	} else {
		override(cfg)
	}

	e, err := engine.New(cfg)
	if err != nil {
		core.LogFatal(err.Error())
	}
	e.SetOverride(override)

	if !*watch {
		if err := e.GenerateFile(cfg.Output); err != nil {
			core.LogFatal(err.Error())
		}
		return
	}

	if *configPath == "" {
		core.LogFatal("-watch requires -config")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		<-sigCh
		cancel()
	}()

	if err := e.Watch(ctx, *configPath); err != nil {
		core.LogFatal(err.Error())
	}
}
