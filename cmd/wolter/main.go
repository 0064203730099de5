package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lukaszgryglicki/wolter/internal/wolter"
)

const defaultConfig = "configs/reference.json"

func main() {
	// .env never overrides variables that are already set
	_ = godotenv.Load()

	wolter.Debug = os.Getenv("DEBUG") != ""
	wolter.PNG = os.Getenv("PNG") != ""
	wolter.RAW = os.Getenv("RAW") != ""
	wolter.CSV = os.Getenv("CSV") != ""
	wolter.PLOT = os.Getenv("PLOT") != ""
	wolter.GIF = os.Getenv("GIF") != ""
	wolter.Cull = os.Getenv("NO_CULL") == ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case len(os.Args) > 1 && os.Args[1] == "ray":
		err = traceRay(os.Args[2:])
	case len(os.Args) > 1 && os.Args[1] == "retrace":
		if len(os.Args) != 3 {
			err = fmt.Errorf("usage: %s retrace rays.csv", os.Args[0])
			break
		}
		err = wolter.Retrace(ctx, os.Getenv("WOLTER_CONFIG"), os.Args[2])
	default:
		cfg := os.Getenv("WOLTER_CONFIG")
		if cfg == "" {
			cfg = defaultConfig
		}
		if len(os.Args) > 1 {
			cfg = os.Args[1]
		}
		err = wolter.Run(ctx, cfg)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// traceRay handles: wolter ray rx ry rz dx dy dz
func traceRay(args []string) error {
	if len(args) != 6 {
		return fmt.Errorf("usage: %s ray rx ry rz dx dy dz", os.Args[0])
	}
	var v [6]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("argument %d (%q): %w", i+1, a, err)
		}
		v[i] = f
	}
	origin := wolter.Vector3{X: v[0], Y: v[1], Z: v[2]}
	dir := wolter.Vector3{X: v[3], Y: v[4], Z: v[5]}
	return wolter.TraceRay(os.Getenv("WOLTER_CONFIG"), origin, dir, os.Stdout)
}
