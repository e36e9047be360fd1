// Package main is the entry point for delvegen.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/delvegen/internal/game"
	"github.com/samdwyer/delvegen/internal/gamedata"
	"github.com/samdwyer/delvegen/internal/telemetry"
	"github.com/samdwyer/delvegen/internal/world"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DELVEGEN_API_KEY and DELVEGEN_* available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	dump := flag.Bool("dump", false, "print one level as ASCII and exit")
	asJSON := flag.Bool("json", false, "print one level as JSON and exit")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "generation seed (0 = random)")
	flag.StringVar(&cfg.Preset, "preset", cfg.Preset, "generation preset id")
	flag.IntVar(&cfg.TileSize, "tile-size", cfg.TileSize, "world pixels per tile")
	flag.Parse()

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()
	telemetry.SetLogger(log.Default())

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if *dump || *asJSON {
		if err := printLevel(ctx, os.Stdout, cfg, *asJSON); err != nil {
			log.Fatalf("Failed to generate level: %v", err)
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// printLevel generates a single level from cfg and writes it to w.
func printLevel(ctx context.Context, w io.Writer, cfg game.Config, asJSON bool) error {
	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		return err
	}
	preset, err := presets.Lookup(cfg.Preset)
	if err != nil {
		return err
	}

	gen := preset.Generator()
	if cfg.TileSize > 0 {
		gen.TileSize = cfg.TileSize
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	level := gen.Generate(ctx, rand.New(rand.NewSource(seed)), preset.Options())
	level.Seed = seed

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(level); err != nil {
			return fmt.Errorf("encode level: %w", err)
		}
		return nil
	}

	census := level.Census()
	fmt.Fprint(w, level.String())
	fmt.Fprintf(w, "preset=%s seed=%d rooms=%d connected=%v\n", preset.ID, seed, len(level.Rooms), level.Connected())
	fmt.Fprintf(w, "spawn=%v exit=%v\n", level.Spawn, level.Exit)
	for _, t := range world.Tiles {
		fmt.Fprintf(w, "%s=%d ", t, census[t])
	}
	fmt.Fprintln(w)
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may have an unexpanded variable reference that doesn't
	// work, so we construct the headers here
	apiKey := os.Getenv("HONEYCOMB_DELVEGEN_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DELVEGEN_DATASET")
	if dataset == "" {
		dataset = "delvegen"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
