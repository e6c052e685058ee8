package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultConfigPath = "config.json"
	configPathEnv     = "LIFE_CONFIG"
)

var errFinished = errors.New("simulation finished")

// game is the driver state; the engine is only touched from run's loop
type game struct {
	config      utils.Config
	engine      *model.Engine
	history     model.History
	stats       *utils.Stats
	renderer    model.TerminalRenderer
	out         io.Writer
	clearScreen bool

	stagnantCount int
	lastFrame     time.Time
}

func newGame(config utils.Config, out io.Writer) (*game, error) {
	engine, err := newEngine(config)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to build engine")
	}
	return &game{
		config:    config,
		engine:    engine,
		stats:     utils.NewStats(),
		out:       out,
		lastFrame: time.Now(),
	}, nil
}

// render draws one frame
func (g *game) render() error {
	if g.clearScreen {
		g.renderer.Clear()
	}
	displayGameStatus(g.out, g.engine, g.stats, gameStatus(g.engine.Population(), g.stagnantCount))
	return g.renderer.Display(g.out, g.engine)
}

// tick steps the engine once, renders it and decides whether to go on
func (g *game) tick() error {
	g.history.Record(g.engine.Hash())
	g.engine.Step()

	if g.history.IsStagnant(g.engine.Hash()) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	population := g.engine.Population()
	now := time.Now()
	g.stats.Update(g.engine.Generation(), population, now.Sub(g.lastFrame))
	g.lastFrame = now

	if err := g.render(); err != nil {
		return errors.Wrap(err, "[tick] failed to render")
	}

	done, reason := checkStopConditions(population, g.stagnantCount, g.engine.Generation(), g.config)
	if !done {
		return nil
	}
	if g.config.AutoRestart && reason != reasonMaxGenerations {
		slog.Info("restarting simulation", "reason", reason, "generation", g.engine.Generation())
		if err := g.engine.Initialise(g.config.Width, g.config.Height, g.config.Density); err != nil {
			return errors.Wrap(err, "[tick] failed to restart")
		}
		g.history.Reset()
		g.stagnantCount = 0
		return nil
	}
	slog.Info("stopping simulation", "reason", reason, "generation", g.engine.Generation())
	return errFinished
}

// run renders the initial grid and, on autopilot, steps once per frame
// until ctx is cancelled or the game ends
func (g *game) run(ctx context.Context) error {
	if err := g.render(); err != nil {
		return errors.Wrap(err, "[run] failed to render")
	}
	if !g.config.AutoPilot {
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	ticks := make(chan struct{})

	eg.Go(func() error {
		defer close(ticks)
		ticker := time.NewTicker(time.Duration(g.config.FrameRate))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				select {
				case ticks <- struct{}{}:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})

	eg.Go(func() error {
		for range ticks {
			if err := g.tick(); err != nil {
				return err
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, errFinished) {
		return err
	}
	return nil
}

func loadConfig() (utils.Config, error) {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigPath
	}

	config, err := utils.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("config file not found, using defaults", "path", path)
		return utils.DefaultConfig(), nil
	}
	return config, err
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	config, err := loadConfig()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	g, err := newGame(config, os.Stdout)
	if err != nil {
		slog.Error("starting game", "error", err)
		os.Exit(1)
	}
	g.clearScreen = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("simulation started",
		"width", config.Width, "height", config.Height, "density", config.Density,
		"auto_pilot", config.AutoPilot, "population", g.engine.Population())

	if err = g.run(ctx); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	slog.Info("shutting down",
		"generations", g.stats.TotalGenerations,
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", g.stats.AveragePopulation)
}
