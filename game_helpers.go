package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/torus-gol/controller"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

var (
	errQuit           = errors.New("quit")
	errMaxGenerations = errors.New("maximum generations reached")
)

// game is the terminal front-end: it owns pacing and input handling and
// drives a controller.
type game struct {
	ctrl     *controller.Controller
	config   utils.Config
	renderer *model.TerminalRenderer
	logger   *log.Logger
	stats    *utils.Stats

	// owned by the simulate goroutine
	tickRate      int
	seed          int64
	history       model.History
	stagnantCount int
	lastStep      time.Time
}

// frame is everything needed to draw one screen
type frame struct {
	board      model.View
	generation int
	population int
	running    bool
	status     string
	tickRate   int
	gps        float64
	avgPop     float64
	runtime    time.Duration
}

// newGame sets up the initial game state
func newGame(config utils.Config, out io.Writer, logger *log.Logger) (*game, error) {
	ctrl, err := controller.New(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame] failed to create controller")
	}

	g := &game{
		ctrl:     ctrl,
		config:   config,
		renderer: &model.TerminalRenderer{Out: out},
		logger:   logger,
		stats:    utils.NewStats(),
		tickRate: config.TickRate,
		seed:     config.Seed,
		lastStep: time.Now(),
	}

	if config.Pattern != "" {
		if err = g.placeCentered(config.Pattern); err != nil {
			return nil, errors.Wrap(err, "[newGame] failed to place initial pattern")
		}
	}
	return g, nil
}

// displayGameInfo logs the initial game information
func displayGameInfo(config utils.Config, g *game, logger *log.Logger) {
	w, h := g.ctrl.Dimensions()
	logger.Printf("Grid: %dx%d torus | Tick rate: %d/s | Initial living cells: %d",
		w, h, config.TickRate, g.ctrl.Population())
	logger.Printf("Patterns: %v", model.PatternNames())
	logger.Print(helpText)
}

// Run reads commands from in and advances the simulation while it is running,
// until the input ends, a quit command arrives, the generation limit is hit or
// ctx is cancelled.
func (g *game) Run(ctx context.Context, in io.Reader) error {
	eg, ctx := errgroup.WithContext(ctx)

	lines := make(chan string)
	// Not part of the group: a blocked read on a terminal cannot be interrupted.
	go scanLines(ctx, in, lines)

	frames := make(chan frame, 1)
	eg.Go(func() error { return g.simulate(ctx, lines, frames) })
	eg.Go(func() error { return g.render(ctx, frames) })

	err := eg.Wait()
	switch {
	case errors.Is(err, errQuit), errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, errMaxGenerations):
		g.logger.Printf("Reached maximum generations limit (%d)", g.config.MaxGenerations)
		return nil
	}
	return err
}

func scanLines(ctx context.Context, in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

func tickInterval(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}

// simulate is the only goroutine that mutates the game's pacing state
func (g *game) simulate(ctx context.Context, lines <-chan string, frames chan frame) error {
	ticker := time.NewTicker(tickInterval(g.tickRate))
	defer ticker.Stop()

	g.publish(frames)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			cmd, err := parseCommand(line)
			if err != nil {
				g.logger.Printf("ignoring input: %v", err)
				continue
			}
			if cmd.kind == cmdQuit {
				return errQuit
			}
			if g.apply(cmd) {
				ticker.Reset(tickInterval(g.tickRate))
			}
			g.publish(frames)

		case <-ticker.C:
			if !g.ctrl.Running() {
				continue
			}
			g.step()
			g.publish(frames)
			if g.config.MaxGenerations > 0 && g.ctrl.Generation() >= g.config.MaxGenerations {
				return errMaxGenerations
			}
		}
	}
}

// apply executes a command and reports whether the tick rate changed
func (g *game) apply(cmd command) bool {
	switch cmd.kind {
	case cmdStartStop:
		g.ctrl.StartStop()
		g.lastStep = time.Now()

	case cmdStep:
		if g.ctrl.Running() {
			g.logger.Print("ignoring step while running")
			return false
		}
		g.step()

	case cmdReset:
		g.ctrl.Reset()
		g.history.Clear()
		g.stagnantCount = 0
		rateChanged := g.tickRate != utils.DefaultTickRate
		g.tickRate = utils.DefaultTickRate
		return rateChanged

	case cmdToggle:
		if g.ctrl.Running() {
			g.logger.Print("ignoring toggle while running")
			return false
		}
		if err := g.ctrl.ToggleCell(cmd.x, cmd.y); err != nil {
			g.logger.Printf("ignoring toggle: %v", err)
		}

	case cmdFaster, cmdSlower:
		delta := 1
		if cmd.kind == cmdSlower {
			delta = -1
		}
		rate := utils.Clamp(g.tickRate+delta, utils.MinTickRate, utils.MaxTickRate)
		if rate == g.tickRate {
			return false
		}
		g.tickRate = rate
		return true

	case cmdPlace:
		if err := g.placeCentered(cmd.name); err != nil {
			g.logger.Printf("ignoring pattern: %v", err)
		}

	case cmdRandom:
		if err := g.ctrl.Randomize(g.config.RandomDensity, g.seed); err != nil {
			g.logger.Printf("ignoring rand: %v", err)
		}
		g.seed++
		g.history.Clear()
		g.stagnantCount = 0
	}
	return false
}

// placeCentered stamps a built-in pattern in the middle of the board
func (g *game) placeCentered(name string) error {
	p, err := model.LookupPattern(name)
	if err != nil {
		return err
	}
	return g.ctrl.PlaceCentered(p)
}

// step advances one generation and updates stats and stagnation tracking
func (g *game) step() {
	g.ctrl.Advance()

	now := time.Now()
	g.stats.Update(g.ctrl.Generation(), g.ctrl.Population(), now.Sub(g.lastStep))
	g.lastStep = now

	hash := g.ctrl.Hash()
	if g.history.IsStagnant(hash) {
		g.stagnantCount++
		if g.stagnantCount == g.config.StagnationThreshold {
			g.logger.Printf("Board stagnant at generation %d", g.ctrl.Generation())
		}
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(hash)
}

// status summarises the board for the status line
func (g *game) status(population int) string {
	switch {
	case population == 0:
		return "Extinct"
	case g.stagnantCount >= g.config.StagnationThreshold:
		return "Stagnant"
	}
	return "Active"
}

// publish hands the latest frame to the renderer, replacing one it has not drawn yet
func (g *game) publish(frames chan frame) {
	population := g.ctrl.Population()
	f := frame{
		board:      g.ctrl.Frame(),
		generation: g.ctrl.Generation(),
		population: population,
		running:    g.ctrl.Running(),
		status:     g.status(population),
		tickRate:   g.tickRate,
		gps:        g.stats.GenerationsPerSecond,
		avgPop:     g.stats.AveragePopulation,
		runtime:    g.stats.Runtime(),
	}
	select {
	case <-frames:
	default:
	}
	frames <- f
}

func (g *game) render(ctx context.Context, frames <-chan frame) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-frames:
			if err := g.draw(f); err != nil {
				return err
			}
		}
	}
}

// draw shows the status lines and the board
func (g *game) draw(f frame) error {
	if err := g.renderer.Clear(); err != nil {
		return err
	}

	state := "Stopped"
	if f.running {
		state = "Running"
	}
	density := float64(f.population) / float64(f.board.Width()*f.board.Height()) * 100

	out := g.renderer.Out
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | %s | Status: %s | Tick rate: %d\n",
		f.generation, f.population, density, state, f.status, f.tickRate)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
		f.gps, f.avgPop, f.runtime.Seconds())

	if err := g.renderer.Display(f.board); err != nil {
		return err
	}
	if !f.running {
		fmt.Fprintln(out, helpText)
	}
	return nil
}
