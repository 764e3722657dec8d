// Package controller adds run/pause state and a generation counter on top of
// a model.Grid. All methods are safe for concurrent use: each one holds the
// controller lock for its full duration, so a ToggleCell racing an Advance
// lands either before or after the generation pass, never inside it.
package controller

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Controller drives a single simulation
type Controller struct {
	mu         sync.Mutex
	grid       *model.Grid
	running    bool
	generation int
}

// New builds a stopped controller over an all-dead width x height board
func New(width, height int) (*Controller, error) {
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, errors.Wrap(err, "[New] failed to build board")
	}
	return &Controller{grid: grid}, nil
}

// StartStop flips between running and stopped
func (c *Controller) StartStop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = !c.running
}

// Advance computes the next generation. It does not check Running; pacing and
// gating belong to the caller.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Advance()
	c.generation++
}

// Reset kills every cell, zeroes the generation and stops the simulation
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grid.Reset()
	c.generation = 0
	c.running = false
}

// ToggleCell flips one cell. Out of range coordinates return model.ErrOutOfBounds.
func (c *Controller) ToggleCell(x, y int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Toggle(x, y)
}

// GetCell reads one cell
func (c *Controller) GetCell(x, y int) (model.Cell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Get(x, y)
}

// Place stamps a pattern with its origin at (x, y)
func (c *Controller) Place(p model.Pattern, x, y int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Place(p, x, y)
}

// PlaceCentered stamps a pattern in the middle of the board
func (c *Controller) PlaceCentered(p model.Pattern) error {
	w, h := c.grid.Dimensions()
	pw, ph := p.Size()
	return c.Place(p, utils.Mod(w/2-pw/2, w), utils.Mod(h/2-ph/2, h))
}

// Randomize refills the board from seed. Generation and running are untouched.
func (c *Controller) Randomize(density float64, seed int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Randomize(density, seed)
}

func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

func (c *Controller) Generation() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Controller) Dimensions() (int, int) {
	// dimensions never change after New
	return c.grid.Dimensions()
}

// Population returns the number of living cells
func (c *Controller) Population() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.CountLivingCells()
}

// Hash returns a digest of the current board, see model.Grid.Hash
func (c *Controller) Hash() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Hash()
}

// Snapshot copies the board, indexed [x][y]
func (c *Controller) Snapshot() [][]model.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Snapshot()
}

// Frame returns a consistent copy of the current generation for drawing
func (c *Controller) Frame() model.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid.Clone()
}

// Board returns read-only access to the live board. Each read takes the lock
// separately; use Frame to draw a whole generation.
func (c *Controller) Board() model.View {
	return boardView{c}
}

// boardView reads through the controller lock
type boardView struct {
	c *Controller
}

func (v boardView) Width() int {
	w, _ := v.c.Dimensions()
	return w
}

func (v boardView) Height() int {
	_, h := v.c.Dimensions()
	return h
}

func (v boardView) Get(x, y int) (model.Cell, error) {
	return v.c.GetCell(x, y)
}
