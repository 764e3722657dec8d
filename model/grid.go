package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/rules"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Cell is the state of a single board position
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// View is read-only access to a board, for renderers and inspection
type View interface {
	Width() int
	Height() int
	Get(x, y int) (Cell, error)
}

// Grid is a fixed-size toroidal Game of Life board. Cells are stored row-major
// in cur; nxt is the back buffer the next generation is written into before
// the two are swapped. A Grid is not safe for concurrent use.
type Grid struct {
	width  int
	height int
	cur    []Cell
	nxt    []Cell
}

var _ View = (*Grid)(nil)

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] width and height must be positive, got %dx%d", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cur:    make([]Cell, width*height),
		nxt:    make([]Cell, width*height),
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Dimensions returns width and height
func (g *Grid) Dimensions() (int, int) {
	return g.width, g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) outside %dx%d board", op, x, y, g.width, g.height)
	}
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) (Cell, error) {
	if err := g.checkBounds("Get", x, y); err != nil {
		return Dead, err
	}
	return g.cur[g.index(x, y)], nil
}

// Set sets a cell to Alive or Dead
func (g *Grid) Set(x, y int, c Cell) error {
	if err := g.checkBounds("Set", x, y); err != nil {
		return err
	}
	if c != Dead && c != Alive {
		return errors.Wrapf(ErrInvalidCell, "[Set] value %d at (%d, %d)", c, x, y)
	}
	g.cur[g.index(x, y)] = c
	return nil
}

// Toggle flips a cell between Dead and Alive
func (g *Grid) Toggle(x, y int) error {
	if err := g.checkBounds("Toggle", x, y); err != nil {
		return err
	}
	i := g.index(x, y)
	g.cur[i] = Alive - g.cur[i]
	return nil
}

// Reset kills every cell
func (g *Grid) Reset() {
	clear(g.cur)
}

// CountNeighbors counts living neighbors of an in-bounds cell, wrapping around
// the edges of the board.
func (g *Grid) CountNeighbors(x, y int) (int, error) {
	if err := g.checkBounds("CountNeighbors", x, y); err != nil {
		return 0, err
	}
	return g.countNeighbors(x, y), nil
}

func (g *Grid) countNeighbors(x, y int) int {
	count := 0
	for j := -1; j <= 1; j++ {
		ny := utils.Mod(y+j, g.height)
		for i := -1; i <= 1; i++ {
			if i == 0 && j == 0 {
				continue
			}
			nx := utils.Mod(x+i, g.width)
			count += int(g.cur[g.index(nx, ny)])
		}
	}
	return count
}

// Advance computes the next generation into the back buffer from the current
// one, then swaps the buffers.
func (g *Grid) Advance() {
	for y := range g.height {
		for x := range g.width {
			i := g.index(x, y)
			g.nxt[i] = Dead
			if rules.ApplyConwayRules(g.countNeighbors(x, y), g.cur[i] == Alive) {
				g.nxt[i] = Alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cur {
		count += int(c)
	}
	return
}

// Hash returns an MD5 digest of the current board state
func (g *Grid) Hash() string {
	buf := make([]byte, len(g.cur))
	for i, c := range g.cur {
		buf[i] = byte(c)
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		width:  g.width,
		height: g.height,
		cur:    slices.Clone(g.cur),
		nxt:    make([]Cell, len(g.nxt)),
	}
}

// Snapshot returns a copy of the board indexed [x][y]
func (g *Grid) Snapshot() [][]Cell {
	cols := make([][]Cell, g.width)
	for x := range cols {
		cols[x] = make([]Cell, g.height)
		for y := range g.height {
			cols[x][y] = g.cur[g.index(x, y)]
		}
	}
	return cols
}

// Place stamps p onto the grid with its origin at (x, y). The origin must be
// on the board; pattern cells past an edge wrap to the opposite one.
func (g *Grid) Place(p Pattern, x, y int) error {
	if err := g.checkBounds("Place", x, y); err != nil {
		return err
	}
	for _, off := range p.Cells {
		nx := utils.Mod(x+off[0], g.width)
		ny := utils.Mod(y+off[1], g.height)
		g.cur[g.index(nx, ny)] = Alive
	}
	return nil
}

// Randomize replaces every cell, making each one alive with probability
// density. The same seed always produces the same board.
func (g *Grid) Randomize(density float64, seed int64) error {
	if density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidDensity, "[Randomize] density must be in [0,1], got %v", density)
	}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := range g.cur {
		g.cur[i] = Dead
		if rng.Float64() < density {
			g.cur[i] = Alive
		}
	}
	return nil
}
