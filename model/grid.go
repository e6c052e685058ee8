package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

const (
	DefaultWidth   = 50
	DefaultHeight  = 50
	DefaultDensity = 5

	MinDensity = 0
	MaxDensity = 10
)

// Engine owns a bounded Life grid. The plane does not wrap: cells outside
// the grid are never counted as neighbours.
//
// An Engine is not safe for concurrent use; callers serialize access.
type Engine struct {
	width      int // number of rows
	height     int // number of columns
	cells      [][]bool
	generation int

	rand *rand.Rand
	pool *CellPool
}

// Option configures an Engine at construction
type Option func(*Engine)

// WithSource seeds cell randomization from src instead of the clock
func WithSource(src rand.Source) Option {
	return func(e *Engine) {
		e.rand = rand.New(src)
	}
}

// WithPool recycles retired generations through pool
func WithPool(pool *CellPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// Cell is a read-only view of one position, produced by Cells
type Cell struct {
	Row   int
	Col   int
	Alive bool

	engine *Engine
}

// Neighbours returns the live neighbour count of the cell against the engine's current grid
func (c Cell) Neighbours() int {
	return c.engine.countNeighbours(c.Row, c.Col)
}

// New creates an engine of width rows by height columns, each cell alive
// with a probability of roughly density/10
func New(width, height, density int, opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if err := e.Initialise(width, height, density); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialise discards the current grid and seeds a new one. The engine is
// left unchanged when the arguments are rejected.
func (e *Engine) Initialise(width, height, density int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimension, "[Initialise] width: %d, height: %d", width, height)
	}
	if density < MinDensity || density > MaxDensity {
		return errors.Wrapf(ErrInvalidDensity, "[Initialise] density: %d", density)
	}

	chance := 0.1 * float64(density)
	cells := newTable(e.pool, width, height)
	for row := range width {
		for col := range height {
			cells[row][col] = math.Floor(e.rand.Float64()+chance) >= 1
		}
	}

	e.retire(e.cells)
	e.width = width
	e.height = height
	e.cells = cells
	e.generation = 0
	return nil
}

// Width returns the number of rows
func (e *Engine) Width() int {
	return e.width
}

// Height returns the number of columns
func (e *Engine) Height() int {
	return e.height
}

// Generation returns the number of steps taken since the last Initialise
func (e *Engine) Generation() int {
	return e.generation
}

func (e *Engine) inBounds(row, col int) bool {
	return row >= 0 && row < e.width && col >= 0 && col < e.height
}

// Alive reports whether the cell at row, col is alive
func (e *Engine) Alive(row, col int) (bool, error) {
	if !e.inBounds(row, col) {
		return false, errors.Wrapf(ErrOutOfRange, "[Alive] row: %d, col: %d", row, col)
	}
	return e.cells[row][col], nil
}

// NeighbourCount returns the number of live cells around row, col, in [0, 8]
func (e *Engine) NeighbourCount(row, col int) (int, error) {
	if !e.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfRange, "[NeighbourCount] row: %d, col: %d", row, col)
	}
	return e.countNeighbours(row, col), nil
}

// countNeighbours scans the 3x3 window clamped to the grid, then removes the centre
func (e *Engine) countNeighbours(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(e.width-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(e.height-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if e.cells[r][c] {
				count++
			}
		}
	}

	if e.cells[row][col] {
		count--
	}
	return count
}

// Step advances the grid by one generation. The next generation is built
// entirely from the current one and swapped in once complete.
func (e *Engine) Step() {
	next := newTable(e.pool, e.width, e.height)
	for row := range e.width {
		for col := range e.height {
			next[row][col] = rules.Next(e.cells[row][col], e.countNeighbours(row, col))
		}
	}

	prev := e.cells
	e.cells = next
	e.generation++
	e.retire(prev)
}

func (e *Engine) retire(cells [][]bool) {
	if e.pool != nil {
		e.pool.Put(cells)
	}
}

// Toggle flips the cell at row, col without advancing the generation
func (e *Engine) Toggle(row, col int) error {
	if !e.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfRange, "[Toggle] row: %d, col: %d", row, col)
	}
	e.cells[row][col] = !e.cells[row][col]
	return nil
}

// Cells yields every cell in row-major order. Each pass reads the grid as
// it is when the pass reaches that cell.
func (e *Engine) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for row := 0; row < e.width; row++ {
			for col := 0; col < e.height; col++ {
				if !yield(Cell{Row: row, Col: col, Alive: e.cells[row][col], engine: e}) {
					return
				}
			}
		}
	}
}

// Population returns the number of live cells
func (e *Engine) Population() (count int) {
	for _, row := range e.cells {
		for _, alive := range row {
			if alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 digest of the grid in row-major order
func (e *Engine) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", e.width, e.height)
	for _, row := range e.cells {
		for _, alive := range row {
			if alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
