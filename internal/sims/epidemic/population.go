package epidemic

import (
	"fmt"

	"epi-ca/internal/core"
)

// Population holds the committed grid and the scratch buffer written during a
// generation. Both grids are indexed (column, row) by core.Grid, so callers
// use Individual(row, col).
type Population struct {
	cur *core.Grid[Individual]
	nxt *core.Grid[Individual]
}

// NewPopulation allocates a size x size population of healthy individuals with
// a single sick individual at the centre.
func NewPopulation(size int) (*Population, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidSize, size)
	}
	p := &Population{
		cur: core.NewGrid[Individual](size, size),
		nxt: core.NewGrid[Individual](size, size),
	}
	healthy := Individual{State: Healthy, Previous: Healthy}
	p.cur.Fill(healthy)
	p.nxt.Fill(healthy)

	c := size / 2
	seed := Individual{State: Sick, Previous: Healthy}
	p.cur.Set(c, c, seed)
	p.nxt.Set(c, c, seed)
	return p, nil
}

// Size returns the edge length of the square grid.
func (p *Population) Size() int { return p.cur.W }

// Individual returns the committed record at (row, col).
func (p *Population) Individual(row, col int) Individual { return p.cur.At(col, row) }

// Next returns the scratch record at (row, col).
func (p *Population) Next(row, col int) Individual { return p.nxt.At(col, row) }

