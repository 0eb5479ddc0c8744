package epidemic

import (
	"errors"
	"fmt"
	"math"
)

// ErrRowSum is returned by Table.Validate when a row is not a distribution.
var ErrRowSum = errors.New("transition row does not sum to 1")

// RowTolerance is the slack allowed when checking that rows sum to 1.
const RowTolerance = 1e-9

// Table holds transition probabilities: row = current state, column = next
// state.
type Table [NumStates][NumStates]float64

// Draw picks the next state for s by inverse-CDF sampling with u in [0, 1).
// Zero-probability entries are never chosen. When rounding leaves the walk
// without a match the last state of the row is returned.
func (t *Table) Draw(s State, u float64) State {
	sum := 0.0
	for i, p := range t[s] {
		if p <= 0 {
			continue
		}
		sum += p
		if sum >= u {
			return State(i)
		}
	}
	return State(NumStates - 1)
}

// Degenerate reports whether row s keeps the state in place with certainty.
func (t *Table) Degenerate(s State) bool {
	return t[s][s] >= 1
}

// RowSums returns the sum of every row.
func (t *Table) RowSums() [NumStates]float64 {
	var sums [NumStates]float64
	for i, row := range t {
		for _, p := range row {
			sums[i] += p
		}
	}
	return sums
}

// Validate checks that every entry is a probability and every row sums to 1
// within tol.
func (t *Table) Validate(tol float64) error {
	for i, row := range t {
		for j, p := range row {
			if p < 0 || p > 1 || math.IsNaN(p) {
				return fmt.Errorf("%w: %s->%s = %v", ErrInvalidConfig, State(i), State(j), p)
			}
		}
	}
	for i, sum := range t.RowSums() {
		if math.Abs(sum-1) > tol {
			return fmt.Errorf("%w: %s row sums to %v", ErrRowSum, State(i), sum)
		}
	}
	return nil
}
