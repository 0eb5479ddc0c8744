package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T { return g.data[y*g.W+x] }

// Ptr returns a pointer to the value stored at (x, y).
func (g *Grid[T]) Ptr(x, y int) *T { return &g.data[y*g.W+x] }

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom overwrites the grid with the contents of src. Grids of different
// dimensions are left untouched and false is returned.
func (g *Grid[T]) CopyFrom(src *Grid[T]) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Window returns the Moore neighbourhood bounds around (x, y) clamped to the
// grid edges. The ranges are half-open: [x0, x1) and [y0, y1).
func (g *Grid[T]) Window(x, y int) (x0, y0, x1, y1 int) {
	x0, y0 = max(0, x-1), max(0, y-1)
	x1, y1 = min(g.W, x+2), min(g.H, y+2)
	return x0, y0, x1, y1
}
