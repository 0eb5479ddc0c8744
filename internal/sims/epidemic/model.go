package epidemic

import (
	"errors"
	"fmt"

	"epi-ca/internal/core"
)

// ErrCompleted is returned when Run is called on a model that already finished.
var ErrCompleted = errors.New("run already completed")

// Phase tracks the lifecycle of a run.
type Phase uint8

const (
	PhaseInitialized Phase = iota
	PhaseRunning
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseInitialized:
		return "initialized"
	case PhaseRunning:
		return "running"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Counts tallies individuals per state, indexed by State.
type Counts [NumStates]int

// Total returns the population size.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Observer is notified once before the first generation and after every
// generation of a run.
type Observer interface {
	Observe(m *Model)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(m *Model)

// Observe calls f(m).
func (f ObserverFunc) Observe(m *Model) { f(m) }

// Observers fans a notification out to several observers.
type Observers []Observer

// Observe notifies every non-nil observer in order.
func (o Observers) Observe(m *Model) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(m)
		}
	}
}

// Model is a single simulation run: the population, the parameters, the
// random source and the run counters.
type Model struct {
	params Params
	pop    *Population
	src    core.Source

	// infected marks cells whose next state was set by contagion during the
	// current decision pass.
	infected []bool

	generation int
	totalCases int
	phase      Phase
}

// New builds a run for cfg. A nil src falls back to an RNG seeded with
// cfg.Seed.
func New(cfg Config, src core.Source) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pop, err := NewPopulation(cfg.Size)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	return &Model{
		params:   cfg.Params,
		pop:      pop,
		src:      src,
		infected: make([]bool, cfg.Size*cfg.Size),
	}, nil
}

// Params returns the parameters in effect.
func (m *Model) Params() Params { return m.params }

// SetParams replaces the parameters used by subsequent generations.
func (m *Model) SetParams(p Params) error {
	if err := p.validate(); err != nil {
		return err
	}
	m.params = p
	return nil
}

// Population exposes the grid buffers for read access.
func (m *Model) Population() *Population { return m.pop }

// Size returns the edge length of the grid.
func (m *Model) Size() int { return m.pop.Size() }

// At returns the committed individual at (row, col).
func (m *Model) At(row, col int) Individual { return m.pop.Individual(row, col) }

// Generation returns the number of generations stepped so far.
func (m *Model) Generation() int { return m.generation }

// TotalCases returns the number of Healthy->Sick and Recovered->Sick
// transitions committed so far.
func (m *Model) TotalCases() int { return m.totalCases }

// Phase reports the lifecycle phase.
func (m *Model) Phase() Phase { return m.phase }

// Counts tallies the committed population by state.
func (m *Model) Counts() Counts {
	var c Counts
	for _, ind := range m.pop.cur.Cells() {
		if ind.State.Valid() {
			c[ind.State]++
		}
	}
	return c
}

// States writes the committed state of every cell into dst in row-major
// order, growing it as needed, and returns it.
func (m *Model) States(dst []uint8) []uint8 {
	cells := m.pop.cur.Cells()
	if cap(dst) < len(cells) {
		dst = make([]uint8, len(cells))
	}
	dst = dst[:len(cells)]
	for i, ind := range cells {
		dst[i] = uint8(ind.State)
	}
	return dst
}

// Run steps the model for the given number of generations, notifying obs
// before the first generation and after each one, and leaves the model
// completed.
func (m *Model) Run(generations int, obs Observer) error {
	if m.phase == PhaseCompleted {
		return ErrCompleted
	}
	if generations < 0 {
		return fmt.Errorf("%w: generations must be non-negative (got %d)", ErrInvalidConfig, generations)
	}
	m.phase = PhaseRunning
	if obs != nil {
		obs.Observe(m)
	}
	for i := 0; i < generations; i++ {
		m.Step()
		if obs != nil {
			obs.Observe(m)
		}
	}
	m.phase = PhaseCompleted
	return nil
}

// Step advances the whole population by one generation: every cell decides
// its next state, then the next buffer is committed.
func (m *Model) Step() {
	if m.phase == PhaseInitialized {
		m.phase = PhaseRunning
	}
	m.decide()
	m.commit()
	m.generation++
}

func (m *Model) decide() {
	clear(m.infected)
	n := m.pop.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			m.transition(row, col)
		}
	}
}

func (m *Model) transition(row, col int) {
	state := m.pop.cur.At(col, row).State
	switch state {
	case Dead:
		return
	case Healthy:
		if m.params.Table.Degenerate(Healthy) {
			return
		}
	case Sick:
		m.spread(row, col)
	}

	next := m.params.Table.Draw(state, m.src.Float64())
	idx := m.pop.nxt.Index(col, row)
	if m.infected[idx] {
		return
	}
	m.pop.nxt.Cells()[idx].State = next
}

// spread lets the sick individual at (row, col) contact each neighbour in its
// edge-clamped Moore neighbourhood. Only next-buffer Healthy neighbours can be
// infected.
func (m *Model) spread(row, col int) {
	nxt := m.pop.nxt
	x0, y0, x1, y1 := nxt.Window(col, row)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x == col && y == row {
				continue
			}
			if m.src.Float64() < m.params.SocialDistance {
				continue
			}
			neighbour := nxt.Ptr(x, y)
			if neighbour.State != Healthy {
				continue
			}
			if chance(m.src.Float64(), m.params.Contagion) {
				neighbour.State = Sick
				m.infected[nxt.Index(x, y)] = true
			}
		}
	}
}

// commit counts new cases and then folds the next buffer into the current
// one. Counting finishes before any cell is overwritten.
func (m *Model) commit() {
	cur := m.pop.cur.Cells()
	nxt := m.pop.nxt.Cells()
	for i := range cur {
		from, to := cur[i].State, nxt[i].State
		if (from == Healthy || from == Recovered) && to == Sick {
			m.totalCases++
		}
	}
	for i := range cur {
		cur[i].Previous = cur[i].State
		cur[i].State = nxt[i].State
		nxt[i] = cur[i]
	}
}

// chance reports whether a draw u hits probability p. A zero probability
// never fires.
func chance(u, p float64) bool {
	return p > 0 && u <= p
}
