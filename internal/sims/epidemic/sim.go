package epidemic

import (
	"image/color"
	"log"

	"epi-ca/internal/core"
)

// Sim adapts a Model to the core.Sim contract so it can be driven by the
// viewer. Reset starts a fresh run.
type Sim struct {
	cfg     Config
	model   *Model
	display []uint8
}

// NewSim validates cfg and prepares the first run.
func NewSim(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "epidemic" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Size, H: s.cfg.Size} }

// Cells exposes the state ordinals of the current generation.
func (s *Sim) Cells() []uint8 { return s.display }

// Palette exposes the colours used for rendering Cells.
func (s *Sim) Palette() []color.RGBA { return Palette() }

// Model returns the run in progress.
func (s *Sim) Model() *Model { return s.model }

// Config returns the configuration used for new runs.
func (s *Sim) Config() Config { return s.cfg }

// Reset discards the current run and seeds a new one. A zero seed reuses the
// configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	m, err := New(s.cfg, core.NewRNG(seed))
	if err != nil {
		log.Printf("epidemic: reset: %v", err)
		return
	}
	s.model = m
	s.display = m.States(s.display)
}

// Step advances one generation.
func (s *Sim) Step() {
	if s.model == nil {
		return
	}
	s.model.Step()
	s.display = s.model.States(s.display)
}

func init() {
	core.Register("epidemic", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewSim(c)
	})
}
