package epidemic

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidConfig marks configuration values outside their domain.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidSize is returned for grids smaller than 1x1.
	ErrInvalidSize = fmt.Errorf("%w: grid size must be at least 1", ErrInvalidConfig)
	// ErrUnknownScenario is returned for scenario names without a parameter set.
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Scenario names.
const (
	ScenarioNoVaccine = "no-vaccine"
	ScenarioVaccine   = "vaccine"
)

// Params holds the per-scenario probabilities.
type Params struct {
	// Contagion is the chance a healthy neighbour of a sick individual falls
	// sick on contact.
	Contagion float64
	// SocialDistance is the chance any single contact is skipped.
	SocialDistance float64
	Table          Table
}

// Config controls one scenario of the epidemic simulation.
type Config struct {
	Scenario    string
	Size        int
	Generations int
	Runs        int
	Seed        int64

	Params Params
}

// DefaultConfig returns the scenario without vaccination.
func DefaultConfig() Config {
	return noVaccineConfig()
}

func noVaccineConfig() Config {
	return Config{
		Scenario:    ScenarioNoVaccine,
		Size:        166,
		Generations: 52,
		Runs:        10,
		Seed:        1,
		Params: Params{
			Contagion:      0.18,
			SocialDistance: 0,
			Table: Table{
				Healthy:   {1, 0, 0, 0, 0},
				Sick:      {0, 0.18, 0.21, 0.60, 0.01},
				Immune:    {0, 0, 0.98, 0.02, 0},
				Recovered: {0.80, 0.20, 0, 0, 0},
				Dead:      {0, 0, 0, 0, 1},
			},
		},
	}
}

func vaccineConfig() Config {
	return Config{
		Scenario:    ScenarioVaccine,
		Size:        166,
		Generations: 52,
		Runs:        1000,
		Seed:        1,
		Params: Params{
			Contagion:      0.06,
			SocialDistance: 0,
			Table: Table{
				Healthy:   {1, 0, 0, 0, 0},
				Sick:      {0, 0.10, 0.25, 0.648, 0.002},
				Immune:    {0, 0, 0.995, 0.005, 0},
				Recovered: {0.90, 0.10, 0, 0, 0},
				Dead:      {0, 0, 0, 0, 1},
			},
		},
	}
}

var scenarios = map[string]func() Config{
	ScenarioNoVaccine: noVaccineConfig,
	ScenarioVaccine:   vaccineConfig,
}

// Scenarios lists the shipped scenario names.
func Scenarios() []string {
	return []string{ScenarioNoVaccine, ScenarioVaccine}
}

// ScenarioConfig returns the parameter set registered under name.
func ScenarioConfig(name string) (Config, error) {
	build, ok := scenarios[name]
	if !ok {
		return Config{}, fmt.Errorf("%w %q", ErrUnknownScenario, name)
	}
	return build(), nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). The "scenario" key selects the base parameter set; malformed values
// for the other keys are ignored.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["scenario"]; ok && v != "" {
		base, err := ScenarioConfig(v)
		if err != nil {
			return Config{}, err
		}
		c = base
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Size = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["runs"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Runs = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["contagion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Contagion = parsed
		}
	}
	if v, ok := cfg["distance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SocialDistance = parsed
		}
	}
	return c, nil
}

// Validate rejects configurations the engine cannot run. Row sums are not
// checked here; see Table.Validate.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSize, c.Size)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must be non-negative (got %d)", ErrInvalidConfig, c.Generations)
	}
	if c.Runs < 1 {
		return fmt.Errorf("%w: runs must be at least 1 (got %d)", ErrInvalidConfig, c.Runs)
	}
	return c.Params.validate()
}

func (p Params) validate() error {
	if !isProbability(p.Contagion) {
		return fmt.Errorf("%w: contagion factor %v outside [0,1]", ErrInvalidConfig, p.Contagion)
	}
	if !isProbability(p.SocialDistance) {
		return fmt.Errorf("%w: social distance effect %v outside [0,1]", ErrInvalidConfig, p.SocialDistance)
	}
	for i, row := range p.Table {
		for j, v := range row {
			if !isProbability(v) {
				return fmt.Errorf("%w: %s->%s = %v", ErrInvalidConfig, State(i), State(j), v)
			}
		}
	}
	return nil
}

func isProbability(v float64) bool {
	return v >= 0 && v <= 1
}
