package app

import (
	"flag"

	"epi-ca/internal/sims/epidemic"
)

// Config represents the command-line parameters shared by the CLI and the
// viewer. Scenario values are only overridden by flags that were set
// explicitly.
type Config struct {
	Scenario    string
	Size        int
	Generations int
	Runs        int
	Seed        int64
	Contagion   float64
	Distance    float64

	Verbose  bool
	Dump     bool
	Image    bool
	ImageDir string
	Video    bool
	Chart    bool
	Hist     string
	CSV      string
	Workers  int

	Scale int
	TPS   int
	Rate  int
}

// NewConfig returns a Config populated with the default scenario.
func NewConfig() *Config {
	d := epidemic.DefaultConfig()
	return &Config{
		Scenario:    d.Scenario,
		Size:        d.Size,
		Generations: d.Generations,
		Runs:        d.Runs,
		Seed:        d.Seed,
		Contagion:   d.Params.Contagion,
		Distance:    d.Params.SocialDistance,
		ImageDir:    "img",
		Workers:     1,
		Scale:       4,
		TPS:         60,
		Rate:        8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "parameter set: no-vaccine or vaccine")
	fs.IntVar(&c.Size, "size", c.Size, "grid edge length")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations per run")
	fs.IntVar(&c.Runs, "runs", c.Runs, "number of independent runs")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base seed; run i uses seed+i")
	fs.Float64Var(&c.Contagion, "contagion", c.Contagion, "probability a contact with a sick neighbour infects")
	fs.Float64Var(&c.Distance, "distance", c.Distance, "probability a contact is avoided")

	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "print state counts for every generation")
	fs.BoolVar(&c.Dump, "dump", c.Dump, "print the final grid of every run")
	fs.BoolVar(&c.Image, "image", c.Image, "save the final grid of every run as gen<run>.png")
	fs.StringVar(&c.ImageDir, "img-dir", c.ImageDir, "directory for images, videos and charts")
	fs.BoolVar(&c.Video, "video", c.Video, "record every run as an MJPEG AVI")
	fs.BoolVar(&c.Chart, "chart", c.Chart, "plot the state counts of every run")
	fs.StringVar(&c.Hist, "hist", c.Hist, "write a histogram of total cases to this file")
	fs.StringVar(&c.CSV, "csv", c.CSV, "write per-generation counts to this CSV file")
	fs.IntVar(&c.Workers, "workers", c.Workers, "runs simulated in parallel")

	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "viewer generations per second")
}

// SimConfig resolves the scenario and applies the flags set on fs.
func (c *Config) SimConfig(fs *flag.FlagSet) (epidemic.Config, error) {
	cfg, err := epidemic.ScenarioConfig(c.Scenario)
	if err != nil {
		return epidemic.Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = c.Size
		case "generations":
			cfg.Generations = c.Generations
		case "runs":
			cfg.Runs = c.Runs
		case "seed":
			cfg.Seed = c.Seed
		case "contagion":
			cfg.Params.Contagion = c.Contagion
		case "distance":
			cfg.Params.SocialDistance = c.Distance
		}
	})
	if err := cfg.Validate(); err != nil {
		return epidemic.Config{}, err
	}
	return cfg, nil
}
