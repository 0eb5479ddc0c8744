// Package batch runs many independent epidemic simulations and summarises the
// distribution of their outcomes.
package batch

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"epi-ca/internal/core"
	"epi-ca/internal/sims/epidemic"
)

// Result is the outcome of one run.
type Result struct {
	Run         int
	Seed        int64
	Generations int
	TotalCases  int
	Counts      epidemic.Counts
}

// Hooks let callers attach per-run observers and post-process finished runs.
type Hooks struct {
	// Observer returns the observer for a run, or nil. It may be called from
	// worker goroutines.
	Observer func(run int) epidemic.Observer
	// Done is called once per finished run from the goroutine that called Run.
	// With more than one worker the order of calls is not the run order.
	Done func(res Result, m *epidemic.Model) error
}

// RunSeed returns the seed used for the given run so that results do not
// depend on the number of workers.
func RunSeed(base int64, run int) int64 { return base + int64(run) }

// Run executes cfg.Runs independent runs of cfg.Generations generations each
// and returns their results ordered by run index. Each run builds its own
// population and random source.
func Run(cfg epidemic.Config, workers int, hooks Hooks) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Runs {
		workers = cfg.Runs
	}
	if workers == 1 {
		return runSequential(cfg, hooks)
	}
	return runParallel(cfg, workers, hooks)
}

func runSequential(cfg epidemic.Config, hooks Hooks) ([]Result, error) {
	results := make([]Result, 0, cfg.Runs)
	for run := 0; run < cfg.Runs; run++ {
		res, m, err := runOne(cfg, run, hooks)
		if err != nil {
			return results, err
		}
		if hooks.Done != nil {
			if err := hooks.Done(res, m); err != nil {
				return results, fmt.Errorf("run %d: %w", run, err)
			}
		}
		results = append(results, res)
	}
	return results, nil
}

type finished struct {
	res   Result
	model *epidemic.Model
	err   error
}

func runParallel(cfg epidemic.Config, workers int, hooks Hooks) ([]Result, error) {
	jobs := make(chan int)
	out := make(chan finished)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for run := range jobs {
				res, m, err := runOne(cfg, run, hooks)
				out <- finished{res: res, model: m, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		for run := 0; run < cfg.Runs; run++ {
			jobs <- run
		}
		close(jobs)
	}()

	var firstErr error
	results := make([]Result, 0, cfg.Runs)
	for f := range out {
		if f.err != nil {
			if firstErr == nil {
				firstErr = f.err
			}
			continue
		}
		if hooks.Done != nil && firstErr == nil {
			if err := hooks.Done(f.res, f.model); err != nil {
				firstErr = fmt.Errorf("run %d: %w", f.res.Run, err)
			}
		}
		results = append(results, f.res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Run < results[j].Run })
	return results, firstErr
}

func runOne(cfg epidemic.Config, run int, hooks Hooks) (Result, *epidemic.Model, error) {
	seed := RunSeed(cfg.Seed, run)
	m, err := epidemic.New(cfg, core.NewRNG(seed))
	if err != nil {
		return Result{}, nil, fmt.Errorf("run %d: %w", run, err)
	}
	var obs epidemic.Observer
	if hooks.Observer != nil {
		obs = hooks.Observer(run)
	}
	if err := m.Run(cfg.Generations, obs); err != nil {
		return Result{}, nil, fmt.Errorf("run %d: %w", run, err)
	}
	return Result{
		Run:         run,
		Seed:        seed,
		Generations: m.Generation(),
		TotalCases:  m.TotalCases(),
		Counts:      m.Counts(),
	}, m, nil
}

// Summary describes the distribution of total cases over a batch.
type Summary struct {
	Runs   int
	Mean   float64
	StdDev float64
	Median float64
	Min    int
	Max    int
}

// Summarize computes the case distribution of results.
func Summarize(results []Result) Summary {
	if len(results) == 0 {
		return Summary{}
	}
	totals := Totals(results)
	xs := make([]float64, len(totals))
	for i, v := range totals {
		xs[i] = float64(v)
	}
	sort.Float64s(xs)

	s := Summary{Runs: len(xs)}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	if len(xs) == 1 {
		s.StdDev = 0
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, xs, nil)
	s.Min = int(floats.Min(xs))
	s.Max = int(floats.Max(xs))
	return s
}

// Totals extracts the total case count of every result.
func Totals(results []Result) []int {
	totals := make([]int, len(results))
	for i, r := range results {
		totals[i] = r.TotalCases
	}
	return totals
}

func (s Summary) String() string {
	return fmt.Sprintf("runs %d: mean %.1f, sd %.1f, median %.0f, min %d, max %d",
		s.Runs, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
}
