package batch

import (
	"errors"
	"math"
	"sync"
	"testing"

	"epi-ca/internal/sims/epidemic"
)

func smallConfig(runs int) epidemic.Config {
	cfg := epidemic.DefaultConfig()
	cfg.Size = 25
	cfg.Generations = 15
	cfg.Runs = runs
	cfg.Seed = 10
	return cfg
}

func TestRunIsIndependentOfWorkers(t *testing.T) {
	cfg := smallConfig(8)
	seq, err := Run(cfg, 1, Hooks{})
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	par, err := Run(cfg, 4, Hooks{})
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if len(seq) != 8 || len(par) != 8 {
		t.Fatalf("expected 8 results, got %d and %d", len(seq), len(par))
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("run %d differs: %+v vs %+v", i, seq[i], par[i])
		}
		if seq[i].Run != i || seq[i].Seed != RunSeed(cfg.Seed, i) {
			t.Fatalf("unexpected run bookkeeping %+v", seq[i])
		}
		if seq[i].Generations != cfg.Generations {
			t.Fatalf("run %d stepped %d generations", i, seq[i].Generations)
		}
		if seq[i].Counts.Total() != cfg.Size*cfg.Size {
			t.Fatalf("run %d lost individuals: %v", i, seq[i].Counts)
		}
	}
}

func TestRunHooks(t *testing.T) {
	cfg := smallConfig(3)
	var mu sync.Mutex
	observed := map[int]int{}
	done := 0
	hooks := Hooks{
		Observer: func(run int) epidemic.Observer {
			return epidemic.ObserverFunc(func(*epidemic.Model) {
				mu.Lock()
				observed[run]++
				mu.Unlock()
			})
		},
		Done: func(res Result, m *epidemic.Model) error {
			done++
			if m.Phase() != epidemic.PhaseCompleted || m.TotalCases() != res.TotalCases {
				t.Errorf("run %d handed over in phase %s", res.Run, m.Phase())
			}
			return nil
		},
	}
	if _, err := Run(cfg, 2, hooks); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if done != 3 {
		t.Fatalf("expected 3 Done calls, got %d", done)
	}
	for run := 0; run < 3; run++ {
		if observed[run] != cfg.Generations+1 {
			t.Fatalf("run %d observed %d times", run, observed[run])
		}
	}
}

func TestRunStopsOnHookError(t *testing.T) {
	boom := errors.New("boom")
	hooks := Hooks{Done: func(Result, *epidemic.Model) error { return boom }}
	results, err := Run(smallConfig(4), 1, hooks)
	if !errors.Is(err, boom) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no completed results, got %d", len(results))
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig(1)
	cfg.Size = 0
	if _, err := Run(cfg, 1, Hooks{}); !errors.Is(err, epidemic.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{{TotalCases: 2}, {TotalCases: 4}, {TotalCases: 4}, {TotalCases: 4}, {TotalCases: 5}, {TotalCases: 5}, {TotalCases: 7}, {TotalCases: 9}}
	s := Summarize(results)
	if s.Runs != 8 || s.Min != 2 || s.Max != 9 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.Mean-5) > 1e-9 {
		t.Fatalf("expected mean 5, got %v", s.Mean)
	}
	if math.Abs(s.StdDev-math.Sqrt(32.0/7)) > 1e-9 {
		t.Fatalf("unexpected sample standard deviation %v", s.StdDev)
	}
	if s.Median != 4 {
		t.Fatalf("expected empirical median 4, got %v", s.Median)
	}

	one := Summarize([]Result{{TotalCases: 3}})
	if one.StdDev != 0 || one.Mean != 3 {
		t.Fatalf("unexpected single-run summary %+v", one)
	}
	if (Summarize(nil) != Summary{}) {
		t.Fatal("empty batch should yield a zero summary")
	}
}
