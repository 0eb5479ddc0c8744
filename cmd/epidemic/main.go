// Command epidemic runs the epidemic automaton headless and reports the state
// counts and total cases of every run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"epi-ca/internal/app"
	"epi-ca/internal/batch"
	"epi-ca/internal/charts"
	"epi-ca/internal/render"
	"epi-ca/internal/report"
	"epi-ca/internal/sims/epidemic"
)

const (
	videoScale = 3
	videoFPS   = 5
	histBins   = 20
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg, err := cfg.SimConfig(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := simCfg.Params.Table.Validate(epidemic.RowTolerance); err != nil {
		log.Printf("warning: %v", err)
	}

	workers := cfg.Workers
	if cfg.Verbose && workers != 1 {
		// Per-generation output of concurrent runs would interleave.
		log.Printf("verbose output forces sequential runs")
		workers = 1
	}

	console := report.NewConsole(os.Stdout, cfg.Verbose)

	var csvOut *report.CSV
	if cfg.CSV != "" {
		f, err := os.Create(cfg.CSV)
		if err != nil {
			log.Fatalf("csv: %v", err)
		}
		defer f.Close()
		csvOut = report.NewCSV(f)
	}

	curves := make([]*charts.Curve, simCfg.Runs)
	recorders := make([]*render.Recorder, simCfg.Runs)

	hooks := batch.Hooks{
		Observer: func(run int) epidemic.Observer {
			var obs epidemic.Observers
			if cfg.Verbose {
				obs = append(obs, console)
			}
			if csvOut != nil {
				obs = append(obs, csvOut.ForRun(run))
			}
			if cfg.Chart {
				curves[run] = &charts.Curve{}
				obs = append(obs, curves[run])
			}
			if cfg.Video {
				path := filepath.Join(cfg.ImageDir, fmt.Sprintf("gen%d.avi", run))
				rec, err := render.NewRecorder(path, simCfg.Size, videoScale, videoFPS)
				if err != nil {
					log.Printf("run %d: %v", run, err)
				} else {
					recorders[run] = rec
					obs = append(obs, rec)
				}
			}
			if len(obs) == 0 {
				return nil
			}
			return obs
		},
		Done: func(res batch.Result, m *epidemic.Model) error {
			console.Summary(res.Run, res.TotalCases)
			if cfg.Dump {
				console.Population(m)
			}
			if cfg.Image {
				img, invalid := render.Image(m.Size(), m.Size(), m.States(nil), epidemic.Palette())
				if invalid > 0 {
					log.Printf("run %d: %d cells have no colour", res.Run, invalid)
				}
				path, err := render.SavePNG(cfg.ImageDir, render.FrameName(res.Run), img)
				if err != nil {
					return err
				}
				log.Printf("saved %s", path)
			}
			if rec := recorders[res.Run]; rec != nil {
				if err := rec.Close(); err != nil {
					return err
				}
				if rec.Invalid() > 0 {
					log.Printf("run %d: %d video pixels have no colour", res.Run, rec.Invalid())
				}
			}
			if c := curves[res.Run]; c != nil {
				if err := os.MkdirAll(cfg.ImageDir, 0o755); err != nil {
					return err
				}
				path := filepath.Join(cfg.ImageDir, fmt.Sprintf("curve%d.png", res.Run))
				title := fmt.Sprintf("%s run %d", simCfg.Scenario, res.Run)
				if err := c.Save(path, title); err != nil {
					log.Printf("run %d: %v", res.Run, err)
				}
			}
			return nil
		},
	}

	results, runErr := batch.Run(simCfg, workers, hooks)
	if csvOut != nil {
		if err := csvOut.Flush(); err != nil {
			log.Printf("csv: %v", err)
		}
	}
	if runErr != nil {
		log.Fatalf("batch: %v", runErr)
	}

	summary := batch.Summarize(results)
	fmt.Println(summary)

	if cfg.Hist != "" {
		title := fmt.Sprintf("Total cases over %d runs (%s)", len(results), simCfg.Scenario)
		if err := charts.Histogram(batch.Totals(results), histBins, cfg.Hist, title); err != nil {
			log.Fatalf("histogram: %v", err)
		}
		log.Printf("saved %s", cfg.Hist)
	}
}
