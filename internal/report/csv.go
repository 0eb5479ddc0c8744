package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"epi-ca/internal/sims/epidemic"
)

// CSV records one row per generation per run. It is safe for concurrent use
// by observers of different runs.
type CSV struct {
	mu  sync.Mutex
	w   *csv.Writer
	err error
}

// NewCSV writes the header row to w and returns the recorder.
func NewCSV(w io.Writer) *CSV {
	c := &CSV{w: csv.NewWriter(w)}
	header := []string{"run", "generation"}
	for _, s := range epidemic.States() {
		header = append(header, s.String())
	}
	header = append(header, "total_cases")
	c.write(header)
	return c
}

// ForRun returns an observer that tags rows with the run index.
func (c *CSV) ForRun(run int) epidemic.Observer {
	return epidemic.ObserverFunc(func(m *epidemic.Model) {
		counts := m.Counts()
		row := make([]string, 0, 3+len(counts))
		row = append(row, strconv.Itoa(run), strconv.Itoa(m.Generation()))
		for _, v := range counts {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, strconv.Itoa(m.TotalCases()))
		c.write(row)
	})
}

func (c *CSV) write(row []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return
	}
	c.err = c.w.Write(row)
}

// Flush writes buffered rows and reports the first error encountered.
func (c *CSV) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Flush()
	if c.err != nil {
		return c.err
	}
	return c.w.Error()
}
