package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"epi-ca/internal/sims/epidemic"
)

// Console prints per-generation state counts and per-run summaries. Counts
// are only printed when Verbose is set; summaries are always printed.
type Console struct {
	W       io.Writer
	Verbose bool
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, verbose bool) *Console {
	return &Console{W: w, Verbose: verbose}
}

// Headers prints the state names in report order.
func (c *Console) Headers() {
	if !c.Verbose {
		return
	}
	names := make([]string, 0, epidemic.NumStates)
	for _, s := range epidemic.States() {
		names = append(names, s.String())
	}
	fmt.Fprintln(c.W, strings.Join(names, "\t"))
}

// Counts prints one line of per-state counts.
func (c *Console) Counts(counts epidemic.Counts) {
	if !c.Verbose {
		return
	}
	fmt.Fprintln(c.W, FormatCounts(counts))
}

// Observe prints the headers before the first generation and the counts
// after every generation.
func (c *Console) Observe(m *epidemic.Model) {
	if m.Generation() == 0 {
		c.Headers()
	}
	c.Counts(m.Counts())
}

// Summary prints the case total of a finished run.
func (c *Console) Summary(run, totalCases int) {
	fmt.Fprintf(c.W, "run %d: total cases %d\n", run, totalCases)
}

// Population prints the committed state ordinal of every cell as a table.
func (c *Console) Population(m *epidemic.Model) {
	n := m.Size()
	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(strconv.Itoa(int(m.At(row, col).State)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	io.WriteString(c.W, b.String())
}

// FormatCounts renders counts tab-separated in state order.
func FormatCounts(counts epidemic.Counts) string {
	parts := make([]string, len(counts))
	for i, v := range counts {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, "\t")
}
