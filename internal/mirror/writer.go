package mirror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/rheed-regctl/internal/status"
)

// Client is the exact contract the mirror uses to reach status memory.
type Client interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Plan locates the controller status block in the mirror's memory.
type Plan struct {
	Endpoint string
	Address  uint16
	NumRegs  int
}

// Writer delivers controller status snapshots into Modbus holding registers.
// The first write, and the first write after any failure, asserts the full
// block. Otherwise only runs of changed slots are written.
type Writer struct {
	plan Plan
	cli  Client

	needFull bool
	last     []uint16
}

// New builds a mirror writer.
func New(plan Plan, cli Client) *Writer {
	return &Writer{
		plan:     plan,
		cli:      cli,
		needFull: true,
	}
}

// WriteStatus delivers a snapshot verbatim.
func (w *Writer) WriteStatus(s status.Snapshot) error {
	if w == nil || w.cli == nil {
		return errors.New("mirror: disabled")
	}

	regs := status.Encode(s, w.plan.NumRegs)

	// ------------------------------------------------------------
	// Full block write (re-assert)
	// ------------------------------------------------------------
	if w.needFull || len(w.last) != len(regs) {
		if err := w.cli.WriteRegisters(w.plan.Address, regs); err != nil {
			w.needFull = true
			return fmt.Errorf("mirror: full block write failed ep=%s: %w", w.plan.Endpoint, err)
		}
		w.needFull = false
		w.last = regs
		return nil
	}

	var errs []string

	for _, r := range changedRuns(w.last, regs) {
		addr := w.plan.Address + uint16(r.start)
		if err := w.cli.WriteRegisters(addr, regs[r.start:r.end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d: %v", r.start, r.end-1, err))
			continue
		}
		copy(w.last[r.start:r.end], regs[r.start:r.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt — re-assert on next call.
		w.needFull = true
		return errors.New("mirror: " + strings.Join(errs, " | "))
	}

	return nil
}

type run struct{ start, end int }

// changedRuns returns half-open ranges where prev and next differ.
func changedRuns(prev, next []uint16) []run {
	var out []run
	for i := 0; i < len(next); i++ {
		if prev[i] == next[i] {
			continue
		}
		j := i + 1
		for j < len(next) && prev[j] != next[j] {
			j++
		}
		out = append(out, run{start: i, end: j})
		i = j
	}
	return out
}
