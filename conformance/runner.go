package conformance

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dosvm/i8086/arch/cpu/x86"
	"github.com/dosvm/i8086/log"
)

// Runner executes fixture files against the x86 core.
type Runner struct {
	// Workers bounds how many fixture files run concurrently. Zero or
	// negative means unbounded (one goroutine per file).
	Workers int

	// Logger receives per-file progress; nil disables logging.
	Logger *log.Logger

	// Case, when >= 0, restricts each file to the single fixture at
	// that index instead of running every case.
	Case int
}

// NewRunner returns a Runner with sane defaults: all cases, one worker
// per file, logging disabled.
func NewRunner() *Runner {
	return &Runner{Case: -1}
}

// RunFiles loads and runs every fixture file in paths, giving each file
// its own goroutine from a pool bounded by r.Workers, and merges their
// reports. Cancelling ctx stops scheduling new files; files already
// running finish all of their cases.
func (r *Runner) RunFiles(ctx context.Context, paths []string) (*Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}

	var mu sync.Mutex
	total := &Report{}

	for _, path := range paths {
		path := path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			fileReport, err := r.runFile(path)
			if err != nil {
				return err
			}

			mu.Lock()
			total.merge(fileReport)
			mu.Unlock()

			if r.Logger != nil {
				r.Logger.Info("ran fixture file",
					log.String("file", path),
					log.Int("passed", fileReport.Passed),
					log.Int("failed", fileReport.Failed))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return total, err
	}

	return total, nil
}

func (r *Runner) runFile(path string) (*Report, error) {
	fixtures, err := LoadFixtureFile(path)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for i, fixture := range fixtures {
		if r.Case >= 0 && i != r.Case {
			continue
		}

		mismatches, err := runCase(fixture)
		if err != nil {
			return nil, fmt.Errorf("%s: case %d (%s): %w", path, i, fixture.Name, err)
		}

		if len(mismatches) == 0 {
			report.recordPass()
			continue
		}

		for i := range mismatches {
			mismatches[i].File = path
			mismatches[i].Fixture = fixture.Name
		}
		report.recordFail(mismatches)
	}

	return report, nil
}

// runCase builds a fresh CPU and memory for one fixture, seeds initial
// state, writes the instruction bytes at CS:IP, steps once, and
// compares the resulting state against final. A non-nil error here
// indicates a problem running the case itself (e.g. a bad register
// name); a non-empty mismatch slice indicates the instruction ran but
// produced the wrong result.
func runCase(fixture Fixture) ([]Mismatch, error) {
	memory := x86.NewMemory(nil)
	cpu, err := x86.New(memory, x86.WithInitialCS(0), x86.WithInitialIP(0))
	if err != nil {
		return nil, fmt.Errorf("constructing CPU: %w", err)
	}

	if err := applyRegs(cpu, fixture.Initial.Regs); err != nil {
		return nil, fmt.Errorf("seeding initial registers: %w", err)
	}
	for _, cell := range fixture.Initial.RAM {
		cpu.WriteByte(uint32(cell[0]), uint8(cell[1]))
	}

	addr := x86.PhysicalAddress(cpu.CS, cpu.IP)
	if err := memory.LoadData(addr, fixture.Bytes); err != nil {
		return nil, fmt.Errorf("loading instruction bytes: %w", err)
	}

	if err := cpu.Step(); err != nil {
		return nil, fmt.Errorf("stepping: %w", err)
	}

	var mismatches []Mismatch

	for _, name := range allRegisterNames {
		expected, hasFinal := fixture.Final.Regs[name]
		if !hasFinal {
			initial, ok := fixture.Initial.Regs[name]
			if !ok {
				continue
			}
			expected = initial
		}

		actual, err := getReg(cpu, name)
		if err != nil {
			return nil, err
		}

		if actual != expected {
			mismatches = append(mismatches, Mismatch{
				Field:    name,
				Expected: expected,
				Actual:   actual,
			})
		}
	}

	for _, cell := range fixture.Final.RAM {
		address, expected := uint32(cell[0]), uint8(cell[1])
		actual := cpu.ReadByte(address)
		if actual != expected {
			mismatches = append(mismatches, Mismatch{
				Field:    fmt.Sprintf("ram[0x%05X]", address),
				Expected: uint16(expected),
				Actual:   uint16(actual),
			})
		}
	}

	return mismatches, nil
}
