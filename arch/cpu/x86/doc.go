// Package x86 provides an instruction-accurate Intel 8086/8088 CPU
// emulator for real-mode execution.
//
// This package implements the full 8086 primary opcode map: the
// segmented addressing unit, the register file (including 8/16-bit
// register aliasing), the flag engine, and per-instruction semantics
// for data movement, arithmetic, logic, shift/rotate, BCD/ASCII
// adjustment, stack operations, string operations, control flow and
// I/O, plus several undocumented opcodes exercised by conformance
// fixtures (SALC, POP CS, ESC).
//
// A CPU is constructed around a Memory instance and advances one
// instruction at a time via Step, which fetches any prefix bytes,
// decodes the opcode, executes it, and updates registers, memory and
// flags in place.
//
// Example usage:
//
//	memory := x86.NewMemory(log.New())
//	cpu, err := x86.New(memory)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := cpu.Step(); err != nil {
//		log.Fatal(err)
//	}
package x86
