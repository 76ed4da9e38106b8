package x86

import (
	"context"
	"errors"

	"github.com/dosvm/i8086/log"
)

// segmentOverride names the segment-override prefix active for the
// instruction currently being decoded.
type segmentOverride uint8

// Segment-override selectors.
const (
	overrideNone segmentOverride = iota
	overrideES
	overrideCS
	overrideSS
	overrideDS
)

// repeatPrefix names the REP/REPNE prefix active for the instruction
// currently being decoded.
type repeatPrefix uint8

// Repeat-prefix selectors.
const (
	repeatNone repeatPrefix = iota
	repeatEqual                // REP / REPE / REPZ
	repeatNotEqual             // REPNE / REPNZ
)

// CPU represents the full architectural state of an 8086 processor:
// the general, pointer/index and segment registers, the instruction
// pointer, the flags register, and the transient prefix state scoped
// to a single instruction.
type CPU struct {
	// General purpose registers (16-bit, with 8-bit aliased halves).
	AX uint16
	BX uint16
	CX uint16
	DX uint16

	// Pointer and index registers.
	SI uint16
	DI uint16
	BP uint16
	SP uint16

	// Segment registers.
	CS uint16
	DS uint16
	ES uint16
	SS uint16

	IP    uint16
	Flags Flags

	halted  bool
	lastErr error
	cycles  uint64
	opts    Options
	memory  *Memory
	logger  *log.Logger

	// Decode-scoped prefix state; cleared unconditionally at the start
	// of every Step before prefix bytes are parsed.
	segOverride segmentOverride
	repPrefix   repeatPrefix

	// repeatPending is set by a string instruction's single iteration
	// when a REP/REPNE prefix requires another: Step rewinds CS:IP back
	// to the prefix byte so the next Step call re-enters the same
	// instruction instead of advancing, without looping internally.
	repeatPending bool

	trace      *TraceStep
	traceSteps []TraceStep
}

// New creates a new CPU bound to the given memory, applying the reset
// vector (CS=0xF000, IP=0xFFF0, SP=0xFFFE) unless overridden by options.
func New(memory *Memory, options ...Option) (*CPU, error) {
	if memory == nil {
		return nil, ErrNilMemory
	}

	opts := NewOptions(options...)

	c := &CPU{
		CS:     opts.initialCS,
		DS:     opts.initialDS,
		ES:     opts.initialES,
		SS:     opts.initialSS,
		SP:     opts.initialSP,
		IP:     opts.initialIP,
		opts:   opts,
		memory: memory,
		logger: opts.logger,
	}
	c.SetInterrupt(opts.interruptEnabled)

	return c, nil
}

// Memory returns the CPU's bound memory.
func (c *CPU) Memory() *Memory {
	return c.memory
}

// Halted reports whether the CPU has halted (via HLT or an error outcome).
func (c *CPU) Halted() bool {
	return c.halted
}

// Cycles returns the running advisory cycle count.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Reset restores the CPU to its configured reset vector, clearing all
// general registers and flags but leaving memory contents untouched.
func (c *CPU) Reset() {
	*c = CPU{
		CS:     c.opts.initialCS,
		DS:     c.opts.initialDS,
		ES:     c.opts.initialES,
		SS:     c.opts.initialSS,
		SP:     c.opts.initialSP,
		IP:     c.opts.initialIP,
		opts:   c.opts,
		memory: c.memory,
		logger: c.logger,
	}
	c.SetInterrupt(c.opts.interruptEnabled)
}

// CalculateAddress computes the physical address of a segment:offset pair.
func (c *CPU) CalculateAddress(segment, offset uint16) uint32 {
	return PhysicalAddress(segment, offset)
}

// GetCSIP returns the physical address of the current code pointer.
func (c *CPU) GetCSIP() uint32 {
	return PhysicalAddress(c.CS, c.IP)
}

// GetFlags returns the current flags register.
func (c *CPU) GetFlags() Flags {
	return c.Flags
}

// ReadByte reads a byte from the given physical address.
func (c *CPU) ReadByte(addr uint32) uint8 {
	return c.memory.Read8(addr)
}

// ReadWord reads a little-endian word from the given physical address.
func (c *CPU) ReadWord(addr uint32) uint16 {
	return c.memory.Read16(addr)
}

// WriteByte writes a byte to the given physical address.
func (c *CPU) WriteByte(addr uint32, value uint8) {
	c.memory.Write8(addr, value)
}

// WriteWord writes a little-endian word to the given physical address.
func (c *CPU) WriteWord(addr uint32, value uint16) {
	c.memory.Write16(addr, value)
}

// OutcomeKind classifies the result of the most recent Step call.
type OutcomeKind int

// Outcome kinds.
const (
	// Continued means the instruction completed normally and the CPU
	// is ready for another Step.
	Continued OutcomeKind = iota
	// Halted means the CPU executed HLT and will not advance further.
	Halted
	// DivideErrorOutcome means a DIV/IDIV/AAM reported a divide error.
	DivideErrorOutcome
	// UndefinedOpcodeOutcome means the dispatcher found no handler for
	// the opcode byte.
	UndefinedOpcodeOutcome
)

func (k OutcomeKind) String() string {
	switch k {
	case Continued:
		return "continued"
	case Halted:
		return "halted"
	case DivideErrorOutcome:
		return "divide-error"
	case UndefinedOpcodeOutcome:
		return "undefined-opcode"
	default:
		return "unknown"
	}
}

// Outcome describes the result of the most recent Step call. Opcode is
// only meaningful when Kind is UndefinedOpcodeOutcome.
type Outcome struct {
	Kind   OutcomeKind
	Opcode uint8
}

// Outcome reports the classification of the CPU's current state, per
// the most recent Step call.
func (c *CPU) Outcome() Outcome {
	if !c.halted {
		return Outcome{Kind: Continued}
	}

	var undef *UndefinedOpcodeError
	if errors.As(c.lastErr, &undef) {
		return Outcome{Kind: UndefinedOpcodeOutcome, Opcode: undef.Opcode}
	}

	var div *DivideError
	if errors.As(c.lastErr, &div) {
		return Outcome{Kind: DivideErrorOutcome}
	}

	return Outcome{Kind: Halted}
}

// RunToCompletion steps the CPU repeatedly until it halts, an
// instruction reports an error, or ctx is cancelled. Cancellation is
// only observed between instructions, never mid-Step.
func (c *CPU) RunToCompletion(ctx context.Context) error {
	for !c.halted {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.Step(); err != nil {
			return err
		}
	}

	return nil
}

// fetchByte reads the byte at CS:IP and advances IP by one.
func (c *CPU) fetchByte() uint8 {
	b := c.memory.ReadSegmented(c.CS, c.IP)
	c.IP++
	return b
}

// fetchWord reads the word at CS:IP (little-endian) and advances IP by two.
func (c *CPU) fetchWord() uint16 {
	w := c.memory.ReadSegmented16(c.CS, c.IP)
	c.IP += 2
	return w
}

// fetchSignedByte reads a signed displacement/relative byte at CS:IP.
func (c *CPU) fetchSignedByte() int8 {
	return int8(c.fetchByte())
}

// segmentFor resolves the effective segment for a memory operand,
// honoring any active segment-override prefix over the given default.
func (c *CPU) segmentFor(defaultSeg uint16) uint16 {
	switch c.segOverride {
	case overrideES:
		return c.ES
	case overrideCS:
		return c.CS
	case overrideSS:
		return c.SS
	case overrideDS:
		return c.DS
	default:
		return defaultSeg
	}
}

// push16 decrements SP by 2 and writes value at SS:SP.
func (c *CPU) push16(value uint16) {
	c.SP -= 2
	c.memory.WriteSegmented16(c.SS, c.SP, value)
}

// pop16 reads the word at SS:SP and increments SP by 2.
func (c *CPU) pop16() uint16 {
	value := c.memory.ReadSegmented16(c.SS, c.SP)
	c.SP += 2
	return value
}

// Step decodes and executes exactly one instruction, including any
// prefix bytes, and reports the outcome via the returned error (nil on
// ordinary completion).
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	c.segOverride = overrideNone
	c.repPrefix = repeatNone

	startCS, startIP := c.CS, c.IP
	var pre TraceStep
	if c.opts.tracing {
		pre = c.snapshotTrace()
		c.memory.resetLastAccess()
	}

prefixLoop:
	for {
		opcodeAddr := c.GetCSIP()
		op := c.memory.Read8(opcodeAddr)
		switch op {
		case 0x26:
			c.segOverride = overrideES
			c.IP++
		case 0x2E:
			c.segOverride = overrideCS
			c.IP++
		case 0x36:
			c.segOverride = overrideSS
			c.IP++
		case 0x3E:
			c.segOverride = overrideDS
			c.IP++
		case 0xF2:
			c.repPrefix = repeatNotEqual
			c.IP++
		case 0xF3:
			c.repPrefix = repeatEqual
			c.IP++
		case 0xF0: // LOCK: no-op on this single-core emulator
			c.IP++
		default:
			break prefixLoop
		}
	}

	opcodeByte := c.fetchByte()
	info := &opcodeTable[opcodeByte]
	if info.exec == nil {
		c.IP-- // leave IP at the offending opcode byte
		c.halted = true
		c.lastErr = &UndefinedOpcodeError{Opcode: opcodeByte, CS: startCS, IP: startIP}
		return c.lastErr
	}

	c.cycles += uint64(info.cycles)
	err := info.exec(c)

	c.segOverride = overrideNone
	c.repPrefix = repeatNone

	if err != nil {
		c.halted = true
		c.lastErr = err
		return err
	}

	size := uint8(c.IP - startIP)

	if c.repeatPending {
		c.repeatPending = false
		c.CS, c.IP = startCS, startIP
	}

	if c.opts.tracing {
		post := c.snapshotTrace()
		post.PreAX, post.PreBX, post.PreCX, post.PreDX = pre.PreAX, pre.PreBX, pre.PreCX, pre.PreDX
		post.PreSI, post.PreDI, post.PreBP, post.PreSP = pre.PreSI, pre.PreDI, pre.PreBP, pre.PreSP
		post.PreCS, post.PreDS, post.PreES, post.PreSS = pre.PreCS, pre.PreDS, pre.PreES, pre.PreSS
		post.PreFlags = pre.PreFlags
		post.CS, post.IP, post.Opcode = startCS, startIP, opcodeByte
		post.Instruction = info.name
		post.Timing = info.cycles
		post.Cycles = c.cycles
		post.Size = size
		post.MemoryRead, post.MemoryWrite, post.MemoryAddress, post.MemoryValue = c.memory.lastAccess()
		c.traceSteps = append(c.traceSteps, post)
		if c.opts.tracingCallback != nil {
			c.opts.tracingCallback(post)
		}
	}

	return nil
}

// TraceSteps returns the recorded trace steps when tracing is enabled.
func (c *CPU) TraceSteps() []TraceStep {
	return c.traceSteps
}

func (c *CPU) snapshotTrace() TraceStep {
	return TraceStep{
		PreAX: c.AX, PreBX: c.BX, PreCX: c.CX, PreDX: c.DX,
		PreSI: c.SI, PreDI: c.DI, PreBP: c.BP, PreSP: c.SP,
		PreCS: c.CS, PreDS: c.DS, PreES: c.ES, PreSS: c.SS,
		PreFlags:  c.Flags,
		PostAX:    c.AX, PostBX: c.BX, PostCX: c.CX, PostDX: c.DX,
		PostSI:    c.SI, PostDI: c.DI, PostBP: c.BP, PostSP: c.SP,
		PostCS:    c.CS, PostDS: c.DS, PostES: c.ES, PostSS: c.SS,
		PostFlags: c.Flags,
	}
}
