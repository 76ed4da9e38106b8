package x86

// opcodeHandler executes one fully-decoded instruction. The opcode
// byte itself has already been consumed by the dispatcher; the
// handler is responsible for fetching any ModR/M byte, displacement,
// and immediate operands it needs, and for advancing IP accordingly
// (or, for control-flow instructions, for setting IP/CS directly).
type opcodeHandler func(c *CPU) error

// opcodeEntry pairs a handler with its advisory timing, used only for
// the running Cycles() counter; it never gates correctness.
type opcodeEntry struct {
	exec   opcodeHandler
	cycles uint8
	name   string
}

// opcodeTable is the 256-entry primary opcode dispatch table, indexed
// by opcode byte. It is populated by the family registration functions
// below via init(), one file per instruction family.
var opcodeTable [256]opcodeEntry

// op registers the handler for a primary opcode byte.
func op(code uint8, name string, cycles uint8, handler opcodeHandler) {
	opcodeTable[code] = opcodeEntry{exec: handler, cycles: cycles, name: name}
}

func init() {
	registerDataMovementOpcodes()
	registerStackOpcodes()
	registerArithmeticOpcodes()
	registerLogicOpcodes()
	registerShiftOpcodes()
	registerBCDOpcodes()
	registerStringOpcodes()
	registerControlFlowOpcodes()
	registerIOOpcodes()
	registerMiscOpcodes()
	registerGroupOpcodes()
}
