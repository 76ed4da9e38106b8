package x86

import (
	"testing"

	"github.com/dosvm/i8086/assert"
)

func TestJmpRel8_AddsSignedDisplacement(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xEB, 0x05}) // JMP +5
	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x07), cpu.IP) // 2 (past opcode+disp) + 5
}

func TestJmpRel8_NegativeDisplacement(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xEB, 0xFE}) // JMP -2 (jumps to itself)
	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x00), cpu.IP)
}

func TestJmpFar_SetsCSAndIP(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xEA, 0x34, 0x12, 0x00, 0x20}) // JMP 2000:1234
	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x1234), cpu.IP)
	assert.Equal(t, uint16(0x2000), cpu.CS)
}

func TestJz_DisplacementNegativeTwo_JumpsToItself(t *testing.T) {
	// A Jcc whose displacement is -2 (0xFE) and whose condition holds
	// lands back on the address of the Jcc instruction itself: IP
	// advances 2 bytes past the opcode during fetch, then -2 undoes it.
	cpu := newStepCPU(t, []uint8{0x74, 0xFE}) // JZ -2
	cpu.SetZero(true)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x00), cpu.IP)
}

func TestJz_NotTakenWhenZeroClear(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x74, 0x10}) // JZ +16
	cpu.SetZero(false)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x02), cpu.IP) // falls through
}

func TestCallAndRet_RoundTrips(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xE8, 0x03, 0x00, 0x90, 0x90, 0x90, 0xC3}) // CALL +3; NOP NOP NOP; RET
	cpu.SS, cpu.SP = 0x0000, 0xFFFE

	assert.NoError(t, cpu.Step()) // CALL: pushes return IP (3), jumps to 6
	assert.Equal(t, uint16(0x06), cpu.IP)
	assert.Equal(t, uint16(0xFFFC), cpu.SP)

	assert.NoError(t, cpu.Step()) // RET at address 6
	assert.Equal(t, uint16(0x03), cpu.IP)
	assert.Equal(t, uint16(0xFFFE), cpu.SP)
}

func TestLoop_DecrementsCXAndBranchesUntilZero(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xE2, 0xFE}) // LOOP -2 (loops on itself)
	cpu.CX = 3

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(2), cpu.CX)
	assert.Equal(t, uint16(0x00), cpu.IP) // branch taken, CX still nonzero

	cpu.CS, cpu.IP = 0, 0
	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(1), cpu.CX)
	assert.Equal(t, uint16(0x00), cpu.IP)

	cpu.CS, cpu.IP = 0, 0
	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0), cpu.CX)
	assert.Equal(t, uint16(0x02), cpu.IP) // CX hit zero, falls through
}

func TestJcxz_TakenWhenCXZero(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xE3, 0x04}) // JCXZ +4
	cpu.CX = 0

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x06), cpu.IP)
}

func TestHlt_HaltsTheCPU(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF4}) // HLT
	assert.NoError(t, cpu.Step())
	assert.True(t, cpu.Halted())

	// stepping again after halt is a no-op, not an error
	assert.NoError(t, cpu.Step())
}

func TestInt_PushesFlagsCSAndIPAndClearsIFAndTF(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xCD, 0x21}) // INT 0x21
	cpu.SS, cpu.SP = 0x0000, 0xFFFE
	cpu.SetInterrupt(true)
	cpu.SetTrap(true)
	// vector 0x21 -> physical address 0x84; point it at CS:IP = 0x3000:0x0050
	cpu.memory.Write16(0x21*4, 0x0050)
	cpu.memory.Write16(0x21*4+2, 0x3000)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x0050), cpu.IP)
	assert.Equal(t, uint16(0x3000), cpu.CS)
	assert.False(t, cpu.Flags.GetInterrupt())
	assert.False(t, cpu.Flags.GetTrap())
}

func TestIret_RestoresFlagsCSAndIP(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xCF}) // IRET
	cpu.SS, cpu.SP = 0x0000, 0xFFFA
	cpu.memory.Write16(PhysicalAddress(cpu.SS, 0xFFFA), 0x1234) // IP
	cpu.memory.Write16(PhysicalAddress(cpu.SS, 0xFFFC), 0x4000) // CS
	cpu.memory.Write16(PhysicalAddress(cpu.SS, 0xFFFE), 0x0046) // FLAGS (ZF|PF set)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x1234), cpu.IP)
	assert.Equal(t, uint16(0x4000), cpu.CS)
	assert.True(t, cpu.Flags.GetZero())
	assert.Equal(t, uint16(0x0000), cpu.SP)
}
