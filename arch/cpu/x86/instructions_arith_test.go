package x86

import (
	"testing"

	"github.com/dosvm/i8086/assert"
)

func newStepCPU(t *testing.T, program []uint8) *CPU {
	t.Helper()
	memory := createTestMemory(t)
	cpu, err := New(memory, WithInitialCS(0), WithInitialIP(0))
	assert.NoError(t, err)
	assert.NoError(t, memory.LoadData(0, program))
	return cpu
}

func TestAdd_AL_OverflowAtFF(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x04, 0x01}) // ADD AL,1
	cpu.SetAL(0xFF)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x00), cpu.AL())
	assert.True(t, cpu.Flags.GetCarry())
	assert.True(t, cpu.Flags.GetAuxCarry())
	assert.True(t, cpu.Flags.GetZero())
	assert.False(t, cpu.Flags.GetOverflow())
	assert.False(t, cpu.Flags.GetSign())
	assert.True(t, cpu.Flags.GetParity())
}

func TestSub_AL_BorrowAtZero(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x2C, 0x01}) // SUB AL,1
	cpu.SetAL(0x00)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0xFF), cpu.AL())
	assert.True(t, cpu.Flags.GetCarry())
	assert.True(t, cpu.Flags.GetAuxCarry())
	assert.False(t, cpu.Flags.GetOverflow())
	assert.True(t, cpu.Flags.GetSign())
	assert.True(t, cpu.Flags.GetParity())
	assert.False(t, cpu.Flags.GetZero())
}

func TestInc_AX_OverflowAt7FFF(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x40}) // INC AX
	cpu.AX = 0x7FFF
	cpu.SetCarry(false)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0x8000), cpu.AX)
	assert.True(t, cpu.Flags.GetOverflow())
	assert.True(t, cpu.Flags.GetSign())
	assert.False(t, cpu.Flags.GetZero())
	assert.False(t, cpu.Flags.GetCarry()) // INC never touches CF
}

func TestDec_AX_DoesNotTouchCarry(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x48}) // DEC AX
	cpu.AX = 1
	cpu.SetCarry(true)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint16(0), cpu.AX)
	assert.True(t, cpu.Flags.GetZero())
	assert.True(t, cpu.Flags.GetCarry())
}

func TestNeg_TwiceRestoresValue(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF6, 0xD8, 0xF6, 0xD8}) // NEG AL; NEG AL
	cpu.SetAL(0x2A)

	assert.NoError(t, cpu.Step())
	firstNeg := cpu.AL()
	assert.Equal(t, uint8(0xD6), firstNeg)
	assert.True(t, cpu.Flags.GetCarry()) // operand was non-zero

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x2A), cpu.AL())
}

func TestNeg_ZeroClearsCarry(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF6, 0xD8}) // NEG AL
	cpu.SetAL(0x00)
	cpu.SetCarry(true)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x00), cpu.AL())
	assert.False(t, cpu.Flags.GetCarry())
}

func TestCmp_DoesNotModifyOperand(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x3C, 0x05}) // CMP AL,5
	cpu.SetAL(0x05)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x05), cpu.AL()) // unchanged
	assert.True(t, cpu.Flags.GetZero())
}

func TestAdc_PropagatesIncomingCarry(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x14, 0x00}) // ADC AL,0
	cpu.SetAL(0x01)
	cpu.SetCarry(true)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x02), cpu.AL())
}

func TestSbb_PropagatesIncomingBorrow(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0x1C, 0x00}) // SBB AL,0
	cpu.SetAL(0x05)
	cpu.SetCarry(true)

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(0x04), cpu.AL())
}

func TestDiv_ByZeroIsDivideError(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF6, 0xF1}) // DIV CL
	cpu.AX = 0x0064
	cpu.CX = 0x0000

	err := cpu.Step()
	var divErr *DivideError
	assert.ErrorAs(t, err, &divErr)
	assert.True(t, cpu.Halted())
}

func TestDiv_QuotientOutOfRangeIsDivideError(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF6, 0xF1}) // DIV CL
	cpu.AX = 0xFFFF
	cpu.CX = 0x0001

	err := cpu.Step()
	var divErr *DivideError
	assert.ErrorAs(t, err, &divErr)
}

func TestDiv_NormalCase(t *testing.T) {
	cpu := newStepCPU(t, []uint8{0xF6, 0xF1}) // DIV CL
	cpu.AX = 0x0064                           // 100
	cpu.CX = 0x0009                           // 9

	assert.NoError(t, cpu.Step())
	assert.Equal(t, uint8(11), cpu.AL()) // quotient
	assert.Equal(t, uint8(1), cpu.AH())  // remainder
}
