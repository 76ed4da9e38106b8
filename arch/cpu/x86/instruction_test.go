package x86

import (
	"testing"

	"github.com/dosvm/i8086/assert"
)

func TestOpcodeTable_KnownEntries(t *testing.T) {
	tests := []struct {
		opcode uint8
		name   string
		cycles uint8
	}{
		{0x00, "ADD r/m8,r8", 3},
		{0x90, "NOP", 3},
		{0xB0, "MOV reg8,imm8", 4},
		{0xE9, "JMP rel16", 15},
		{0xCD, "INT imm8", 51},
		{0xF4, "HLT", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := opcodeTable[tt.opcode]
			assert.NotNil(t, entry.exec)
			assert.Equal(t, tt.name, entry.name)
			assert.Equal(t, tt.cycles, entry.cycles)
		})
	}
}

func TestOpcodeTable_ReservedBytesUnregistered(t *testing.T) {
	for _, opcode := range []uint8{0xF1} {
		entry := opcodeTable[opcode]
		assert.Nil(t, entry.exec)
	}
}

func TestOpcodeTable_FullyPopulatedRanges(t *testing.T) {
	// PUSH/POP reg16 (0x50-0x5F) are unconditionally defined.
	for opcode := 0x50; opcode <= 0x5F; opcode++ {
		entry := opcodeTable[opcode]
		assert.NotNil(t, entry.exec)
	}

	// Conditional jumps 0x70-0x7F.
	for opcode := 0x70; opcode <= 0x7F; opcode++ {
		entry := opcodeTable[opcode]
		assert.NotNil(t, entry.exec)
	}
}

func TestBranchingInstructions(t *testing.T) {
	branching := BranchingInstructions()
	assert.True(t, branching.Contains("JMP rel16"))
	assert.True(t, branching.Contains("INT imm8"))
	assert.False(t, branching.Contains("NOP"))
}

func TestStringInstructions(t *testing.T) {
	strings := StringInstructions()
	assert.True(t, strings.Contains(opcodeTable[0xA4].name))
	assert.False(t, strings.Contains("NOP"))
}

func TestRepeatableInstructionsMatchStringInstructions(t *testing.T) {
	strings := StringInstructions()
	repeatable := RepeatableInstructions()
	assert.True(t, strings.Equal(repeatable))
}

func TestPortIOInstructions(t *testing.T) {
	io := PortIOInstructions()
	assert.False(t, io.IsEmpty())
	io.ForEach(func(name string) {
		assert.True(t, len(name) >= 3 && (name[:3] == "IN " || name[:3] == "OUT"))
	})
}

func TestFlagControlInstructions(t *testing.T) {
	flags := FlagControlInstructions()
	for _, name := range []string{"CLC", "STC", "CLI", "STI", "CLD", "STD", "CMC"} {
		assert.True(t, flags.Contains(name))
	}
	assert.Equal(t, 7, flags.Size())
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		s, prefix string
		expected  bool
	}{
		{"JMP rel16", "JMP", true},
		{"JMP rel16", "JZ", false},
		{"J", "JMP", false},
		{"", "", true},
	}

	for _, tt := range tests {
		result := hasPrefix(tt.s, tt.prefix)
		assert.Equal(t, tt.expected, result)
	}
}
