package x86

import (
	"sync"

	"github.com/dosvm/i8086/set"
)

// Instruction categorization, built from the registered opcode table's
// mnemonics rather than a hand-maintained name list, so it can never
// drift out of sync with the handlers actually wired up in opcode.go.
// Useful for the conformance harness's failure reports (grouping
// mismatches by instruction class) and for any future disassembler.
//
// Built lazily behind a sync.Once: opcode.go's own init() populates
// opcodeTable, and Go does not guarantee that init runs before this
// package's other init functions, so scanning opcodeTable must not
// happen at init time.
var (
	categoriesOnce sync.Once

	branchingInstructions   set.Set[string]
	stringInstructions      set.Set[string]
	repeatableInstructions  set.Set[string]
	portIOInstructions      set.Set[string]
	flagControlInstructions set.Set[string]
)

func buildCategories() {
	branchingInstructions = set.New[string]()
	stringInstructions = set.New[string]()
	repeatableInstructions = set.New[string]()
	portIOInstructions = set.New[string]()
	flagControlInstructions = set.New[string]()

	for _, entry := range opcodeTable {
		if entry.exec == nil {
			continue
		}
		name := entry.name
		switch {
		case hasPrefix(name, "J"), hasPrefix(name, "CALL"), hasPrefix(name, "RET"),
			hasPrefix(name, "LOOP"), name == "INT imm8" || name == "INT3" || name == "INTO" || name == "IRET":
			branchingInstructions.Add(name)
		}
		switch {
		case hasPrefix(name, "MOVSB"), hasPrefix(name, "MOVSW"),
			hasPrefix(name, "CMPSB"), hasPrefix(name, "CMPSW"),
			hasPrefix(name, "STOSB"), hasPrefix(name, "STOSW"),
			hasPrefix(name, "LODSB"), hasPrefix(name, "LODSW"),
			hasPrefix(name, "SCASB"), hasPrefix(name, "SCASW"):
			stringInstructions.Add(name)
			repeatableInstructions.Add(name)
		}
		switch {
		case hasPrefix(name, "IN "), hasPrefix(name, "OUT "):
			portIOInstructions.Add(name)
		}
		switch name {
		case "CLC", "STC", "CMC", "CLI", "STI", "CLD", "STD":
			flagControlInstructions.Add(name)
		}
	}
}

// BranchingInstructions returns the mnemonics of all opcodes that can
// change control flow.
func BranchingInstructions() set.Set[string] {
	categoriesOnce.Do(buildCategories)
	return branchingInstructions
}

// StringInstructions returns the mnemonics of the SI/DI-driven string
// primitives.
func StringInstructions() set.Set[string] {
	categoriesOnce.Do(buildCategories)
	return stringInstructions
}

// RepeatableInstructions returns the mnemonics of instructions that
// honor an active REP/REPE/REPNE prefix.
func RepeatableInstructions() set.Set[string] {
	categoriesOnce.Do(buildCategories)
	return repeatableInstructions
}

// PortIOInstructions returns the mnemonics of the IN/OUT family.
func PortIOInstructions() set.Set[string] {
	categoriesOnce.Do(buildCategories)
	return portIOInstructions
}

// FlagControlInstructions returns the mnemonics of instructions whose
// only effect is to set or clear a flag bit directly.
func FlagControlInstructions() set.Set[string] {
	categoriesOnce.Do(buildCategories)
	return flagControlInstructions
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
