package conformance

import (
	"fmt"

	"github.com/dosvm/i8086/arch/cpu/x86"
)

// applyRegs seeds the named registers on cpu from regs. Unknown register
// names are rejected so a typo in a fixture file fails loudly rather
// than silently seeding nothing.
func applyRegs(cpu *x86.CPU, regs map[string]uint16) error {
	for name, value := range regs {
		if err := setReg(cpu, name, value); err != nil {
			return err
		}
	}
	return nil
}

func setReg(cpu *x86.CPU, name string, value uint16) error {
	switch name {
	case "ax":
		cpu.AX = value
	case "bx":
		cpu.BX = value
	case "cx":
		cpu.CX = value
	case "dx":
		cpu.DX = value
	case "si":
		cpu.SI = value
	case "di":
		cpu.DI = value
	case "bp":
		cpu.BP = value
	case "sp":
		cpu.SP = value
	case "cs":
		cpu.CS = value
	case "ds":
		cpu.DS = value
	case "es":
		cpu.ES = value
	case "ss":
		cpu.SS = value
	case "ip":
		cpu.IP = value
	case "flags":
		cpu.Flags = x86.Flags(value)
	default:
		return fmt.Errorf("unknown register name %q", name)
	}
	return nil
}

func getReg(cpu *x86.CPU, name string) (uint16, error) {
	switch name {
	case "ax":
		return cpu.AX, nil
	case "bx":
		return cpu.BX, nil
	case "cx":
		return cpu.CX, nil
	case "dx":
		return cpu.DX, nil
	case "si":
		return cpu.SI, nil
	case "di":
		return cpu.DI, nil
	case "bp":
		return cpu.BP, nil
	case "sp":
		return cpu.SP, nil
	case "cs":
		return cpu.CS, nil
	case "ds":
		return cpu.DS, nil
	case "es":
		return cpu.ES, nil
	case "ss":
		return cpu.SS, nil
	case "ip":
		return cpu.IP, nil
	case "flags":
		return uint16(cpu.Flags), nil
	default:
		return 0, fmt.Errorf("unknown register name %q", name)
	}
}

// allRegisterNames lists every register a fixture may reference, used
// to check unmentioned registers remain at their initial value.
var allRegisterNames = []string{
	"ax", "bx", "cx", "dx", "si", "di", "bp", "sp",
	"cs", "ds", "es", "ss", "ip", "flags",
}
