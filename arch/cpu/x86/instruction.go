package x86

// registerStackOpcodes wires up PUSH/POP of the general and segment
// registers plus PUSHF/POPF.
func registerStackOpcodes() {
	for i := uint8(0); i < 8; i++ {
		reg := i
		op(0x50+i, "PUSH reg16", 11, func(c *CPU) error {
			// Decrement SP before reading the pushed register: PUSH SP
			// (reg==4) must store the already-decremented value, per the
			// 8086's decrement-then-write ordering.
			c.SP -= 2
			c.memory.WriteSegmented16(c.SS, c.SP, c.getReg16(reg))
			return nil
		})
		op(0x58+i, "POP reg16", 8, func(c *CPU) error {
			c.setReg16(reg, c.pop16())
			return nil
		})
	}

	op(0x06, "PUSH ES", 10, func(c *CPU) error { c.push16(c.ES); return nil })
	op(0x07, "POP ES", 8, func(c *CPU) error { c.ES = c.pop16(); return nil })
	op(0x0E, "PUSH CS", 10, func(c *CPU) error { c.push16(c.CS); return nil })
	// POP CS (0x0F) is an undocumented-but-defined 8086 form; later
	// processors repurpose 0x0F as a two-byte opcode escape.
	op(0x0F, "POP CS", 8, func(c *CPU) error { c.CS = c.pop16(); return nil })
	op(0x16, "PUSH SS", 10, func(c *CPU) error { c.push16(c.SS); return nil })
	op(0x17, "POP SS", 8, func(c *CPU) error { c.SS = c.pop16(); return nil })
	op(0x1E, "PUSH DS", 10, func(c *CPU) error { c.push16(c.DS); return nil })
	op(0x1F, "POP DS", 8, func(c *CPU) error { c.DS = c.pop16(); return nil })

	op(0x9C, "PUSHF", 10, func(c *CPU) error {
		c.push16(uint16(c.Flags) | reservedOnBoot)
		return nil
	})
	op(0x9D, "POPF", 8, func(c *CPU) error {
		c.Flags = Flags(c.pop16()) | reservedOnBoot
		return nil
	})
}
