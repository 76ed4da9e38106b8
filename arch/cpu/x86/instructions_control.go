package x86

// registerControlFlowOpcodes wires up unconditional and conditional
// jumps, calls, returns, loop instructions and software interrupts.
func registerControlFlowOpcodes() {
	op(0xEB, "JMP rel8", 15, func(c *CPU) error {
		rel := c.fetchSignedByte()
		c.IP = uint16(int32(c.IP) + int32(rel))
		return nil
	})
	op(0xE9, "JMP rel16", 15, func(c *CPU) error {
		rel := int16(c.fetchWord())
		c.IP = uint16(int32(c.IP) + int32(rel))
		return nil
	})
	op(0xEA, "JMP far", 15, func(c *CPU) error {
		newIP := c.fetchWord()
		newCS := c.fetchWord()
		c.IP = newIP
		c.CS = newCS
		return nil
	})

	registerConditionalJumps()

	op(0xE8, "CALL rel16", 19, func(c *CPU) error {
		rel := int16(c.fetchWord())
		c.push16(c.IP)
		c.IP = uint16(int32(c.IP) + int32(rel))
		return nil
	})
	op(0x9A, "CALL far", 28, func(c *CPU) error {
		newIP := c.fetchWord()
		newCS := c.fetchWord()
		c.push16(c.CS)
		c.push16(c.IP)
		c.CS = newCS
		c.IP = newIP
		return nil
	})

	op(0xC3, "RET", 8, func(c *CPU) error {
		c.IP = c.pop16()
		return nil
	})
	op(0xC2, "RET imm16", 12, func(c *CPU) error {
		imm := c.fetchWord()
		c.IP = c.pop16()
		c.SP += imm
		return nil
	})
	op(0xCB, "RETF", 18, func(c *CPU) error {
		c.IP = c.pop16()
		c.CS = c.pop16()
		return nil
	})
	op(0xCA, "RETF imm16", 17, func(c *CPU) error {
		imm := c.fetchWord()
		c.IP = c.pop16()
		c.CS = c.pop16()
		c.SP += imm
		return nil
	})

	op(0xE2, "LOOP", 17, func(c *CPU) error {
		rel := c.fetchSignedByte()
		c.CX--
		if c.CX != 0 {
			c.IP = uint16(int32(c.IP) + int32(rel))
		}
		return nil
	})
	op(0xE1, "LOOPE", 18, func(c *CPU) error {
		rel := c.fetchSignedByte()
		c.CX--
		if c.CX != 0 && c.Flags.GetZero() {
			c.IP = uint16(int32(c.IP) + int32(rel))
		}
		return nil
	})
	op(0xE0, "LOOPNE", 19, func(c *CPU) error {
		rel := c.fetchSignedByte()
		c.CX--
		if c.CX != 0 && !c.Flags.GetZero() {
			c.IP = uint16(int32(c.IP) + int32(rel))
		}
		return nil
	})
	op(0xE3, "JCXZ", 18, func(c *CPU) error {
		rel := c.fetchSignedByte()
		if c.CX == 0 {
			c.IP = uint16(int32(c.IP) + int32(rel))
		}
		return nil
	})

	op(0xCD, "INT imm8", 51, func(c *CPU) error {
		vector := c.fetchByte()
		c.raiseInterrupt(vector)
		return nil
	})
	op(0xCC, "INT3", 52, func(c *CPU) error {
		c.raiseInterrupt(3)
		return nil
	})
	op(0xCE, "INTO", 53, func(c *CPU) error {
		if c.Flags.GetOverflow() {
			c.raiseInterrupt(4)
		}
		return nil
	})
	op(0xCF, "IRET", 24, func(c *CPU) error {
		c.IP = c.pop16()
		c.CS = c.pop16()
		c.Flags = Flags(c.pop16()) | reservedOnBoot
		return nil
	})

	op(0xF4, "HLT", 2, func(c *CPU) error {
		c.halted = true
		return nil
	})
}

// raiseInterrupt pushes FLAGS, CS and IP, clears IF and TF, and
// transfers control through the real-mode interrupt vector table at
// physical address vector*4 (segment:offset pair, offset first).
func (c *CPU) raiseInterrupt(vector uint8) {
	c.push16(uint16(c.Flags))
	c.push16(c.CS)
	c.push16(c.IP)
	c.SetInterrupt(false)
	c.SetTrap(false)
	entry := uint32(vector) * 4
	c.IP = c.memory.Read16(entry)
	c.CS = c.memory.Read16(entry + 2)
}

// registerConditionalJumps wires up the 16 Jcc short-jump condition
// codes at 0x70-0x7F, plus their documented 0x60-0x6F aliases.
func registerConditionalJumps() {
	conditions := []struct {
		name string
		cond func(*CPU) bool
	}{
		{"JO", func(c *CPU) bool { return c.Flags.GetOverflow() }},
		{"JNO", func(c *CPU) bool { return !c.Flags.GetOverflow() }},
		{"JB", func(c *CPU) bool { return c.Flags.GetCarry() }},
		{"JNB", func(c *CPU) bool { return !c.Flags.GetCarry() }},
		{"JE", func(c *CPU) bool { return c.Flags.GetZero() }},
		{"JNE", func(c *CPU) bool { return !c.Flags.GetZero() }},
		{"JBE", func(c *CPU) bool { return c.Flags.GetCarry() || c.Flags.GetZero() }},
		{"JA", func(c *CPU) bool { return !c.Flags.GetCarry() && !c.Flags.GetZero() }},
		{"JS", func(c *CPU) bool { return c.Flags.GetSign() }},
		{"JNS", func(c *CPU) bool { return !c.Flags.GetSign() }},
		{"JP", func(c *CPU) bool { return c.Flags.GetParity() }},
		{"JNP", func(c *CPU) bool { return !c.Flags.GetParity() }},
		{"JL", func(c *CPU) bool { return c.Flags.GetSign() != c.Flags.GetOverflow() }},
		{"JGE", func(c *CPU) bool { return c.Flags.GetSign() == c.Flags.GetOverflow() }},
		{"JLE", func(c *CPU) bool {
			return c.Flags.GetZero() || c.Flags.GetSign() != c.Flags.GetOverflow()
		}},
		{"JG", func(c *CPU) bool {
			return !c.Flags.GetZero() && c.Flags.GetSign() == c.Flags.GetOverflow()
		}},
	}
	for i, cc := range conditions {
		cond := cc.cond
		handler := func(c *CPU) error {
			rel := c.fetchSignedByte()
			if cond(c) {
				c.IP = uint16(int32(c.IP) + int32(rel))
			}
			return nil
		}
		op(0x70+uint8(i), cc.name, 16, handler)
		op(0x60+uint8(i), cc.name+" (alias)", 16, handler)
	}
}
