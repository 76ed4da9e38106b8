package x86

// registerStringOpcodes wires up MOVS, CMPS, SCAS, LODS, STOS in byte
// and word forms. Each honors an active REP/REPNE prefix by executing
// exactly one iteration per Step and flagging whether another is
// needed; Step itself rewinds to the prefix byte to repeat, so a full
// run of the repeated instruction spans multiple Step calls rather
// than looping inside a single one.
func registerStringOpcodes() {
	op(0xA4, "MOVSB", 18, func(c *CPU) error { return c.repeat(c.movsb) })
	op(0xA5, "MOVSW", 18, func(c *CPU) error { return c.repeat(c.movsw) })
	op(0xA6, "CMPSB", 22, func(c *CPU) error { return c.repeatCompare(c.cmpsb) })
	op(0xA7, "CMPSW", 22, func(c *CPU) error { return c.repeatCompare(c.cmpsw) })
	op(0xAA, "STOSB", 11, func(c *CPU) error { return c.repeat(c.stosb) })
	op(0xAB, "STOSW", 11, func(c *CPU) error { return c.repeat(c.stosw) })
	op(0xAC, "LODSB", 12, func(c *CPU) error { return c.repeat(c.lodsb) })
	op(0xAD, "LODSW", 12, func(c *CPU) error { return c.repeat(c.lodsw) })
	op(0xAE, "SCASB", 15, func(c *CPU) error { return c.repeatCompare(c.scasb) })
	op(0xAF, "SCASW", 15, func(c *CPU) error { return c.repeatCompare(c.scasw) })
}

// repeat runs a non-comparing string primitive for exactly one
// iteration. With an active REP prefix it decrements CX once and, if
// CX is still nonzero, marks the instruction to be re-entered by the
// next Step call. A REP prefix with CX already zero does nothing.
func (c *CPU) repeat(step func()) error {
	if c.repPrefix == repeatNone {
		step()
		return nil
	}
	if c.CX == 0 {
		return nil
	}
	step()
	c.CX--
	if c.CX != 0 {
		c.repeatPending = true
	}
	return nil
}

// repeatCompare runs a comparing string primitive (CMPS/SCAS) for
// exactly one iteration. With an active REP/REPNE prefix it decrements
// CX once and, if CX is still nonzero and the zero flag still matches
// the requested repeat condition, marks the instruction to be
// re-entered by the next Step call.
func (c *CPU) repeatCompare(step func()) error {
	if c.repPrefix == repeatNone {
		step()
		return nil
	}
	if c.CX == 0 {
		return nil
	}
	step()
	c.CX--
	if c.CX == 0 {
		return nil
	}
	switch c.repPrefix {
	case repeatEqual:
		if c.Flags.GetZero() {
			c.repeatPending = true
		}
	case repeatNotEqual:
		if !c.Flags.GetZero() {
			c.repeatPending = true
		}
	}
	return nil
}

func (c *CPU) stringStep16() uint16 {
	if c.Flags.GetDirection() {
		return 0xFFFF // -1
	}
	return 1
}

func (c *CPU) movsb() {
	srcSeg := c.segmentFor(c.DS)
	value := c.memory.Read8(PhysicalAddress(srcSeg, c.SI))
	c.memory.Write8(PhysicalAddress(c.ES, c.DI), value)
	c.SI += c.stringStep16()
	c.DI += c.stringStep16()
}

func (c *CPU) movsw() {
	srcSeg := c.segmentFor(c.DS)
	value := c.memory.Read16(PhysicalAddress(srcSeg, c.SI))
	c.memory.Write16(PhysicalAddress(c.ES, c.DI), value)
	step := c.stringStep16() * 2
	if c.Flags.GetDirection() {
		step = 0xFFFE // -2
	}
	c.SI += step
	c.DI += step
}

func (c *CPU) cmpsb() {
	srcSeg := c.segmentFor(c.DS)
	a := c.memory.Read8(PhysicalAddress(srcSeg, c.SI))
	b := c.memory.Read8(PhysicalAddress(c.ES, c.DI))
	c.subWithFlags8(a, b)
	c.SI += c.stringStep16()
	c.DI += c.stringStep16()
}

func (c *CPU) cmpsw() {
	srcSeg := c.segmentFor(c.DS)
	a := c.memory.Read16(PhysicalAddress(srcSeg, c.SI))
	b := c.memory.Read16(PhysicalAddress(c.ES, c.DI))
	c.subWithFlags16(a, b)
	step := uint16(2)
	if c.Flags.GetDirection() {
		step = 0xFFFE
	}
	c.SI += step
	c.DI += step
}

func (c *CPU) scasb() {
	value := c.memory.Read8(PhysicalAddress(c.ES, c.DI))
	c.subWithFlags8(c.AL(), value)
	c.DI += c.stringStep16()
}

func (c *CPU) scasw() {
	value := c.memory.Read16(PhysicalAddress(c.ES, c.DI))
	c.subWithFlags16(c.AX, value)
	step := uint16(2)
	if c.Flags.GetDirection() {
		step = 0xFFFE
	}
	c.DI += step
}

func (c *CPU) lodsb() {
	srcSeg := c.segmentFor(c.DS)
	c.SetAL(c.memory.Read8(PhysicalAddress(srcSeg, c.SI)))
	c.SI += c.stringStep16()
}

func (c *CPU) lodsw() {
	srcSeg := c.segmentFor(c.DS)
	c.AX = c.memory.Read16(PhysicalAddress(srcSeg, c.SI))
	step := uint16(2)
	if c.Flags.GetDirection() {
		step = 0xFFFE
	}
	c.SI += step
}

func (c *CPU) stosb() {
	c.memory.Write8(PhysicalAddress(c.ES, c.DI), c.AL())
	c.DI += c.stringStep16()
}

func (c *CPU) stosw() {
	c.memory.Write16(PhysicalAddress(c.ES, c.DI), c.AX)
	step := uint16(2)
	if c.Flags.GetDirection() {
		step = 0xFFFE
	}
	c.DI += step
}
