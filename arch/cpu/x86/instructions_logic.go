package x86

// registerLogicOpcodes wires up AND, OR, XOR and TEST. NOT lives in
// the Grp3 handler since the 8086 only exposes it through that
// ModR/M-selected encoding.
func registerLogicOpcodes() {
	registerALUFamily(0x20, "AND", (*CPU).andWithFlags8, (*CPU).andWithFlags16)
	registerALUFamily(0x08, "OR", (*CPU).orWithFlags8, (*CPU).orWithFlags16)
	registerALUFamily(0x30, "XOR", (*CPU).xorWithFlags8, (*CPU).xorWithFlags16)

	op(0x84, "TEST r/m8,r8", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.testWithFlags8(c.readRM8(rm), c.getReg8(reg))
		return nil
	})
	op(0x85, "TEST r/m16,r16", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.testWithFlags16(c.readRM16(rm), c.getReg16(reg))
		return nil
	})
	op(0xA8, "TEST AL,imm8", 4, func(c *CPU) error {
		c.testWithFlags8(c.AL(), c.fetchByte())
		return nil
	})
	op(0xA9, "TEST AX,imm16", 4, func(c *CPU) error {
		c.testWithFlags16(c.AX, c.fetchWord())
		return nil
	})
}

// logicFlags8/16 set CF=0, OF=0, AF=0 and ZF/SF/PF from the result, as
// the 8086 does for all logical operations.
func (c *CPU) logicFlags8(result uint8) uint8 {
	c.SetCarry(false)
	c.SetOverflow(false)
	c.SetAuxCarry(false)
	c.SetSZP8(result)
	return result
}

func (c *CPU) logicFlags16(result uint16) uint16 {
	c.SetCarry(false)
	c.SetOverflow(false)
	c.SetAuxCarry(false)
	c.SetSZP16(result)
	return result
}

func (c *CPU) andWithFlags8(a, b uint8) uint8  { return c.logicFlags8(a & b) }
func (c *CPU) andWithFlags16(a, b uint16) uint16 { return c.logicFlags16(a & b) }
func (c *CPU) orWithFlags8(a, b uint8) uint8   { return c.logicFlags8(a | b) }
func (c *CPU) orWithFlags16(a, b uint16) uint16  { return c.logicFlags16(a | b) }
func (c *CPU) xorWithFlags8(a, b uint8) uint8  { return c.logicFlags8(a ^ b) }
func (c *CPU) xorWithFlags16(a, b uint16) uint16 { return c.logicFlags16(a ^ b) }

func (c *CPU) testWithFlags8(a, b uint8)   { c.logicFlags8(a & b) }
func (c *CPU) testWithFlags16(a, b uint16) { c.logicFlags16(a & b) }

func (c *CPU) notWithFlags8(a uint8) uint8   { return ^a }
func (c *CPU) notWithFlags16(a uint16) uint16 { return ^a }
