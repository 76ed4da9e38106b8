package x86

// registerIOOpcodes wires up IN and OUT. The core engine has no
// attached peripherals: port reads return all-ones (an idle bus) and
// port writes are discarded. This keeps the instructions decoded and
// timed correctly without pretending to emulate real hardware.
func registerIOOpcodes() {
	op(0xE4, "IN AL,imm8", 10, func(c *CPU) error {
		c.fetchByte()
		c.SetAL(c.inByte())
		return nil
	})
	op(0xE5, "IN AX,imm8", 10, func(c *CPU) error {
		c.fetchByte()
		c.AX = c.inWord()
		return nil
	})
	op(0xEC, "IN AL,DX", 8, func(c *CPU) error {
		c.SetAL(c.inByte())
		return nil
	})
	op(0xED, "IN AX,DX", 8, func(c *CPU) error {
		c.AX = c.inWord()
		return nil
	})
	op(0xE6, "OUT imm8,AL", 10, func(c *CPU) error {
		c.fetchByte()
		c.outByte(c.AL())
		return nil
	})
	op(0xE7, "OUT imm8,AX", 10, func(c *CPU) error {
		c.fetchByte()
		c.outWord(c.AX)
		return nil
	})
	op(0xEE, "OUT DX,AL", 8, func(c *CPU) error {
		c.outByte(c.AL())
		return nil
	})
	op(0xEF, "OUT DX,AX", 8, func(c *CPU) error {
		c.outWord(c.AX)
		return nil
	})
}

func (c *CPU) inByte() uint8   { return 0xFF }
func (c *CPU) inWord() uint16  { return 0xFFFF }
func (c *CPU) outByte(uint8)   {}
func (c *CPU) outWord(uint16)  {}
