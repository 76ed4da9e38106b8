package x86

// registerArithmeticOpcodes wires up ADD, ADC, SUB, SBB, CMP and the
// 16-bit register INC/DEC short forms. MUL/IMUL/DIV/IDIV/NEG live in
// the Grp3 handler (instructions_group.go) since the 8086 only exposes
// them through that ModR/M-selected encoding.
func registerArithmeticOpcodes() {
	registerALUFamily(0x00, "ADD", (*CPU).addWithFlags8, (*CPU).addWithFlags16)
	registerALUFamily(0x10, "ADC", (*CPU).adcWithFlags8, (*CPU).adcWithFlags16)
	registerALUFamily(0x18, "SBB", (*CPU).sbbWithFlags8, (*CPU).sbbWithFlags16)
	registerALUFamily(0x28, "SUB", (*CPU).subWithFlags8, (*CPU).subWithFlags16)
	registerALUFamily(0x38, "CMP", (*CPU).cmpWithFlags8, (*CPU).cmpWithFlags16)

	for i := uint8(0); i < 8; i++ {
		reg := i
		op(0x40+i, "INC reg16", 2, func(c *CPU) error {
			c.setReg16(reg, c.incWithFlags16(c.getReg16(reg)))
			return nil
		})
		op(0x48+i, "DEC reg16", 2, func(c *CPU) error {
			c.setReg16(reg, c.decWithFlags16(c.getReg16(reg)))
			return nil
		})
	}
}

// aluOp8/aluOp16 compute a result from two operands and update flags
// as a side effect; cmp-style ops discard the result (caller doesn't
// write it back).
type aluOp8 func(*CPU, uint8, uint8) uint8
type aluOp16 func(*CPU, uint16, uint16) uint16

// registerALUFamily registers the 6 standard encodings of an ALU
// instruction starting at base: r/m8,r8 ; r/m16,r16 ; r8,r/m8 ;
// r16,r/m16 ; AL,imm8 ; AX,imm16. CMP's write-back is naturally
// discarded by cmpWithFlags{8,16} returning the unmodified destination.
func registerALUFamily(base uint8, name string, op8 aluOp8, op16 aluOp16) {
	op(base+0x00, name+" r/m8,r8", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.writeRM8(rm, op8(c, c.readRM8(rm), c.getReg8(reg)))
		return nil
	})
	op(base+0x01, name+" r/m16,r16", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.writeRM16(rm, op16(c, c.readRM16(rm), c.getReg16(reg)))
		return nil
	})
	op(base+0x02, name+" r8,r/m8", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.setReg8(reg, op8(c, c.getReg8(reg), c.readRM8(rm)))
		return nil
	})
	op(base+0x03, name+" r16,r/m16", 3, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		c.setReg16(reg, op16(c, c.getReg16(reg), c.readRM16(rm)))
		return nil
	})
	op(base+0x04, name+" AL,imm8", 4, func(c *CPU) error {
		c.SetAL(op8(c, c.AL(), c.fetchByte()))
		return nil
	})
	op(base+0x05, name+" AX,imm16", 4, func(c *CPU) error {
		c.AX = op16(c, c.AX, c.fetchWord())
		return nil
	})
}

func (c *CPU) addWithFlags8(a, b uint8) uint8 {
	result := a + b
	carry, aux, overflow := addFlags8(a, b, result)
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) addWithFlags16(a, b uint16) uint16 {
	result := a + b
	carry, aux, overflow := addFlags16(a, b, result)
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) adcWithFlags8(a, b uint8) uint8 {
	result, carry, aux, overflow := addWithCarry8(a, b, c.Flags.GetCarry())
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) adcWithFlags16(a, b uint16) uint16 {
	result, carry, aux, overflow := addWithCarry16(a, b, c.Flags.GetCarry())
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) subWithFlags8(a, b uint8) uint8 {
	result := a - b
	carry, aux, overflow := subFlags8(a, b, result)
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) subWithFlags16(a, b uint16) uint16 {
	result := a - b
	carry, aux, overflow := subFlags16(a, b, result)
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) sbbWithFlags8(a, b uint8) uint8 {
	result, carry, aux, overflow := subWithBorrow8(a, b, c.Flags.GetCarry())
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) sbbWithFlags16(a, b uint16) uint16 {
	result, carry, aux, overflow := subWithBorrow16(a, b, c.Flags.GetCarry())
	c.SetCarry(carry)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) cmpWithFlags8(a, b uint8) uint8 {
	c.subWithFlags8(a, b)
	return a
}

func (c *CPU) cmpWithFlags16(a, b uint16) uint16 {
	c.subWithFlags16(a, b)
	return a
}

func (c *CPU) incWithFlags8(a uint8) uint8 {
	result := a + 1
	_, aux, overflow := addFlags8(a, 1, result)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) incWithFlags16(a uint16) uint16 {
	result := a + 1
	_, aux, overflow := addFlags16(a, 1, result)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) decWithFlags8(a uint8) uint8 {
	result := a - 1
	_, aux, overflow := subFlags8(a, 1, result)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP8(result)
	return result
}

func (c *CPU) decWithFlags16(a uint16) uint16 {
	result := a - 1
	_, aux, overflow := subFlags16(a, 1, result)
	c.SetAuxCarry(aux)
	c.SetOverflow(overflow)
	c.SetSZP16(result)
	return result
}

func (c *CPU) negWithFlags8(a uint8) uint8 {
	result := c.subWithFlags8(0, a)
	c.SetCarry(a != 0)
	return result
}

func (c *CPU) negWithFlags16(a uint16) uint16 {
	result := c.subWithFlags16(0, a)
	c.SetCarry(a != 0)
	return result
}
