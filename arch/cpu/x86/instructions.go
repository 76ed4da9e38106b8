package x86

// registerDataMovementOpcodes wires up MOV, XCHG, LEA, LDS and LES, the
// MOV Sreg forms, and the CBW/CWD sign-extension instructions.
func registerDataMovementOpcodes() {
	op(0x88, "MOV r/m8,r8", 2, movRMReg8)
	op(0x89, "MOV r/m16,r16", 2, movRMReg16)
	op(0x8A, "MOV r8,r/m8", 2, movRegRM8)
	op(0x8B, "MOV r16,r/m16", 2, movRegRM16)
	op(0x8C, "MOV r/m16,Sreg", 2, movRMSeg)
	op(0x8E, "MOV Sreg,r/m16", 2, movSegRM)

	op(0xA0, "MOV AL,[m]", 4, movALMoffs)
	op(0xA1, "MOV AX,[m]", 4, movAXMoffs)
	op(0xA2, "MOV [m],AL", 4, movMoffsAL)
	op(0xA3, "MOV [m],AX", 4, movMoffsAX)

	for i := uint8(0); i < 8; i++ {
		reg := i
		op(0xB0+i, "MOV reg8,imm8", 4, func(c *CPU) error {
			c.setReg8(reg, c.fetchByte())
			return nil
		})
		op(0xB8+i, "MOV reg16,imm16", 4, func(c *CPU) error {
			c.setReg16(reg, c.fetchWord())
			return nil
		})
	}

	op(0xC6, "MOV r/m8,imm8", 4, movRM8Imm8)
	op(0xC7, "MOV r/m16,imm16", 4, movRM16Imm16)

	op(0x86, "XCHG r/m8,r8", 3, xchgRMReg8)
	op(0x87, "XCHG r/m16,r16", 3, xchgRMReg16)
	op(0x90, "NOP", 3, func(c *CPU) error { return nil })
	for i := uint8(1); i < 8; i++ {
		reg := i
		op(0x90+i, "XCHG AX,reg16", 3, func(c *CPU) error {
			v := c.getReg16(reg)
			c.setReg16(reg, c.AX)
			c.AX = v
			return nil
		})
	}

	op(0x8D, "LEA r16,m", 2, lea)
	op(0xC4, "LES r16,m", 16, les)
	op(0xC5, "LDS r16,m", 16, lds)

	op(0x98, "CBW", 2, func(c *CPU) error {
		if c.AL()&0x80 != 0 {
			c.SetAH(0xFF)
		} else {
			c.SetAH(0x00)
		}
		return nil
	})
	op(0x99, "CWD", 5, func(c *CPU) error {
		if c.AX&0x8000 != 0 {
			c.DX = 0xFFFF
		} else {
			c.DX = 0x0000
		}
		return nil
	})
}

func movRMReg8(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.writeRM8(rm, c.getReg8(reg))
	return nil
}

func movRMReg16(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.writeRM16(rm, c.getReg16(reg))
	return nil
}

func movRegRM8(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.setReg8(reg, c.readRM8(rm))
	return nil
}

func movRegRM16(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.setReg16(reg, c.readRM16(rm))
	return nil
}

func movRMSeg(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.writeRM16(rm, c.getSegReg(reg))
	return nil
}

func movSegRM(c *CPU) error {
	reg, rm := c.decodeModRM()
	c.setSegReg(reg, c.readRM16(rm))
	return nil
}

func movALMoffs(c *CPU) error {
	offset := c.fetchWord()
	seg := c.segmentFor(c.DS)
	c.SetAL(c.memory.Read8(PhysicalAddress(seg, offset)))
	return nil
}

func movAXMoffs(c *CPU) error {
	offset := c.fetchWord()
	seg := c.segmentFor(c.DS)
	c.AX = c.memory.Read16(PhysicalAddress(seg, offset))
	return nil
}

func movMoffsAL(c *CPU) error {
	offset := c.fetchWord()
	seg := c.segmentFor(c.DS)
	c.memory.Write8(PhysicalAddress(seg, offset), c.AL())
	return nil
}

func movMoffsAX(c *CPU) error {
	offset := c.fetchWord()
	seg := c.segmentFor(c.DS)
	c.memory.Write16(PhysicalAddress(seg, offset), c.AX)
	return nil
}

func movRM8Imm8(c *CPU) error {
	_, rm := c.decodeModRM()
	c.writeRM8(rm, c.fetchByte())
	return nil
}

func movRM16Imm16(c *CPU) error {
	_, rm := c.decodeModRM()
	c.writeRM16(rm, c.fetchWord())
	return nil
}

func xchgRMReg8(c *CPU) error {
	reg, rm := c.decodeModRM()
	a, b := c.getReg8(reg), c.readRM8(rm)
	c.setReg8(reg, b)
	c.writeRM8(rm, a)
	return nil
}

func xchgRMReg16(c *CPU) error {
	reg, rm := c.decodeModRM()
	a, b := c.getReg16(reg), c.readRM16(rm)
	c.setReg16(reg, b)
	c.writeRM16(rm, a)
	return nil
}

// lea loads the 16-bit offset of a memory operand without reading
// memory or applying segmentation.
func lea(c *CPU) error {
	_, m, isReg := c.decodeModRMFields()
	reg := m.Reg
	if isReg {
		c.setReg16(reg, 0)
		return nil
	}
	offset, _ := c.effectiveOffset(m)
	c.setReg16(reg, offset)
	return nil
}

func les(c *CPU) error {
	_, m, isReg := c.decodeModRMFields()
	if isReg {
		return nil
	}
	reg := m.Reg
	_, phys := c.effectiveAddressOffsetAndPhys(m)
	c.setReg16(reg, c.memory.Read16(phys))
	c.ES = c.memory.Read16(phys + 2)
	return nil
}

func lds(c *CPU) error {
	_, m, isReg := c.decodeModRMFields()
	if isReg {
		return nil
	}
	reg := m.Reg
	_, phys := c.effectiveAddressOffsetAndPhys(m)
	c.setReg16(reg, c.memory.Read16(phys))
	c.DS = c.memory.Read16(phys + 2)
	return nil
}
