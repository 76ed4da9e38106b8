package x86

// registerBCDOpcodes wires up DAA, DAS, AAA, AAS, AAM and AAD.
func registerBCDOpcodes() {
	op(0x27, "DAA", 4, daa)
	op(0x2F, "DAS", 4, das)
	op(0x37, "AAA", 4, aaa)
	op(0x3F, "AAS", 4, aas)
	op(0xD4, "AAM", 83, aam)
	op(0xD5, "AAD", 60, aad)
}

func daa(c *CPU) error {
	al := c.AL()
	oldAL := al
	oldCF := c.Flags.GetCarry()

	adjustedAF := false
	if al&0x0F > 9 || c.Flags.GetAuxCarry() {
		al += 6
		adjustedAF = true
	}

	adjustedCF := false
	if oldAL > 0x99 || oldCF {
		al += 0x60
		adjustedCF = true
	}

	c.SetAL(al)
	c.SetAuxCarry(adjustedAF)
	c.SetCarry(adjustedCF)
	c.SetSZP8(al)
	return nil
}

func das(c *CPU) error {
	al := c.AL()
	oldAL := al
	oldCF := c.Flags.GetCarry()

	adjustedAF := false
	if al&0x0F > 9 || c.Flags.GetAuxCarry() {
		al -= 6
		adjustedAF = true
	}

	adjustedCF := false
	if oldAL > 0x99 || oldCF {
		al -= 0x60
		adjustedCF = true
	}

	c.SetAL(al)
	c.SetAuxCarry(adjustedAF)
	c.SetCarry(adjustedCF)
	c.SetSZP8(al)
	return nil
}

func aaa(c *CPU) error {
	al := c.AL()
	if al&0x0F > 9 || c.Flags.GetAuxCarry() {
		c.SetAL(al + 6)
		c.SetAH(c.AH() + 1)
		c.SetAuxCarry(true)
		c.SetCarry(true)
	} else {
		c.SetAuxCarry(false)
		c.SetCarry(false)
	}
	c.SetAL(c.AL() & 0x0F)
	return nil
}

func aas(c *CPU) error {
	al := c.AL()
	if al&0x0F > 9 || c.Flags.GetAuxCarry() {
		c.SetAL(al - 6)
		c.SetAH(c.AH() - 1)
		c.SetAuxCarry(true)
		c.SetCarry(true)
	} else {
		c.SetAuxCarry(false)
		c.SetCarry(false)
	}
	c.SetAL(c.AL() & 0x0F)
	return nil
}

func aam(c *CPU) error {
	imm := c.fetchByte()
	if imm == 0 {
		return &DivideError{Instruction: "AAM"}
	}
	al := c.AL()
	c.SetAH(al / imm)
	c.SetAL(al % imm)
	c.SetSZP8(c.AL())
	return nil
}

func aad(c *CPU) error {
	imm := c.fetchByte()
	result := uint16(c.AH())*uint16(imm) + uint16(c.AL())
	c.SetAL(uint8(result))
	c.SetAH(0)
	c.SetSZP8(c.AL())
	return nil
}
