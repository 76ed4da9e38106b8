package x86

// Byte-register accessors. The 8086 aliases the low and high halves of
// AX, BX, CX and DX as independent 8-bit registers; each pair is
// modelled as a single 16-bit cell with mask-and-shift accessors so a
// write to one half never disturbs the other.

// AL returns the low byte of AX.
func (c *CPU) AL() uint8 { return uint8(c.AX) }

// SetAL sets the low byte of AX, leaving AH untouched.
func (c *CPU) SetAL(v uint8) { c.AX = c.AX&0xFF00 | uint16(v) }

// AH returns the high byte of AX.
func (c *CPU) AH() uint8 { return uint8(c.AX >> 8) }

// SetAH sets the high byte of AX, leaving AL untouched.
func (c *CPU) SetAH(v uint8) { c.AX = c.AX&0x00FF | uint16(v)<<8 }

// BL returns the low byte of BX.
func (c *CPU) BL() uint8 { return uint8(c.BX) }

// SetBL sets the low byte of BX, leaving BH untouched.
func (c *CPU) SetBL(v uint8) { c.BX = c.BX&0xFF00 | uint16(v) }

// BH returns the high byte of BX.
func (c *CPU) BH() uint8 { return uint8(c.BX >> 8) }

// SetBH sets the high byte of BX, leaving BL untouched.
func (c *CPU) SetBH(v uint8) { c.BX = c.BX&0x00FF | uint16(v)<<8 }

// CL returns the low byte of CX.
func (c *CPU) CL() uint8 { return uint8(c.CX) }

// SetCL sets the low byte of CX, leaving CH untouched.
func (c *CPU) SetCL(v uint8) { c.CX = c.CX&0xFF00 | uint16(v) }

// CH returns the high byte of CX.
func (c *CPU) CH() uint8 { return uint8(c.CX >> 8) }

// SetCH sets the high byte of CX, leaving CL untouched.
func (c *CPU) SetCH(v uint8) { c.CX = c.CX&0x00FF | uint16(v)<<8 }

// DL returns the low byte of DX.
func (c *CPU) DL() uint8 { return uint8(c.DX) }

// SetDL sets the low byte of DX, leaving DH untouched.
func (c *CPU) SetDL(v uint8) { c.DX = c.DX&0xFF00 | uint16(v) }

// DH returns the high byte of DX.
func (c *CPU) DH() uint8 { return uint8(c.DX >> 8) }

// SetDH sets the high byte of DX, leaving DL untouched.
func (c *CPU) SetDH(v uint8) { c.DX = c.DX&0x00FF | uint16(v)<<8 }

// getReg8 reads one of the 8 byte-register slots addressed by a ModR/M
// reg or r/m field: 0=AL 1=CL 2=DL 3=BL 4=AH 5=CH 6=DH 7=BH.
func (c *CPU) getReg8(index uint8) uint8 {
	switch index & 0x7 {
	case 0:
		return c.AL()
	case 1:
		return c.CL()
	case 2:
		return c.DL()
	case 3:
		return c.BL()
	case 4:
		return c.AH()
	case 5:
		return c.CH()
	case 6:
		return c.DH()
	default:
		return c.BH()
	}
}

// setReg8 writes one of the 8 byte-register slots; see getReg8.
func (c *CPU) setReg8(index uint8, value uint8) {
	switch index & 0x7 {
	case 0:
		c.SetAL(value)
	case 1:
		c.SetCL(value)
	case 2:
		c.SetDL(value)
	case 3:
		c.SetBL(value)
	case 4:
		c.SetAH(value)
	case 5:
		c.SetCH(value)
	case 6:
		c.SetDH(value)
	default:
		c.SetBH(value)
	}
}

// getReg16 reads one of the 8 word-register slots: 0=AX 1=CX 2=DX 3=BX
// 4=SP 5=BP 6=SI 7=DI.
func (c *CPU) getReg16(index uint8) uint16 {
	switch index & 0x7 {
	case 0:
		return c.AX
	case 1:
		return c.CX
	case 2:
		return c.DX
	case 3:
		return c.BX
	case 4:
		return c.SP
	case 5:
		return c.BP
	case 6:
		return c.SI
	default:
		return c.DI
	}
}

// setReg16 writes one of the 8 word-register slots; see getReg16.
func (c *CPU) setReg16(index uint8, value uint16) {
	switch index & 0x7 {
	case 0:
		c.AX = value
	case 1:
		c.CX = value
	case 2:
		c.DX = value
	case 3:
		c.BX = value
	case 4:
		c.SP = value
	case 5:
		c.BP = value
	case 6:
		c.SI = value
	default:
		c.DI = value
	}
}

// getSegReg reads one of the 4 segment registers addressed by a
// ModR/M reg field in a segment-register instruction: 0=ES 1=CS 2=SS 3=DS.
func (c *CPU) getSegReg(index uint8) uint16 {
	switch index & 0x3 {
	case 0:
		return c.ES
	case 1:
		return c.CS
	case 2:
		return c.SS
	default:
		return c.DS
	}
}

// setSegReg writes one of the 4 segment registers; see getSegReg.
func (c *CPU) setSegReg(index uint8, value uint16) {
	switch index & 0x3 {
	case 0:
		c.ES = value
	case 1:
		c.CS = value
	case 2:
		c.SS = value
	default:
		c.DS = value
	}
}
