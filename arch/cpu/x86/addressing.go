package x86

// Operand is the decoded r/m operand of a ModR/M byte: either a
// register slot (by index) or a memory effective address. Returned as
// a value from decodeModRM rather than shared mutable state, so
// callers never need to remember which addressing mode was last
// decoded; the operand size (8 vs 16-bit) is supplied by the caller
// when reading or writing through it.
type Operand struct {
	IsMemory bool
	Addr     uint32 // physical address, valid when IsMemory
	RegIndex uint8  // register slot, valid when !IsMemory
}

// modRM holds the three fields of a decoded ModR/M byte.
type modRM struct {
	Mod uint8
	Reg uint8
	RM  uint8
}

func decodeModRMByte(b uint8) modRM {
	return modRM{
		Mod: b >> 6 & 0x3,
		Reg: b >> 3 & 0x7,
		RM:  b & 0x7,
	}
}

// decodeModRM fetches the ModR/M byte (and any displacement) at CS:IP,
// advancing IP past them, and returns the reg field plus the decoded
// r/m Operand.
func (c *CPU) decodeModRM() (reg uint8, operand Operand) {
	raw := c.fetchByte()
	m := decodeModRMByte(raw)

	if m.Mod == 0x3 {
		return m.Reg, Operand{IsMemory: false, RegIndex: m.RM}
	}

	offset, defaultSeg := c.effectiveOffset(m)
	seg := c.segmentFor(defaultSeg)
	addr := PhysicalAddress(seg, offset)
	return m.Reg, Operand{IsMemory: true, Addr: addr}
}

// effectiveOffset computes the 16-bit effective offset and the default
// segment for a memory-mode ModR/M, per the 8086 addressing table:
// mod=0,rm=6 is a bare disp16; any form basing off BP defaults to SS.
func (c *CPU) effectiveOffset(m modRM) (offset uint16, defaultSeg uint16) {
	var base uint16
	defaultSeg = c.DS

	switch m.RM {
	case 0:
		base = c.BX + c.SI
	case 1:
		base = c.BX + c.DI
	case 2:
		base = c.BP + c.SI
		defaultSeg = c.SS
	case 3:
		base = c.BP + c.DI
		defaultSeg = c.SS
	case 4:
		base = c.SI
	case 5:
		base = c.DI
	case 6:
		if m.Mod == 0 {
			return c.fetchWord(), c.DS
		}
		base = c.BP
		defaultSeg = c.SS
	case 7:
		base = c.BX
	}

	switch m.Mod {
	case 0:
		return base, defaultSeg
	case 1:
		disp := int16(c.fetchSignedByte())
		return base + uint16(disp), defaultSeg
	default: // mod == 2
		disp := int16(c.fetchWord())
		return base + uint16(disp), defaultSeg
	}
}

// decodeModRMFields fetches just the ModR/M byte, leaving any
// displacement unread, for callers (LEA, LDS, LES) that need to
// distinguish register-mode from memory-mode before deciding how much
// more to consume.
func (c *CPU) decodeModRMFields() (reg uint8, m modRM, isRegister bool) {
	raw := c.fetchByte()
	m = decodeModRMByte(raw)
	return m.Reg, m, m.Mod == 0x3
}

// effectiveAddressOffsetAndPhys resolves a ModR/M that is known to name
// memory (LDS, LES) and returns both its 16-bit offset and its physical
// address under the active segment, without touching memory.
func (c *CPU) effectiveAddressOffsetAndPhys(m modRM) (offset uint16, phys uint32) {
	off, defaultSeg := c.effectiveOffset(m)
	seg := c.segmentFor(defaultSeg)
	return off, PhysicalAddress(seg, off)
}

// readRM8 reads the byte value of a decoded r/m operand.
func (c *CPU) readRM8(op Operand) uint8 {
	if op.IsMemory {
		return c.memory.Read8(op.Addr)
	}
	return c.getReg8(op.RegIndex)
}

// writeRM8 writes the byte value of a decoded r/m operand.
func (c *CPU) writeRM8(op Operand, value uint8) {
	if op.IsMemory {
		c.memory.Write8(op.Addr, value)
		return
	}
	c.setReg8(op.RegIndex, value)
}

// readRM16 reads the word value of a decoded r/m operand.
func (c *CPU) readRM16(op Operand) uint16 {
	if op.IsMemory {
		return c.memory.Read16(op.Addr)
	}
	return c.getReg16(op.RegIndex)
}

// writeRM16 writes the word value of a decoded r/m operand.
func (c *CPU) writeRM16(op Operand, value uint16) {
	if op.IsMemory {
		c.memory.Write16(op.Addr, value)
		return
	}
	c.setReg16(op.RegIndex, value)
}
