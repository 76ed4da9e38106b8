package x86

// registerGroupOpcodes wires up the ModR/M-selected instruction groups:
// Grp1 (0x80-83 immediate ALU ops), Grp1A (0x8F POP r/m16), Grp3
// (0xF6-F7 TEST/NOT/NEG/MUL/IMUL/DIV/IDIV) and Grp4/Grp5 (0xFE/0xFF
// INC/DEC plus the indirect CALL/JMP/PUSH forms).
func registerGroupOpcodes() {
	registerGrp1()

	op(0x8F, "Grp1A POP r/m16", 17, func(c *CPU) error {
		_, rm := c.decodeModRM()
		c.writeRM16(rm, c.pop16())
		return nil
	})

	op(0xF6, "Grp3 r/m8", 3, func(c *CPU) error { return c.execGrp3_8() })
	op(0xF7, "Grp3 r/m16", 3, func(c *CPU) error { return c.execGrp3_16() })

	op(0xFE, "Grp4 r/m8", 3, func(c *CPU) error { return c.execGrp4() })
	op(0xFF, "Grp5 r/m16", 3, func(c *CPU) error { return c.execGrp5() })
}

// registerGrp1 wires up the 0x80-0x83 immediate-operand encodings. The
// sub-operation is selected by the ModR/M reg field: 0=ADD 1=OR 2=ADC
// 3=SBB 4=AND 5=SUB 6=XOR 7=CMP. 0x83 sign-extends an imm8 to 16 bits.
func registerGrp1() {
	grp1Op8 := [8]aluOp8{
		(*CPU).addWithFlags8, (*CPU).orWithFlags8, (*CPU).adcWithFlags8, (*CPU).sbbWithFlags8,
		(*CPU).andWithFlags8, (*CPU).subWithFlags8, (*CPU).xorWithFlags8, (*CPU).cmpWithFlags8,
	}
	grp1Op16 := [8]aluOp16{
		(*CPU).addWithFlags16, (*CPU).orWithFlags16, (*CPU).adcWithFlags16, (*CPU).sbbWithFlags16,
		(*CPU).andWithFlags16, (*CPU).subWithFlags16, (*CPU).xorWithFlags16, (*CPU).cmpWithFlags16,
	}

	op(0x80, "Grp1 r/m8,imm8", 4, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		imm := c.fetchByte()
		c.writeRM8(rm, grp1Op8[reg&0x7](c, c.readRM8(rm), imm))
		return nil
	})
	op(0x81, "Grp1 r/m16,imm16", 4, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		imm := c.fetchWord()
		c.writeRM16(rm, grp1Op16[reg&0x7](c, c.readRM16(rm), imm))
		return nil
	})
	op(0x82, "Grp1 r/m8,imm8 (alias)", 4, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		imm := c.fetchByte()
		c.writeRM8(rm, grp1Op8[reg&0x7](c, c.readRM8(rm), imm))
		return nil
	})
	op(0x83, "Grp1 r/m16,imm8(sx)", 4, func(c *CPU) error {
		reg, rm := c.decodeModRM()
		imm := uint16(int16(c.fetchSignedByte()))
		c.writeRM16(rm, grp1Op16[reg&0x7](c, c.readRM16(rm), imm))
		return nil
	})
}

// execGrp3_8 handles 0xF6: TEST r/m8,imm8 / NOT / NEG / MUL / IMUL /
// DIV / IDIV, selected by the ModR/M reg field.
func (c *CPU) execGrp3_8() error {
	reg, rm := c.decodeModRM()
	value := c.readRM8(rm)
	switch reg & 0x7 {
	case 0, 1: // TEST r/m8,imm8
		imm := c.fetchByte()
		c.testWithFlags8(value, imm)
	case 2: // NOT
		c.writeRM8(rm, c.notWithFlags8(value))
	case 3: // NEG
		c.writeRM8(rm, c.negWithFlags8(value))
	case 4: // MUL
		result := uint16(c.AL()) * uint16(value)
		c.AX = result
		overflow := c.AH() != 0
		c.SetCarry(overflow)
		c.SetOverflow(overflow)
	case 5: // IMUL
		result := int16(int8(c.AL())) * int16(int8(value))
		c.AX = uint16(result)
		overflow := result != int16(int8(uint8(result)))
		c.SetCarry(overflow)
		c.SetOverflow(overflow)
	case 6: // DIV
		if value == 0 {
			return &DivideError{Instruction: "DIV"}
		}
		quotient := c.AX / uint16(value)
		remainder := c.AX % uint16(value)
		if quotient > 0xFF {
			return &DivideError{Instruction: "DIV"}
		}
		c.SetAL(uint8(quotient))
		c.SetAH(uint8(remainder))
	case 7: // IDIV
		if value == 0 {
			return &DivideError{Instruction: "IDIV"}
		}
		dividend := int16(c.AX)
		divisor := int16(int8(value))
		quotient := dividend / divisor
		remainder := dividend % divisor
		if quotient > 127 || quotient < -128 {
			return &DivideError{Instruction: "IDIV"}
		}
		c.SetAL(uint8(int8(quotient)))
		c.SetAH(uint8(int8(remainder)))
	}
	return nil
}

// execGrp3_16 handles 0xF7: the 16-bit counterpart of execGrp3_8.
func (c *CPU) execGrp3_16() error {
	reg, rm := c.decodeModRM()
	value := c.readRM16(rm)
	switch reg & 0x7 {
	case 0, 1: // TEST r/m16,imm16
		imm := c.fetchWord()
		c.testWithFlags16(value, imm)
	case 2: // NOT
		c.writeRM16(rm, c.notWithFlags16(value))
	case 3: // NEG
		c.writeRM16(rm, c.negWithFlags16(value))
	case 4: // MUL
		result := uint32(c.AX) * uint32(value)
		c.AX = uint16(result)
		c.DX = uint16(result >> 16)
		overflow := c.DX != 0
		c.SetCarry(overflow)
		c.SetOverflow(overflow)
	case 5: // IMUL
		result := int32(int16(c.AX)) * int32(int16(value))
		c.AX = uint16(result)
		c.DX = uint16(uint32(result) >> 16)
		overflow := result != int32(int16(uint16(result)))
		c.SetCarry(overflow)
		c.SetOverflow(overflow)
	case 6: // DIV
		if value == 0 {
			return &DivideError{Instruction: "DIV"}
		}
		dividend := uint32(c.DX)<<16 | uint32(c.AX)
		quotient := dividend / uint32(value)
		remainder := dividend % uint32(value)
		if quotient > 0xFFFF {
			return &DivideError{Instruction: "DIV"}
		}
		c.AX = uint16(quotient)
		c.DX = uint16(remainder)
	case 7: // IDIV
		if value == 0 {
			return &DivideError{Instruction: "IDIV"}
		}
		dividend := int32(uint32(c.DX)<<16 | uint32(c.AX))
		divisor := int32(int16(value))
		quotient := dividend / divisor
		remainder := dividend % divisor
		if quotient > 32767 || quotient < -32768 {
			return &DivideError{Instruction: "IDIV"}
		}
		c.AX = uint16(int16(quotient))
		c.DX = uint16(int16(remainder))
	}
	return nil
}

// execGrp4 handles 0xFE: INC/DEC r/m8, selected by the ModR/M reg
// field (0=INC, 1=DEC; 2-7 are undefined and leave the operand as is).
func (c *CPU) execGrp4() error {
	reg, rm := c.decodeModRM()
	value := c.readRM8(rm)
	switch reg & 0x7 {
	case 0:
		c.writeRM8(rm, c.incWithFlags8(value))
	case 1:
		c.writeRM8(rm, c.decWithFlags8(value))
	}
	return nil
}

// execGrp5 handles 0xFF: INC/DEC r/m16, CALL/JMP r/m16 (near and far,
// via an in-memory far pointer) and PUSH r/m16, selected by the ModR/M
// reg field.
func (c *CPU) execGrp5() error {
	reg, rm := c.decodeModRM()
	switch reg & 0x7 {
	case 0: // INC
		c.writeRM16(rm, c.incWithFlags16(c.readRM16(rm)))
	case 1: // DEC
		c.writeRM16(rm, c.decWithFlags16(c.readRM16(rm)))
	case 2: // CALL r/m16 (near, indirect)
		target := c.readRM16(rm)
		c.push16(c.IP)
		c.IP = target
	case 3: // CALL far (indirect, via memory far pointer)
		if !rm.IsMemory {
			return ErrInvalidAddressingMode
		}
		newIP := c.memory.Read16(rm.Addr)
		newCS := c.memory.Read16(rm.Addr + 2)
		c.push16(c.CS)
		c.push16(c.IP)
		c.IP = newIP
		c.CS = newCS
	case 4: // JMP r/m16 (near, indirect)
		c.IP = c.readRM16(rm)
	case 5: // JMP far (indirect, via memory far pointer)
		if !rm.IsMemory {
			return ErrInvalidAddressingMode
		}
		c.IP = c.memory.Read16(rm.Addr)
		c.CS = c.memory.Read16(rm.Addr + 2)
	case 6: // PUSH r/m16
		c.push16(c.readRM16(rm))
	}
	return nil
}
