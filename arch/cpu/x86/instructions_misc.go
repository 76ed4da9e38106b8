package x86

// registerMiscOpcodes wires up flag-control instructions, the AH/FLAGS
// transfer instructions, XLAT, the undocumented SALC, the ESC
// coprocessor-escape encodings and WAIT.
func registerMiscOpcodes() {
	op(0xF8, "CLC", 2, func(c *CPU) error { c.SetCarry(false); return nil })
	op(0xF9, "STC", 2, func(c *CPU) error { c.SetCarry(true); return nil })
	op(0xF5, "CMC", 2, func(c *CPU) error { c.SetCarry(!c.Flags.GetCarry()); return nil })
	op(0xFA, "CLI", 2, func(c *CPU) error { c.SetInterrupt(false); return nil })
	op(0xFB, "STI", 2, func(c *CPU) error { c.SetInterrupt(true); return nil })
	op(0xFC, "CLD", 2, func(c *CPU) error { c.SetDirection(false); return nil })
	op(0xFD, "STD", 2, func(c *CPU) error { c.SetDirection(true); return nil })

	op(0x9F, "LAHF", 4, func(c *CPU) error {
		c.SetAH(uint8(c.Flags)&0xD5 | 0x02)
		return nil
	})
	op(0x9E, "SAHF", 4, func(c *CPU) error {
		kept := uint16(c.Flags) &^ 0xFF
		c.Flags = Flags(kept|uint16(c.AH())&0xD5) | reservedOnBoot
		return nil
	})

	op(0xD6, "SALC", 2, func(c *CPU) error {
		if c.Flags.GetCarry() {
			c.SetAL(0xFF)
		} else {
			c.SetAL(0x00)
		}
		return nil
	})

	op(0xD7, "XLAT", 11, func(c *CPU) error {
		seg := c.segmentFor(c.DS)
		addr := PhysicalAddress(seg, c.BX+uint16(c.AL()))
		c.SetAL(c.memory.Read8(addr))
		return nil
	})

	for i := uint8(0xD8); i <= 0xDF; i++ {
		op(i, "ESC", 8, func(c *CPU) error {
			c.decodeModRM()
			return nil
		})
	}

	op(0x9B, "WAIT", 4, func(c *CPU) error { return nil })
}
