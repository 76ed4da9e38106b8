package x86

import (
	"fmt"

	"github.com/dosvm/i8086/log"
)

// Memory represents the 8086's physical address space: a flat, total
// 1MB byte array accessed through 20-bit physical addresses built from
// segment:offset pairs. Every address in [0, MaxMemorySize) maps to a
// byte; there is no distinguishable "unmapped" region at this layer.
type Memory struct {
	data   [MaxMemorySize]uint8
	logger *log.Logger

	// lastAccess* record the most recent read or write, for trace
	// purposes only; they play no part in emulated behavior.
	lastAccessRead  bool
	lastAccessWrite bool
	lastAccessAddr  uint32
	lastAccessValue uint16
}

// Memory size constants.
const (
	MaxMemorySize = 1024 * 1024  // 1MB, the full 8086 physical address space
	SegmentSize   = 64 * 1024    // size of one 16-bit segment
	AddressMask   = 0x000FFFFF   // 20-bit address mask
)

// NewMemory creates a new, zeroed 1MB memory instance.
func NewMemory(logger *log.Logger) *Memory {
	return &Memory{logger: logger}
}

// Size returns the total memory size in bytes.
func (m *Memory) Size() uint32 {
	return MaxMemorySize
}

// Clear fills memory with the specified value.
func (m *Memory) Clear(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Read8 reads a byte from the specified physical address. The address
// is taken modulo the 1MB address space; every address is valid.
func (m *Memory) Read8(addr uint32) uint8 {
	v := m.data[addr&AddressMask]
	m.lastAccessRead, m.lastAccessWrite = true, false
	m.lastAccessAddr, m.lastAccessValue = addr&AddressMask, uint16(v)
	return v
}

// Read16 reads a word from the specified physical address, little-endian.
// A word straddling the top of memory wraps its high byte to address 0.
func (m *Memory) Read16(addr uint32) uint16 {
	low := uint16(m.Read8(addr))
	high := uint16(m.Read8(addr + 1))
	v := high<<8 | low
	m.lastAccessAddr, m.lastAccessValue = addr&AddressMask, v
	return v
}

// Write8 writes a byte to the specified physical address.
func (m *Memory) Write8(addr uint32, value uint8) {
	m.data[addr&AddressMask] = value
	m.lastAccessRead, m.lastAccessWrite = false, true
	m.lastAccessAddr, m.lastAccessValue = addr&AddressMask, uint16(value)
}

// Write16 writes a word to the specified physical address, little-endian.
func (m *Memory) Write16(addr uint32, value uint16) {
	m.Write8(addr, uint8(value))
	m.Write8(addr+1, uint8(value>>8))
	m.lastAccessAddr, m.lastAccessValue = addr&AddressMask, value
}

// ReadSegmented reads a byte using segment:offset addressing.
func (m *Memory) ReadSegmented(segment, offset uint16) uint8 {
	return m.Read8(PhysicalAddress(segment, offset))
}

// ReadSegmented16 reads a word using segment:offset addressing.
func (m *Memory) ReadSegmented16(segment, offset uint16) uint16 {
	return m.Read16(PhysicalAddress(segment, offset))
}

// WriteSegmented writes a byte using segment:offset addressing.
func (m *Memory) WriteSegmented(segment, offset uint16, value uint8) {
	m.Write8(PhysicalAddress(segment, offset), value)
}

// WriteSegmented16 writes a word using segment:offset addressing.
func (m *Memory) WriteSegmented16(segment, offset uint16, value uint16) {
	m.Write16(PhysicalAddress(segment, offset), value)
}

// LoadData loads data into memory at the specified physical address.
func (m *Memory) LoadData(addr uint32, data []uint8) error {
	addr &= AddressMask
	if uint64(addr)+uint64(len(data)) > MaxMemorySize {
		return fmt.Errorf("load data exceeds memory bounds: addr=0x%06X, len=%d", addr, len(data))
	}

	copy(m.data[addr:], data)

	if m.logger != nil {
		m.logger.Debug("loaded data into memory",
			log.String("address", fmt.Sprintf("0x%06X", addr)),
			log.Int("size", len(data)))
	}

	return nil
}

// LoadSegmentedData loads data into memory using segment:offset addressing.
func (m *Memory) LoadSegmentedData(segment, offset uint16, data []uint8) error {
	return m.LoadData(PhysicalAddress(segment, offset), data)
}

// Dump returns a formatted hex dump of memory from start to end addresses.
func (m *Memory) Dump(start, end uint32) []string {
	start &= AddressMask
	if end > MaxMemorySize {
		end = MaxMemorySize
	}
	if start >= end {
		return nil
	}

	const bytesPerLine = 16
	lines := make([]string, 0, (end-start+bytesPerLine-1)/bytesPerLine)

	for addr := start; addr < end; addr += bytesPerLine {
		line := fmt.Sprintf("%06X: ", addr)

		for i := range bytesPerLine {
			if addr+uint32(i) < end {
				line += fmt.Sprintf("%02X ", m.data[addr+uint32(i)])
			} else {
				line += "   "
			}
		}

		line += " |"
		for i := range bytesPerLine {
			if addr+uint32(i) >= end {
				break
			}
			b := m.data[addr+uint32(i)]
			if b >= 32 && b <= 126 {
				line += string(rune(b))
			} else {
				line += "."
			}
		}
		line += "|"

		lines = append(lines, line)
	}

	return lines
}

// GetLinearAddress converts segment:offset to a physical address.
func (m *Memory) GetLinearAddress(segment, offset uint16) uint32 {
	return PhysicalAddress(segment, offset)
}

// resetLastAccess clears the trace-only last-access record.
func (m *Memory) resetLastAccess() {
	m.lastAccessRead, m.lastAccessWrite = false, false
	m.lastAccessAddr, m.lastAccessValue = 0, 0
}

// lastAccess reports the most recent read or write since the last
// resetLastAccess call, for trace purposes only.
func (m *Memory) lastAccess() (read, write bool, addr uint32, value uint16) {
	return m.lastAccessRead, m.lastAccessWrite, m.lastAccessAddr, m.lastAccessValue
}

// PhysicalAddress computes the 20-bit physical address of a
// segment:offset pair: ((segment << 4) + offset) mod 2^20.
func PhysicalAddress(segment, offset uint16) uint32 {
	return (uint32(segment)<<4 + uint32(offset)) & AddressMask
}
