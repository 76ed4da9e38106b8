package arch

import (
	"strings"

	"github.com/dosvm/i8086/set"
)

// System names the runtime environment an emulated program expects:
// its initial register state, executable loader, and the interrupt
// services available to it. Separate from Architecture, which only
// names the instruction set.
type System string

// Supported systems.
const (
	// DOS represents MS-DOS and compatible systems: .COM programs
	// loaded at CS:0x100 with a 256-byte PSP, INT 21h services.
	DOS System = "dos"

	// BIOS represents a bare real-mode environment reset directly to
	// the F000:FFF0 power-on vector, with no loaded operating system.
	BIOS System = "bios"

	// Generic represents a system with no loader or interrupt
	// conventions applied; the caller is responsible for placing code
	// and setting the initial CS:IP itself.
	Generic System = "generic"
)

// allSupportedSystems defines the single source of truth for supported systems.
var allSupportedSystems = []System{
	DOS,
	BIOS,
	Generic,
}

// supportedSystemsSet provides O(1) lookup performance for system validation.
var supportedSystemsSet = set.NewFromSlice(allSupportedSystems)

// String returns the string representation of the system.
func (s System) String() string {
	return string(s)
}

// IsValid returns true if the system is supported.
func (s System) IsValid() bool {
	return supportedSystemsSet.Contains(s)
}

// SystemFromString creates a System from a string.
// Returns the system and true if valid, or empty System and false if invalid.
// The comparison is case-insensitive.
func SystemFromString(s string) (System, bool) {
	sys := System(strings.ToLower(s))
	if sys.IsValid() {
		return sys, true
	}
	return "", false
}

// SupportedSystems returns a slice of all supported systems.
func SupportedSystems() []System {
	result := make([]System, len(allSupportedSystems))
	copy(result, allSupportedSystems)
	return result
}
