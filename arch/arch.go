// Package arch names the processor variant and host system an emulated
// program targets, so the conformance harness and CLI can tag fixtures
// and pick reset defaults without hardcoding either concern.
package arch

import (
	"github.com/dosvm/i8086/set"
)

// Architecture represents a target CPU variant. All listed variants
// execute the same 8086 instruction set; they differ in bus width and
// undocumented-opcode behavior, not in the architecture this module
// implements.
type Architecture string

// Supported CPU variants.
const (
	// X86 is the Intel 8086/8088, the architecture modeled by this module.
	X86 Architecture = "x86"

	// V20 is the NEC V20, a pin-compatible 8086 clone with additional
	// undocumented opcodes and a built-in 8080 emulation mode; for the
	// real-mode subset this module implements, it is instruction-set
	// identical to X86.
	V20 Architecture = "v20"
)

// allSupportedArchitectures defines the single source of truth for supported architectures.
var allSupportedArchitectures = []Architecture{
	X86,
	V20,
}

// supportedArchitecturesSet provides O(1) lookup performance for IsValid().
var supportedArchitecturesSet = set.NewFromSlice(allSupportedArchitectures)

// String returns the string representation of the architecture.
func (a Architecture) String() string {
	return string(a)
}

// IsValid returns true if the architecture is supported.
func (a Architecture) IsValid() bool {
	return supportedArchitecturesSet.Contains(a)
}

// FromString creates an Architecture from a string.
// Returns the architecture and true if valid, or empty Architecture and false if invalid.
func FromString(s string) (Architecture, bool) {
	a := Architecture(s)
	if a.IsValid() {
		return a, true
	}
	return "", false
}

// SupportedArchitectures returns a slice of all supported architectures.
func SupportedArchitectures() []Architecture {
	result := make([]Architecture, len(allSupportedArchitectures))
	copy(result, allSupportedArchitectures)
	return result
}
