package arch

import (
	"testing"

	"github.com/dosvm/i8086/assert"
)

func TestSystem_String(t *testing.T) {
	tests := []struct {
		name   string
		system System
		want   string
	}{
		{name: "DOS", system: DOS, want: "dos"},
		{name: "BIOS", system: BIOS, want: "bios"},
		{name: "Generic", system: Generic, want: "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.system.String())
		})
	}
}

func TestSystem_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		system System
		want   bool
	}{
		{name: "DOS is valid", system: DOS, want: true},
		{name: "BIOS is valid", system: BIOS, want: true},
		{name: "Generic is valid", system: Generic, want: true},
		{name: "empty string is invalid", system: System(""), want: false},
		{name: "random string is invalid", system: System("invalid"), want: false},
		{name: "uppercase DOS is invalid (IsValid is case-sensitive)", system: System("DOS"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.system.IsValid())
		})
	}
}

func TestSystemFromString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   System
		wantOk bool
	}{
		{"valid dos", "dos", DOS, true},
		{"valid bios", "bios", BIOS, true},
		{"valid generic", "generic", Generic, true},
		{"invalid system", "invalid", "", false},
		{"empty string", "", "", false},
		{"uppercase DOS now valid (case-insensitive)", "DOS", DOS, true},
		{"mixed case BIOS now valid (case-insensitive)", "BiOs", BIOS, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SystemFromString(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestSupportedSystems(t *testing.T) {
	got := SupportedSystems()
	expected := []System{DOS, BIOS, Generic}
	assert.Equal(t, len(expected), len(got))

	for _, wantSys := range expected {
		found := false
		for _, gotSys := range got {
			if gotSys == wantSys {
				found = true
				break
			}
		}
		assert.True(t, found, "expected system %s not found", wantSys)
	}
}

func TestAllSupportedSystemsAreValid(t *testing.T) {
	for _, sys := range SupportedSystems() {
		assert.True(t, sys.IsValid())
	}
}

func TestSystemFromStringWorksForAllSupported(t *testing.T) {
	for _, sys := range SupportedSystems() {
		got, ok := SystemFromString(sys.String())
		assert.True(t, ok)
		assert.Equal(t, sys, got)
	}
}
