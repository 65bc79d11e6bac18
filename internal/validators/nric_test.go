package validators

import (
	"strings"
	"testing"
)

func TestIsNRICShaped(t *testing.T) {
	valid := []string{"S1234567A", "F7654321X", "G12345", "M1234567W"}
	for _, v := range valid {
		if !IsNRICShaped(v) {
			t.Errorf("expected %q to be accepted", v)
		}
	}

	invalid := []string{
		"",
		"S123",                  // too short
		"S1234567A ",            // whitespace survives only bad callers
		"s1234567a",             // must be normalized first
		"S1234-567A",            // punctuation
		strings.Repeat("A", 40), // too long
	}
	for _, v := range invalid {
		if IsNRICShaped(v) {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}
