package lexer

import (
	"bytes"
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestNormalizeStripsBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{"with_bom", []byte{0xEF, 0xBB, 0xBF, 'x'}, []byte("x")},
		{"without_bom", []byte("x"), []byte("x")},
		{"empty_with_bom", []byte{0xEF, 0xBB, 0xBF}, []byte{}},
		{"empty_without_bom", []byte{}, []byte{}},
		{"partial_bom_not_stripped", []byte{0xEF, 0xBB, 'x'}, []byte{0xEF, 0xBB, 'x'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeAppliesNFC(t *testing.T) {
	// "e" (U+0065) followed by a combining acute accent (U+0301) is the NFD
	// spelling; normalization should fold it to the single precomposed
	// code point U+00E9.
	decomposed := []byte("é")
	got := Normalize(decomposed)

	if !norm.NFC.IsNormal(got) {
		t.Fatalf("Normalize output is not NFC: %q", got)
	}
	if bytes.Equal(got, decomposed) {
		t.Fatalf("Normalize did not change decomposed input")
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	input := []byte{0xEF, 0xBB, 0xBF}
	input = append(input, []byte("let x = 1 in x")...)

	once := Normalize(input)
	twice := Normalize(once)

	if !bytes.Equal(once, twice) {
		t.Fatalf("Normalize is not idempotent: %q != %q", once, twice)
	}
}
