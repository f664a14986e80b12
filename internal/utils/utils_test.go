package utils

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0.01, "0.01"},
		{0.07, "0.07"},
		{0.1, "0.1"},
		{0.29, "0.29"},
		{1, "1.0"},
		{1.1, "1.1"},
		{2, "2.0"},
		{9.99, "9.99"},
		{10, "10.0"},
		{0, "0.0"},
		{-3.5, "-3.5"},
		{0.00001, "1.0e-05"},
		{1e20, "1.0e+20"},
		{1.5e-7, "1.5e-07"},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("Input_%v", tc.input), func(t *testing.T) {
			got := FormatDecimal(tc.input)
			if got != tc.expected {
				t.Errorf("FormatDecimal(%v) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// Every price the generator can draw must render with a fraction and parse back exactly.
func TestFormatDecimal_PriceRange(t *testing.T) {
	for m := 0; m < 1000; m++ {
		price := float64(m+1) / 100.0
		s := FormatDecimal(price)
		if !strings.Contains(s, ".") || strings.Contains(s, "e") {
			t.Fatalf("FormatDecimal(%v) = %q, want plain decimal with fraction", price, s)
		}
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("FormatDecimal(%v) = %q does not parse: %v", price, s, err)
		}
		if back != price {
			t.Errorf("FormatDecimal(%v) = %q parses back to %v", price, s, back)
		}
	}
}
