package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalizedNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"european grouping and decimal", "1.234,56", "1234.56", true},
		{"anglo grouping and decimal", "1,234.56", "1234.56", true},
		{"french space grouping", "50 000", "50000", true},
		{"narrow nbsp grouping", "50 000", "50000", true},
		{"euro suffix", "50 000 €", "50000", true},
		{"eur suffix", "1.234,56 EUR", "1234.56", true},
		{"lone decimal comma", "12,5", "12.5", true},
		{"lone grouping comma", "12,500", "12500", true},
		{"lone decimal dot", "3.5", "3.5", true},
		{"lone grouping dot", "1.234", "1234", true},
		{"multi grouping dots", "1.234.567", "1234567", true},
		{"sub-unit decimal", "0.123", "0.123", true},
		{"plain integer", "42", "42", true},
		{"not a number", "environ cinquante", "", false},
		{"empty", "", "", false},
		{"currency only", "€", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLocalizedNumber(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
