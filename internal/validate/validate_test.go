package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSIREN(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "732829320", true},
		{"valid with spaces", "732 829 320", true},
		{"check digit off by one", "732829321", false},
		{"too short", "73282932", false},
		{"too long", "7328293200", false},
		{"letters", "73282932A", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SIREN(tt.value))
		})
	}
}

func TestSIRET(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "73282932000074", true},
		{"valid with spaces", "732 829 320 00074", true},
		{"check digit off by one", "73282932000075", false},
		{"siren length", "732829320", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SIRET(tt.value))
		})
	}
}

func TestCUI(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "14399840", true},
		{"valid with RO prefix", "RO14399840", true},
		{"check digit off by one", "14399841", false},
		{"single digit", "7", false},
		{"too long", "12345678901", false},
		{"letters", "14399Z40", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CUI(tt.value))
		})
	}
}

func TestCNP(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid", "1980101221146", true},
		{"wrong check digit", "1980101221145", false},
		{"leading zero", "0980101221146", false},
		{"too short", "198010122114", false},
		{"letters", "198010122114X", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CNP(tt.value))
		})
	}
}

func TestIBAN(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid FR", "FR1420041010050500013M02606", true},
		{"valid RO", "RO49AAAA1B31007593840000", true},
		{"valid with spaces", "FR14 2004 1010 0505 0001 3M02 606", true},
		{"lowercase accepted", "ro49aaaa1b31007593840000", true},
		{"bad check digits", "FR1520041010050500013M02606", false},
		{"too short", "FR14", false},
		{"digits where country expected", "1214AAAA1B31007593840000", false},
		{"illegal character", "RO49AAAA1B3100759384000_", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IBAN(tt.value))
		})
	}
}
