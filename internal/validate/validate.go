// Package validate implements checksum validators for the legal identifiers
// the pattern extractors recognize. Every validator is a pure function: it
// returns false on malformed input instead of erroring, so extractors can use
// a failed check as a confidence signal rather than a hard rejection.
package validate

import "strings"

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// luhn reports whether a digit string passes the Luhn check
// (alternating doubling from the right, sum divisible by 10).
func luhn(s string) bool {
	sum := 0
	double := false
	for i := len(s) - 1; i >= 0; i-- {
		d := int(s[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// SIREN validates a 9-digit French company registration number.
func SIREN(value string) bool {
	v := normalize(value)
	if len(v) != 9 || !allDigits(v) {
		return false
	}
	return luhn(v)
}

// SIRET validates a 14-digit French establishment number
// (SIREN + 5-digit NIC, Luhn over all 14 digits).
func SIRET(value string) bool {
	v := normalize(value)
	if len(v) != 14 || !allDigits(v) {
		return false
	}
	return luhn(v)
}

// cuiKey is the official weight vector for the Romanian fiscal code check.
const cuiKey = "753217532"

// CUI validates a Romanian fiscal identification code (2-10 digits, optional
// RO prefix). The check digit is the weighted sum of the left-padded body,
// times ten, mod 11, mod 10.
func CUI(value string) bool {
	v := normalize(value)
	v = strings.TrimPrefix(strings.ToUpper(v), "RO")
	if len(v) < 2 || len(v) > 10 || !allDigits(v) {
		return false
	}
	body := v[:len(v)-1]
	check := int(v[len(v)-1] - '0')
	for len(body) < 9 {
		body = "0" + body
	}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(body[i]-'0') * int(cuiKey[i]-'0')
	}
	c := (sum * 10) % 11 % 10
	return c == check
}

// cnpWeights is the official weight vector for the Romanian personal code.
const cnpWeights = "279146358279"

// CNP validates a 13-digit Romanian personal numeric code. The check digit is
// the weighted sum of the first twelve digits mod 11, with remainder 10
// remapped to 1.
func CNP(value string) bool {
	v := normalize(value)
	if len(v) != 13 || !allDigits(v) {
		return false
	}
	if v[0] == '0' {
		return false // sex/century digit is never zero
	}
	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(v[i]-'0') * int(cnpWeights[i]-'0')
	}
	c := sum % 11
	if c == 10 {
		c = 1
	}
	return c == int(v[12]-'0')
}

// IBAN validates an international bank account number: the first four
// characters are rotated to the end, letters substituted with 10..35, and the
// resulting number must be ≡ 1 mod 97.
func IBAN(value string) bool {
	v := strings.ToUpper(normalize(value))
	if len(v) < 15 || len(v) > 34 {
		return false
	}
	if !isLetter(v[0]) || !isLetter(v[1]) || !isDigit(v[2]) || !isDigit(v[3]) {
		return false
	}
	rotated := v[4:] + v[:4]
	rem := 0
	for i := 0; i < len(rotated); i++ {
		c := rotated[i]
		switch {
		case isDigit(c):
			rem = (rem*10 + int(c-'0')) % 97
		case isLetter(c):
			n := int(c-'A') + 10
			rem = (rem*100 + n) % 97
		default:
			return false
		}
	}
	return rem == 1
}

func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ' ' || r == '-' || r == '.' || r == ' ' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
