package valueobject

import "strings"

// CPFLength is the number of digits in a CPF
const CPFLength = 11

// IsWellFormedCPF reports whether s is exactly eleven ASCII digits.
// Blank input, separators and surrounding whitespace are all rejected.
func IsWellFormedCPF(s string) bool {
	if len(s) != CPFLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// HasValidCPFCheckDigits verifies the two trailing modulo-11 verifier digits.
// Sequences of a single repeated digit pass the arithmetic but are never issued,
// so they are rejected as well.
func HasValidCPFCheckDigits(s string) bool {
	if !IsWellFormedCPF(s) {
		return false
	}
	if strings.Count(s, s[:1]) == CPFLength {
		return false
	}
	return cpfCheckDigit(s[:9]) == s[9] && cpfCheckDigit(s[:10]) == s[10]
}

func cpfCheckDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}
	rem := sum % 11
	if rem < 2 {
		return '0'
	}
	return byte('0' + 11 - rem)
}
