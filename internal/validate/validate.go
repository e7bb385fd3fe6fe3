// Package validate holds small pure predicates used to post-check
// pattern candidates.
package validate

import "strings"

// StripSeparators removes the dash and space separators permitted inside
// formatted numbers (card numbers, phone numbers, identity numbers).
func StripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '-' || s[i] == ' ' {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// AllDigits reports whether s is non-empty and consists only of ASCII digits.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Luhn computes the mod-10 checksum over an all-digit string: every second
// digit from the right is doubled, 9 subtracted when the doubled value
// exceeds 9, and the sum must be a multiple of 10. Callers must strip
// separators first; non-digit input returns false.
func Luhn(digits string) bool {
	if !AllDigits(digits) {
		return false
	}
	total := 0
	for i := 0; i < len(digits); i++ {
		n := int(digits[len(digits)-1-i] - '0')
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
	}
	return total%10 == 0
}

// CardNumber applies the credit-card validation policy to a raw candidate.
// The returned penalty is multiplied into the candidate's confidence:
//
//	1.0  separator-stripped digits pass the checksum
//	0.5  well-formed number, checksum fails (still reportable)
//	0    malformed target (non-digit residue or fewer than 13 digits): discard
func CardNumber(raw string) float64 {
	digits := StripSeparators(raw)
	if !AllDigits(digits) || len(digits) < 13 {
		return 0
	}
	if Luhn(digits) {
		return 1.0
	}
	return 0.5
}
