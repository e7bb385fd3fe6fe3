// Package mask renders redacted versions of matched sensitive values.
// Masking is irreversible: no caller ever gets the raw value back, and the
// policy caps how much of it survives even for very short inputs.
package mask

import (
	"strings"

	"github.com/leakwarden/leakwarden/internal/validate"
)

// fullMaskCap bounds the length of fully-masked renderings so the mask
// never leaks the secret's exact length.
const fullMaskCap = 12

// Value renders the masked form of raw under the policy for the category.
func Value(raw, category string) string {
	switch category {
	case "credit_card":
		return lastFour(raw, "****-****-****-")
	case "phone":
		return lastFour(raw, "***-***-")
	case "ssn":
		return lastFour(raw, "***-**-")
	case "email":
		return email(raw)
	case "password", "pin", "api_key", "cvv":
		n := len(raw)
		if n > fullMaskCap {
			n = fullMaskCap
		}
		return strings.Repeat("*", n)
	default:
		return generic(raw)
	}
}

// lastFour strips separators and shows only the last four digits behind the
// given prefix. Values too short to keep four characters hidden are fully
// starred.
func lastFour(raw, prefix string) string {
	clean := validate.StripSeparators(raw)
	if len(clean) <= 4 {
		return strings.Repeat("*", len(clean))
	}
	return prefix + clean[len(clean)-4:]
}

// email keeps the first character of the local part and the full domain.
// Anything that does not split into exactly local@domain falls back to the
// generic rule.
func email(raw string) string {
	parts := strings.Split(raw, "@")
	if len(parts) != 2 || parts[0] == "" {
		return generic(raw)
	}
	return parts[0][:1] + "***@" + parts[1]
}

// generic shows the first two and last two characters when the value is
// long enough to hide at least four in between; shorter values are fully
// starred so a three-character match never partially reveals.
func generic(raw string) string {
	if len(raw) > 4 {
		return raw[:2] + strings.Repeat("*", len(raw)-4) + raw[len(raw)-2:]
	}
	return strings.Repeat("*", len(raw))
}
