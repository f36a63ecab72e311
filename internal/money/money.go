// Package money converts user-facing decimal amounts to and from the
// integer base-unit representation used everywhere amounts are stored,
// summed or compared. One whole token is 1e9 base units. The conversion is
// pure integer and string arithmetic; float64 never touches an amount.
package money

import (
	"fmt"
	"strings"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// Scale is the number of base units per whole token.
const Scale int64 = 1_000_000_000

const fractionDigits = 9

// ToBaseUnits parses a non-negative decimal string such as "12.50" into
// base units. More than nine fraction digits, negative values and anything
// that is not a plain decimal number are rejected.
func ToBaseUnits(decimal string) (int64, error) {
	s := strings.TrimSpace(decimal)
	if s == "" {
		return 0, domain.ValidationError("amount is empty")
	}
	if strings.HasPrefix(s, "-") {
		return 0, domain.ValidationError("amount %q is negative", decimal)
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, domain.ValidationError("amount %q is not a number", decimal)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > fractionDigits {
		return 0, domain.ValidationError("amount %q has more than %d fraction digits", decimal, fractionDigits)
	}

	var units int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0, domain.ValidationError("amount %q is not a number", decimal)
		}
		d := int64(c - '0')
		if units > (1<<63-1-d)/10 {
			return 0, domain.ValidationError("amount %q overflows", decimal)
		}
		units = units*10 + d
	}
	if units > (1<<63-1)/Scale {
		return 0, domain.ValidationError("amount %q overflows", decimal)
	}
	units *= Scale

	mult := Scale / 10
	for _, c := range frac {
		if c < '0' || c > '9' {
			return 0, domain.ValidationError("amount %q is not a number", decimal)
		}
		add := int64(c-'0') * mult
		if units > (1<<63-1)-add {
			return 0, domain.ValidationError("amount %q overflows", decimal)
		}
		units += add
		mult /= 10
	}
	return units, nil
}

// ToDecimal formats base units as a decimal string with trailing fraction
// zeros trimmed. ToBaseUnits(ToDecimal(x)) == x for every x >= 0.
func ToDecimal(baseUnits int64) string {
	if baseUnits < 0 {
		return "-" + ToDecimal(-baseUnits)
	}
	whole := baseUnits / Scale
	frac := baseUnits % Scale
	if frac == 0 {
		return fmt.Sprintf("%d", whole)
	}
	fracStr := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
	return fmt.Sprintf("%d.%s", whole, fracStr)
}
