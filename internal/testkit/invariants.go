package testkit

import (
	"fmt"
	"strings"
)

// CheckNumber runs the invariants every rendered number must satisfy:
// 1) the special texts NaN, ovfl and -ovfl stand alone
// 2) at most one leading '-', followed by at least one digit
// 3) no leading zero in the integral part unless it is exactly "0"
// 4) exactly places fractional digits after a single '.', none when places is 0
// 5) no sign when every digit is zero
//
// Pass places < 0 for integers.
func CheckNumber(text string, places int) error {
	switch text {
	case "NaN", "ovfl", "-ovfl":
		return nil
	}

	// 2) sign
	digits := strings.TrimPrefix(text, "-")
	neg := len(digits) != len(text)
	if digits == "" {
		return fmt.Errorf("%q has no digits", text)
	}

	intPart, frac, hasPoint := strings.Cut(digits, ".")
	for _, part := range []string{intPart, frac} {
		for i := range len(part) {
			if part[i] < '0' || part[i] > '9' {
				return fmt.Errorf("%q: unexpected byte %q", text, part[i])
			}
		}
	}

	// 3) integral part
	if intPart == "" {
		return fmt.Errorf("%q has an empty integral part", text)
	}
	if len(intPart) > 1 && intPart[0] == '0' {
		return fmt.Errorf("%q has a leading zero", text)
	}

	// 4) fraction
	switch {
	case places < 0 && hasPoint:
		return fmt.Errorf("integer %q has a decimal point", text)
	case places == 0 && hasPoint:
		return fmt.Errorf("%q: point with zero places", text)
	case places > 0 && (!hasPoint || len(frac) != places):
		return fmt.Errorf("%q: want %d fractional digits", text, places)
	}

	// 5) negative zero
	if neg && strings.Trim(digits, "0.") == "" {
		return fmt.Errorf("%q is a negative zero", text)
	}
	return nil
}
