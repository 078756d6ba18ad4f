package record

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"ufmt/internal/render"
)

var (
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxI128   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI128   = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	errRange  = errors.New("out of range")
	errSyntax = errors.New("invalid syntax")
)

// Parse builds a reading of the given kind from decimal text.
func Parse(sensor string, kind Kind, text string) (Reading, error) {
	text = strings.TrimSpace(text)
	wrap := func(err error) error {
		return fmt.Errorf("%w: %s %q: %w", ErrValue, kind, text, err)
	}
	switch kind {
	case KindI64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Int64(sensor, v), nil
	case KindU64:
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Uint64(sensor, v), nil
	case KindF32:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Float32(sensor, float32(v)), nil
	case KindF64:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Float64(sensor, v), nil
	case KindI128:
		v, err := ParseI128(text)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Int128(sensor, v), nil
	case KindU128:
		v, err := ParseU128(text)
		if err != nil {
			return Reading{}, wrap(err)
		}
		return Uint128(sensor, v), nil
	default:
		return Reading{}, fmt.Errorf("%w: %s", ErrKind, kind)
	}
}

// ParseU128 parses an unsigned decimal integer below 2^128.
func ParseU128(text string) (uint128.Uint128, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return uint128.Zero, errSyntax
	}
	if n.Sign() < 0 || n.BitLen() > 128 {
		return uint128.Zero, errRange
	}
	return uint128.FromBig(n), nil
}

// ParseI128 parses a signed decimal integer in [-2^127, 2^127).
func ParseI128(text string) (render.I128, error) {
	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return render.I128{}, errSyntax
	}
	if n.Cmp(minI128) < 0 || n.Cmp(maxI128) > 0 {
		return render.I128{}, errRange
	}
	if n.Sign() < 0 {
		n.Add(n, two128)
	}
	u := uint128.FromBig(n)
	//nolint:gosec // G115: reinterpreting the high word
	return render.I128{Hi: int64(u.Hi), Lo: u.Lo}, nil
}
