package render

import (
	"math"

	"lukechampine.com/uint128"
)

// Signed is the set of signed integer kinds rendered by FmtInt.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds rendered by FmtUint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// I128 is a two's-complement signed 128-bit integer.
type I128 struct {
	Hi int64
	Lo uint64
}

var (
	// MinI128 is the smallest I128 value.
	MinI128 = I128{Hi: math.MinInt64, Lo: 0}
	// MaxI128 is the largest I128 value.
	MaxI128 = I128{Hi: math.MaxInt64, Lo: math.MaxUint64}
)

// I128From64 sign-extends v.
func I128From64(v int64) I128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return I128{Hi: hi, Lo: asUint64(v)}
}

// IsNeg reports whether v is below zero.
func (v I128) IsNeg() bool {
	return v.Hi < 0
}

// Abs returns |v| as an unsigned value. MinI128 maps to 2^127.
func (v I128) Abs() uint128.Uint128 {
	u := uint128.New(v.Lo, asUint64(v.Hi))
	if v.Hi < 0 {
		return uint128.Zero.SubWrap(u)
	}
	return u
}

// FmtInt renders a signed integer of any width.
func FmtInt[T Signed](f *Formatter, v T, p Padding, fill rune) error {
	n := int64(v)
	u := asUint64(n)
	if n < 0 {
		u = ^u + 1
	}
	return f.uint64Digits(u, n < 0, p, fill)
}

// FmtUint renders an unsigned integer of any width.
func FmtUint[T Unsigned](f *Formatter, v T, p Padding, fill rune) error {
	return f.uint64Digits(uint64(v), false, p, fill)
}

// FmtInt128 renders a signed 128-bit integer.
func FmtInt128(f *Formatter, v I128, p Padding, fill rune) error {
	return f.uint128Digits(v.Abs(), v.IsNeg(), p, fill)
}

// FmtUint128 renders an unsigned 128-bit integer.
func FmtUint128(f *Formatter, v uint128.Uint128, p Padding, fill rune) error {
	return f.uint128Digits(v, false, p, fill)
}

// uint64Digits fills f.ints from the end. At most 20 digits and a sign are
// written, well inside intBufLen.
func (f *Formatter) uint64Digits(u uint64, neg bool, p Padding, fill rune) error {
	buf := &f.ints
	i := putUint64(buf, len(buf), u)
	if neg {
		i--
		buf[i] = '-'
	}
	return f.emit(buf[i:], p, fill)
}

// uint128Digits peels decimal digits off the high half until the value fits
// 64 bits. 2^128-1 has 39 digits, so with a sign i never drops below zero.
func (f *Formatter) uint128Digits(u uint128.Uint128, neg bool, p Padding, fill rune) error {
	buf := &f.ints
	i := len(buf)
	for u.Hi != 0 {
		var r uint64
		u, r = u.QuoRem64(10)
		i--
		buf[i] = '0' + byte(r)
	}
	i = putUint64(buf, i, u.Lo)
	if neg {
		i--
		buf[i] = '-'
	}
	return f.emit(buf[i:], p, fill)
}

// putUint64 writes the decimal digits of u ending just before index end and
// returns the index of the first digit. Zero writes a single '0'.
func putUint64(buf *[intBufLen]byte, end int, u uint64) int {
	i := end
	for {
		i--
		buf[i] = '0' + byte(u%10)
		u /= 10
		if u == 0 {
			return i
		}
	}
}

func asUint64(v int64) uint64 {
	return uint64(v) //nolint:gosec // G115: intentional bit-pattern reinterpretation for two's complement.
}
