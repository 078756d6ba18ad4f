package render

import (
	"math"

	"fortio.org/safecast"
)

const (
	textNaN     = "NaN"
	textOvfl    = "ovfl"
	textNegOvfl = "-ovfl"

	// float32Limit is 2^23; above it float32 has no fractional bits left.
	float32Limit float32 = 8_388_608
	// float64Limit is the largest integral part the uint32 split accepts.
	float64Limit float64 = math.MaxUint32
)

// Rounding bias (half a unit in the last place) and scale per Places.
var (
	addTab32 = [MaxPlaces + 1]float32{0.5, 0.05, 0.005, 0.000_5, 0.000_05, 0.000_005, 0.000_000_5}
	mulTab32 = [MaxPlaces + 1]float32{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000}
	addTab64 = [MaxPlaces + 1]float64{0.5, 0.05, 0.005, 0.000_5, 0.000_05, 0.000_005, 0.000_000_5}
	mulTab64 = [MaxPlaces + 1]float64{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000}
)

// FmtFloat32 renders v with the given number of fractional digits, rounding
// half up. NaN and magnitudes above 2^23 produce the fixed texts "NaN",
// "ovfl" and "-ovfl" without padding.
func FmtFloat32(f *Formatter, v float32, places Places, p Padding, fill rune) error {
	if !places.Valid() {
		return ErrPlaces
	}
	switch {
	case math.IsNaN(float64(v)):
		return f.WriteStr(textNaN)
	case v > float32Limit:
		return f.WriteStr(textOvfl)
	case v < -float32Limit:
		return f.WriteStr(textNegOvfl)
	}

	neg := math.Signbit(float64(v))
	a := v
	if neg {
		a = -v
	}
	a += addTab32[places]

	left, err := safecast.Truncate[uint32](a)
	if err != nil {
		return f.WriteStr(overflowText(neg))
	}
	right, err := safecast.Truncate[uint32]((a - float32(left)) * mulTab32[places])
	if err != nil {
		return f.WriteStr(overflowText(neg))
	}
	return f.fixedPoint(left, right, places, neg, p, fill)
}

// FmtFloat64 is FmtFloat32 for binary64 values; the overflow threshold is
// math.MaxUint32.
func FmtFloat64(f *Formatter, v float64, places Places, p Padding, fill rune) error {
	if !places.Valid() {
		return ErrPlaces
	}
	switch {
	case math.IsNaN(v):
		return f.WriteStr(textNaN)
	case v > float64Limit:
		return f.WriteStr(textOvfl)
	case v < -float64Limit:
		return f.WriteStr(textNegOvfl)
	}

	neg := math.Signbit(v)
	a := math.Abs(v) + addTab64[places]

	left, err := safecast.Truncate[uint32](a)
	if err != nil {
		return f.WriteStr(overflowText(neg))
	}
	right, err := safecast.Truncate[uint32]((a - float64(left)) * mulTab64[places])
	if err != nil {
		return f.WriteStr(overflowText(neg))
	}
	return f.fixedPoint(left, right, places, neg, p, fill)
}

func overflowText(neg bool) string {
	if neg {
		return textNegOvfl
	}
	return textOvfl
}

// fixedPoint writes right as exactly places digits, the point, then left,
// filling f.fixed from the end. The widest result is
// "-4294967295.999999", which is fixedBufLen bytes.
//
// A value that rounds to zero at this precision is written without a sign.
func (f *Formatter) fixedPoint(left, right uint32, places Places, neg bool, p Padding, fill rune) error {
	if left == 0 && right == 0 {
		neg = false
	}

	buf := &f.fixed
	i := len(buf)
	if places > 0 {
		point := len(buf) - int(places)
		for i > point {
			i--
			buf[i] = '0' + byte(right%10)
			right /= 10
		}
		i--
		buf[i] = '.'
	}
	for {
		i--
		buf[i] = '0' + byte(left%10)
		left /= 10
		if left == 0 {
			break
		}
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return f.emit(buf[i:], p, fill)
}
