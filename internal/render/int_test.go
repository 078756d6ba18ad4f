package render

import (
	"math"
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"lukechampine.com/uint128"

	"ufmt/internal/testkit"
)

func TestFmtIntExtremes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(f *Formatter) error
		want string
	}{
		{"i8 min", func(f *Formatter) error { return FmtInt(f, int8(math.MinInt8), unpadded, ' ') }, "-128"},
		{"i8 max", func(f *Formatter) error { return FmtInt(f, int8(math.MaxInt8), unpadded, ' ') }, "127"},
		{"i16 min", func(f *Formatter) error { return FmtInt(f, int16(math.MinInt16), unpadded, ' ') }, "-32768"},
		{"i32 min", func(f *Formatter) error { return FmtInt(f, int32(math.MinInt32), unpadded, ' ') }, "-2147483648"},
		{"i64 min", func(f *Formatter) error { return FmtInt(f, int64(math.MinInt64), unpadded, ' ') }, "-9223372036854775808"},
		{"i64 max", func(f *Formatter) error { return FmtInt(f, int64(math.MaxInt64), unpadded, ' ') }, "9223372036854775807"},
		{"u8 max", func(f *Formatter) error { return FmtUint(f, uint8(math.MaxUint8), unpadded, ' ') }, "255"},
		{"u16 max", func(f *Formatter) error { return FmtUint(f, uint16(math.MaxUint16), unpadded, ' ') }, "65535"},
		{"u32 max", func(f *Formatter) error { return FmtUint(f, uint32(math.MaxUint32), unpadded, ' ') }, "4294967295"},
		{"u64 max", func(f *Formatter) error { return FmtUint(f, uint64(math.MaxUint64), unpadded, ' ') }, "18446744073709551615"},
		{"int zero", func(f *Formatter) error { return FmtInt(f, 0, unpadded, ' ') }, "0"},
		{"uint zero", func(f *Formatter) error { return FmtUint(f, uint(0), unpadded, ' ') }, "0"},
		{"i128 min", func(f *Formatter) error { return FmtInt128(f, MinI128, unpadded, ' ') }, "-170141183460469231731687303715884105728"},
		{"i128 max", func(f *Formatter) error { return FmtInt128(f, MaxI128, unpadded, ' ') }, "170141183460469231731687303715884105727"},
		{"i128 minus one", func(f *Formatter) error { return FmtInt128(f, I128From64(-1), unpadded, ' ') }, "-1"},
		{"i128 zero", func(f *Formatter) error { return FmtInt128(f, I128{}, unpadded, ' ') }, "0"},
		{"u128 max", func(f *Formatter) error { return FmtUint128(f, uint128.Max, unpadded, ' ') }, "340282366920938463463374607431768211455"},
		{"u128 2^64", func(f *Formatter) error { return FmtUint128(f, uint128.New(0, 1), unpadded, ' ') }, "18446744073709551616"},
		{"u128 zero", func(f *Formatter) error { return FmtUint128(f, uint128.Zero, unpadded, ' ') }, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderWith(tt.fn)
			if err != nil {
				t.Fatalf("render returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFmtI128MinFillsWholeBuffer(t *testing.T) {
	got, err := renderWith(func(f *Formatter) error { return FmtInt128(f, MinI128, unpadded, ' ') })
	if err != nil {
		t.Fatalf("render returned error: %v", err)
	}
	if len(got) != intBufLen {
		t.Fatalf("expected the widest value to use all %d bytes, got %d (%q)", intBufLen, len(got), got)
	}
}

func TestFmtIntRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var r testkit.Recorder
	f := NewFormatter(&r)
	for range 5000 {
		v := rng.Int64() >> rng.UintN(64)
		if rng.IntN(2) == 0 {
			v = -v
		}
		r.Reset()
		if err := FmtInt(f, v, unpadded, ' '); err != nil {
			t.Fatalf("FmtInt(%d) returned error: %v", v, err)
		}
		got := r.String()
		back, err := strconv.ParseInt(got, 10, 64)
		if err != nil || back != v {
			t.Fatalf("FmtInt(%d) = %q does not parse back (%v)", v, got, err)
		}
		if v < 0 && strings.Count(got, "-") != 1 {
			t.Fatalf("FmtInt(%d) = %q: want exactly one sign", v, got)
		}
	}
}

func TestFmtUintRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var r testkit.Recorder
	f := NewFormatter(&r)
	for range 5000 {
		v := rng.Uint64() >> rng.UintN(64)
		r.Reset()
		if err := FmtUint(f, v, unpadded, ' '); err != nil {
			t.Fatalf("FmtUint(%d) returned error: %v", v, err)
		}
		if got, want := r.String(), strconv.FormatUint(v, 10); got != want {
			t.Fatalf("want %q, got %q", want, got)
		}
	}
}

func TestFmt128MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	var r testkit.Recorder
	f := NewFormatter(&r)
	for range 2000 {
		hi, lo := rng.Uint64()>>rng.UintN(64), rng.Uint64()

		r.Reset()
		u := uint128.New(lo, hi)
		if err := FmtUint128(f, u, unpadded, ' '); err != nil {
			t.Fatalf("FmtUint128 returned error: %v", err)
		}
		if got, want := r.String(), u.Big().String(); got != want {
			t.Fatalf("u128 %d:%d: want %q, got %q", hi, lo, want, got)
		}

		r.Reset()
		s := I128{Hi: int64(hi), Lo: lo}
		if err := FmtInt128(f, s, unpadded, ' '); err != nil {
			t.Fatalf("FmtInt128 returned error: %v", err)
		}
		want := new(big.Int).Lsh(big.NewInt(s.Hi), 64)
		want.Or(want, new(big.Int).SetUint64(s.Lo))
		if got := r.String(); got != want.String() {
			t.Fatalf("i128 %d:%d: want %q, got %q", s.Hi, s.Lo, want.String(), got)
		}
	}
}

func TestFmtIntPadding(t *testing.T) {
	tests := []struct {
		name string
		fn   func(f *Formatter) error
		want string
	}{
		{"i32 right 6", func(f *Formatter) error { return FmtInt(f, int32(-42), RightAligned(6), ' ') }, "   -42"},
		{"u8 center 7", func(f *Formatter) error { return FmtUint(f, uint8(255), CenterAligned(7), '*') }, "**255**"},
		{"i8 usual 20", func(f *Formatter) error { return FmtInt(f, int8(-5), Usual(20), ' ') }, strings.Repeat(" ", 18) + "-5"},
		{"i16 left 20", func(f *Formatter) error { return FmtInt(f, int16(300), LeftAligned(20), ' ') }, "300" + strings.Repeat(" ", 17)},
		{"u64 center 20 zero fill", func(f *Formatter) error { return FmtUint(f, uint64(12345), CenterAligned(20), '0') }, "00000001234500000000"},
		{"i128 zero fill center", func(f *Formatter) error { return FmtInt128(f, I128From64(-7), CenterAligned(20), '0') }, "000000000-7000000000"},
		{"width smaller than value", func(f *Formatter) error { return FmtUint(f, uint32(123456), RightAligned(3), ' ') }, "123456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderWith(tt.fn)
			if err != nil {
				t.Fatalf("render returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFmtIntPropagatesSinkError(t *testing.T) {
	w := &testkit.FailAfter{N: 0}
	if err := FmtInt(NewFormatter(w), int64(-1), unpadded, ' '); err != testkit.ErrBroken {
		t.Fatalf("expected sink error, got %v", err)
	}
	if w.String() != "" {
		t.Fatalf("expected no output, got %q", w.String())
	}
}
