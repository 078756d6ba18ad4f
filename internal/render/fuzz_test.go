package render

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"ufmt/internal/testkit"
)

func FuzzFmtInt64(f *testing.F) {
	for _, seed := range []int64{0, -1, 42, math.MinInt64, math.MaxInt64} {
		f.Add(seed, uint8(0), uint8(AlignRight))
	}
	f.Fuzz(func(t *testing.T, v int64, width, align uint8) {
		p := Padding{Align: Align(align % 4), Width: int(width % 64)}
		got, err := renderWith(func(f *Formatter) error { return FmtInt(f, v, p, '.') })
		if err != nil {
			t.Fatalf("%d: %v", v, err)
		}
		natural := strconv.FormatInt(v, 10)
		if len(got) != max(p.Width, len(natural)) {
			t.Fatalf("%d %v: length %d for %q", v, p, len(got), got)
		}
		if err := testkit.CheckNumber(strings.Trim(got, "."), -1); err != nil {
			t.Fatal(err)
		}
		if strings.Trim(got, ".") != natural {
			t.Fatalf("%d %v: want %q inside %q", v, p, natural, got)
		}
	})
}

func FuzzFmtInt128(f *testing.F) {
	f.Add(int64(math.MinInt64), uint64(0))
	f.Add(int64(-1), uint64(math.MaxUint64))
	f.Add(int64(math.MaxInt64), uint64(math.MaxUint64))
	f.Add(int64(0), uint64(10))
	f.Fuzz(func(t *testing.T, hi int64, lo uint64) {
		v := I128{Hi: hi, Lo: lo}
		got, err := renderWith(func(f *Formatter) error { return FmtInt128(f, v, unpadded, ' ') })
		if err != nil {
			t.Fatalf("%+v: %v", v, err)
		}
		want := new(big.Int).Lsh(big.NewInt(hi), 64)
		want.Or(want, new(big.Int).SetUint64(lo))
		if got != want.String() {
			t.Fatalf("%+v: want %s, got %s", v, want, got)
		}
	})
}

func FuzzFmtFloat64(f *testing.F) {
	for _, seed := range []float64{0, -0.0004, 1.005, 9000000, 5e9, -4294967295, math.Inf(1), math.NaN()} {
		f.Add(seed, uint8(3))
	}
	f.Fuzz(func(t *testing.T, v float64, places uint8) {
		got, err := renderWith(func(f *Formatter) error {
			return FmtFloat64(f, v, Places(places), unpadded, ' ')
		})
		if places > uint8(MaxPlaces) {
			if !errors.Is(err, ErrPlaces) || got != "" {
				t.Fatalf("places %d: want ErrPlaces and no output, got %q, %v", places, got, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("%v@%d: %v", v, places, err)
		}
		if len(got) > fixedBufLen {
			t.Fatalf("%v@%d: %q overflows the buffer", v, places, got)
		}
		if err := testkit.CheckNumber(got, int(places)); err != nil {
			t.Fatalf("%v@%d: %v", v, places, err)
		}
	})
}
