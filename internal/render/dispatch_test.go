package render

import (
	"math"
	"testing"

	"lukechampine.com/uint128"

	"ufmt/internal/testkit"
)

func TestDebugAndDisplayCoincide(t *testing.T) {
	values := []interface {
		Debugger
		Displayer
	}{
		I8(-128), I16(1000), I32(-42), I64(math.MaxInt64), Int(-7),
		U8(255), U16(65535), U32(0), U64(math.MaxUint64), Uint(12),
		MinI128, U128(uint128.Max),
		F32(1.5), F64(-273.15), F64(math.NaN()),
	}
	want := []string{
		"-128", "1000", "-42", "9223372036854775807", "-7",
		"255", "65535", "0", "18446744073709551615", "12",
		"-170141183460469231731687303715884105728", "340282366920938463463374607431768211455",
		"1.500", "-273.150", "NaN",
	}
	for i, v := range values {
		var dbg, disp testkit.Recorder
		if err := Debug(&dbg, v); err != nil {
			t.Fatalf("Debug(%v) returned error: %v", v, err)
		}
		if err := Display(&disp, v); err != nil {
			t.Fatalf("Display(%v) returned error: %v", v, err)
		}
		if dbg.String() != want[i] {
			t.Fatalf("Debug(%v): want %q, got %q", v, want[i], dbg.String())
		}
		if disp.String() != dbg.String() {
			t.Fatalf("Display(%v) = %q differs from Debug %q", v, disp.String(), dbg.String())
		}
	}
}

func TestFloatDebugIsUnpaddedThreePlaces(t *testing.T) {
	var r testkit.Recorder
	if err := Debug(&r, F32(2)); err != nil {
		t.Fatalf("Debug returned error: %v", err)
	}
	if r.String() != "2.000" || r.Chars != 0 || r.Strs != 1 {
		t.Fatalf("want a single unpadded write of %q, got %q (%d strs, %d chars)", "2.000", r.String(), r.Strs, r.Chars)
	}
}

func TestFmtFloatEntryPoint(t *testing.T) {
	var fd FloatDisplayer = F64(3.14159)
	got, err := renderWith(func(f *Formatter) error { return fd.FmtFloat(f, 2, RightAligned(7), '0') })
	if err != nil || got != "0003.14" {
		t.Fatalf("want %q, got %q (%v)", "0003.14", got, err)
	}
	got, err = renderWith(func(f *Formatter) error { return fd.FmtPadded(f, LeftAligned(8), '.') })
	if err != nil || got != "3.142..." {
		t.Fatalf("want %q, got %q (%v)", "3.142...", got, err)
	}
}

func TestStrPads(t *testing.T) {
	got, err := renderWith(func(f *Formatter) error { return Str("temp").FmtPadded(f, CenterAligned(9), '-') })
	if err != nil || got != "--temp---" {
		t.Fatalf("want %q, got %q (%v)", "--temp---", got, err)
	}
}

func TestRenderingIsIdempotentAcrossFormatters(t *testing.T) {
	renders := []func(f *Formatter) error{
		func(f *Formatter) error { return FmtInt(f, int64(-9876543210), CenterAligned(15), '*') },
		func(f *Formatter) error { return FmtFloat32(f, -12.75, 2, RightAligned(10), ' ') },
		func(f *Formatter) error { return FmtUint128(f, uint128.Max, LeftAligned(45), '.') },
	}
	for i, fn := range renders {
		a, errA := renderWith(fn)
		b, errB := renderWith(fn)
		if errA != nil || errB != nil {
			t.Fatalf("render %d returned errors: %v, %v", i, errA, errB)
		}
		if a != b {
			t.Fatalf("render %d differs between formatters: %q vs %q", i, a, b)
		}
	}

	// A reused Formatter must not leak digits from an earlier, longer value.
	var r testkit.Recorder
	f := NewFormatter(&r)
	_ = FmtInt128(f, MinI128, unpadded, ' ')
	r.Reset()
	_ = FmtInt(f, 5, unpadded, ' ')
	if r.String() != "5" {
		t.Fatalf("want %q after reuse, got %q", "5", r.String())
	}
}

func TestRenderingDoesNotAllocate(t *testing.T) {
	var sink arraySink
	f := NewFormatter(&sink)
	allocs := testing.AllocsPerRun(200, func() {
		sink.reset()
		_ = FmtInt(f, int64(-1234567890), RightAligned(16), ' ')
		_ = FmtUint(f, uint16(65535), CenterAligned(9), '*')
		_ = FmtInt128(f, MinI128, unpadded, ' ')
		_ = FmtFloat32(f, 3.25, 2, LeftAligned(8), '_')
		_ = FmtFloat64(f, -273.15, 3, Usual(10), ' ')
		_ = FmtFloat64(f, math.NaN(), 3, Usual(10), ' ')
	})
	if allocs != 0 {
		t.Fatalf("expected zero allocations per render, got %v", allocs)
	}
	want := "     -1234567890" + "**65535**" + "-170141183460469231731687303715884105728" +
		"3.25____" + "  -273.150" + "NaN"
	if sink.String() != want {
		t.Fatalf("want %q, got %q", want, sink.String())
	}
}
