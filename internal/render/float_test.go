package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"ufmt/internal/testkit"
)

type floatCase struct {
	v      float64
	places Places
	f32    string
	f64    string
}

// Expected strings follow the bias tables applied in each width's own
// arithmetic, not decimal intuition: 1.005 is stored below 1.005, so it stays
// at 1.00.
var floatCases = []floatCase{
	{0, 3, "0.000", "0.000"},
	{1.005, 2, "1.00", "1.00"},
	{1.25, 1, "1.2", "1.3"},
	{2.675, 2, "2.68", "2.67"},
	{3.14159, 2, "3.14", "3.14"},
	{3.14159, 6, "3.141590", "3.141590"},
	{2.5, 0, "3", "3"},
	{-2.5, 0, "-3", "-3"},
	{0.5, 0, "1", "1"},
	{1, 0, "1", "1"},
	{100, 0, "100", "100"},
	{123.456, 3, "123.456", "123.456"},
	{-42.5, 1, "-42.5", "-42.5"},
	{-3.75, 1, "-3.7", "-3.7"},
	{-273.15, 2, "-273.15", "-273.15"},
	{0.1, 6, "0.100000", "0.100000"},
	{0.0625, 4, "0.0625", "0.0625"},
	{0.125, 2, "0.13", "0.13"},
	{99.9999, 3, "100.000", "100.000"},
	{9.995, 2, "10.00", "10.00"},
	{1234.5678, 4, "1234.5677", "1234.5678"},
	{12.3456, 6, "12.345601", "12.345600"},
	{-1, 6, "-1.000000", "-1.000000"},
	{-0.0005, 3, "-0.001", "-0.001"},
	{-0.05, 1, "-0.1", "-0.1"},
	{8388607, 0, "8388607", "8388607"},
	{8388608, 6, "8388608.000000", "8388608.000000"},
	{-8388608, 6, "-8388608.000000", "-8388608.000000"},
	{65535.5, 1, "65535.5", "65535.5"},
	{4294967295, 0, "ovfl", "4294967295"},
	{-4294967295, 6, "-ovfl", "-4294967295.000000"},
	{9000000, 3, "ovfl", "9000000.000"},
	{5000000000, 0, "ovfl", "ovfl"},
	{-5000000000, 2, "-ovfl", "-ovfl"},
}

func TestFmtFloatTable(t *testing.T) {
	for _, tt := range floatCases {
		got32, err := renderWith(func(f *Formatter) error {
			return FmtFloat32(f, float32(tt.v), tt.places, unpadded, ' ')
		})
		if err != nil {
			t.Fatalf("FmtFloat32(%v, %d) returned error: %v", tt.v, tt.places, err)
		}
		if got32 != tt.f32 {
			t.Errorf("FmtFloat32(%v, %d): want %q, got %q", tt.v, tt.places, tt.f32, got32)
		}

		got64, err := renderWith(func(f *Formatter) error {
			return FmtFloat64(f, tt.v, tt.places, unpadded, ' ')
		})
		if err != nil {
			t.Fatalf("FmtFloat64(%v, %d) returned error: %v", tt.v, tt.places, err)
		}
		if got64 != tt.f64 {
			t.Errorf("FmtFloat64(%v, %d): want %q, got %q", tt.v, tt.places, tt.f64, got64)
		}
	}
}

func TestFmtFloatSuppressesSignWhenRoundedToZero(t *testing.T) {
	tests := []struct {
		v      float64
		places Places
		want   string
	}{
		{-0.0004, 3, "0.000"},
		{math.Copysign(0, -1), 3, "0.000"},
		{-0.3, 0, "0"},
		{-0.049, 1, "0.0"},
		{-0.001, 2, "0.00"},
	}
	for _, tt := range tests {
		for _, width := range []string{"f32", "f64"} {
			got, err := renderWith(func(f *Formatter) error {
				if width == "f32" {
					return FmtFloat32(f, float32(tt.v), tt.places, unpadded, ' ')
				}
				return FmtFloat64(f, tt.v, tt.places, unpadded, ' ')
			})
			if err != nil {
				t.Fatalf("%s %v returned error: %v", width, tt.v, err)
			}
			if got != tt.want {
				t.Fatalf("%s %v @%d: want %q, got %q", width, tt.v, tt.places, tt.want, got)
			}
		}
	}
}

func TestFmtFloatSpecialValuesIgnorePadding(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "ovfl"},
		{math.Inf(-1), "-ovfl"},
	}
	for _, tt := range tests {
		for places := Places(0); places <= MaxPlaces; places++ {
			got, err := renderWith(func(f *Formatter) error {
				return FmtFloat64(f, tt.v, places, CenterAligned(12), '*')
			})
			if err != nil || got != tt.want {
				t.Fatalf("FmtFloat64(%v, %d): want %q, got %q (%v)", tt.v, places, tt.want, got, err)
			}
			got, err = renderWith(func(f *Formatter) error {
				return FmtFloat32(f, float32(tt.v), places, RightAligned(12), '*')
			})
			if err != nil || got != tt.want {
				t.Fatalf("FmtFloat32(%v, %d): want %q, got %q (%v)", tt.v, places, tt.want, got, err)
			}
		}
	}
}

func TestFmtFloatZeroPlacesHasNoPoint(t *testing.T) {
	for _, v := range []float64{0, 1.4, -17.6, 4294967294.4} {
		got, err := renderWith(func(f *Formatter) error { return FmtFloat64(f, v, 0, unpadded, ' ') })
		if err != nil {
			t.Fatalf("FmtFloat64(%v, 0) returned error: %v", v, err)
		}
		if strings.Contains(got, ".") {
			t.Fatalf("FmtFloat64(%v, 0) = %q contains a decimal point", v, got)
		}
	}
}

func TestFmtFloatPadding(t *testing.T) {
	got, err := renderWith(func(f *Formatter) error { return FmtFloat64(f, -1.5, 2, RightAligned(8), ' ') })
	if err != nil || got != "   -1.50" {
		t.Fatalf("want %q, got %q (%v)", "   -1.50", got, err)
	}
	got, err = renderWith(func(f *Formatter) error { return FmtFloat32(f, 7, 1, CenterAligned(8), '_') })
	if err != nil || got != "__7.0___" {
		t.Fatalf("want %q, got %q (%v)", "__7.0___", got, err)
	}
}

func TestFmtFloatRejectsEveryOutOfRangePlaces(t *testing.T) {
	for n := int(MaxPlaces) + 1; n <= math.MaxUint8; n++ {
		places := Places(n)
		var r testkit.Recorder
		f := NewFormatter(&r)
		if err := FmtFloat32(f, 1.5, places, unpadded, ' '); !errors.Is(err, ErrPlaces) {
			t.Fatalf("FmtFloat32 with places %d: expected ErrPlaces, got %v", n, err)
		}
		if err := FmtFloat64(f, math.NaN(), places, unpadded, ' '); !errors.Is(err, ErrPlaces) {
			t.Fatalf("FmtFloat64 with places %d: expected ErrPlaces, got %v", n, err)
		}
		if r.String() != "" {
			t.Fatalf("places %d: expected no output, got %q", n, r.String())
		}
	}
}

func TestFmtFloatWidestOutputFitsBuffer(t *testing.T) {
	for places := Places(0); places <= MaxPlaces; places++ {
		got, err := renderWith(func(f *Formatter) error {
			return FmtFloat64(f, -float64Limit, places, unpadded, ' ')
		})
		if err != nil {
			t.Fatalf("returned error: %v", err)
		}
		want := 1 + 10
		if places > 0 {
			want += 1 + int(places)
		}
		if len(got) != want || len(got) > fixedBufLen {
			t.Fatalf("places %d: want %d bytes, got %q", places, want, got)
		}
	}
}

func TestFmtFloatPropagatesSinkError(t *testing.T) {
	w := &testkit.FailAfter{N: 1}
	err := FmtFloat64(NewFormatter(w), 2.5, 1, RightAligned(6), ' ')
	if err != testkit.ErrBroken {
		t.Fatalf("expected sink error, got %v", err)
	}
	if got := w.String(); got != " " {
		t.Fatalf("partial output: want %q, got %q", " ", got)
	}

	w = &testkit.FailAfter{N: 0}
	if err := FmtFloat32(NewFormatter(w), float32(math.NaN()), 1, unpadded, ' '); err != testkit.ErrBroken {
		t.Fatalf("expected sink error for NaN, got %v", err)
	}
}
