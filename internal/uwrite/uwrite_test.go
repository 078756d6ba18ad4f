package uwrite

import (
	"errors"
	"strings"
	"testing"

	"lukechampine.com/uint128"

	"ufmt/internal/render"
	"ufmt/internal/sink"
)

func sprint(t *testing.T, format string, args ...render.Displayer) (string, error) {
	t.Helper()
	var storage [256]byte
	buf := sink.NewBuffer(storage[:])
	err := Fprint(buf, format, args...)
	return buf.String(), err
}

func TestFprint(t *testing.T) {
	sp := strings.Repeat
	cases := []struct {
		format string
		args   []render.Displayer
		want   string
	}{
		{"", nil, ""},
		{"plain", nil, "plain"},
		{"{}", []render.Displayer{render.I32(-42)}, "-42"},
		{"{:20}", []render.Displayer{render.U32(7)}, sp(" ", 19) + "7"},
		{"{:<20}", []render.Displayer{render.I16(-5)}, "-5" + sp(" ", 18)},
		{"{:>20}", []render.Displayer{render.I16(-5)}, sp(" ", 18) + "-5"},
		{"{:^20}", []render.Displayer{render.I16(-5)}, sp(" ", 9) + "-5" + sp(" ", 9)},
		{"{:0^20}", []render.Displayer{render.I16(-5)}, "000000000-5000000000"},
		{"{:>>4}", []render.Displayer{render.U8(9)}, ">>>9"},
		{"{:é^5}", []render.Displayer{render.Str("ab")}, "éabéé"},
		{"x={} y={}", []render.Displayer{render.U8(1), render.I64(-2)}, "x=1 y=-2"},
		{"{{{}}}", []render.Displayer{render.Str("a")}, "{a}"},
		{"{:>8.2}", []render.Displayer{render.F64(3.14159)}, "    3.14"},
		{"{:.0}", []render.Displayer{render.F64(2.4)}, "2"},
		{"{:.3}", []render.Displayer{render.F32(-0.0004)}, "0.000"},
		{"{:?}", []render.Displayer{render.F32(2)}, "2.000"},
		{"{:*<7?}", []render.Displayer{render.I8(-3)}, "-3*****"},
		{"{:>40}", []render.Displayer{render.U128(uint128.Max)}, " 340282366920938463463374607431768211455"},
		{"[{:<6}]", []render.Displayer{render.F64(1.5)}, "[1.500 ]"},
	}
	for _, tc := range cases {
		got, err := sprint(t, tc.format, tc.args...)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.format, err)
		}
		if got != tc.want {
			t.Fatalf("%q: want %q, got %q", tc.format, tc.want, got)
		}
	}
}

func TestParseSpec(t *testing.T) {
	cases := []struct {
		text string
		want Spec
	}{
		{"", Spec{Fill: ' ', Align: render.AlignUsual}},
		{":12", Spec{Fill: ' ', Align: render.AlignUsual, Width: 12, HasWidth: true}},
		{":<3", Spec{Fill: ' ', Align: render.AlignLeft, Width: 3, HasWidth: true}},
		{":_^9", Spec{Fill: '_', Align: render.AlignCenter, Width: 9, HasWidth: true}},
		{":.<4", Spec{Fill: '.', Align: render.AlignLeft, Width: 4, HasWidth: true}},
		{":.2", Spec{Fill: ' ', Align: render.AlignUsual, Places: 2, HasPlaces: true}},
		{":>10.6", Spec{Fill: ' ', Align: render.AlignRight, Width: 10, HasWidth: true, Places: 6, HasPlaces: true}},
		{":?", Spec{Fill: ' ', Align: render.AlignUsual, Debug: true}},
		{":^", Spec{Fill: ' ', Align: render.AlignCenter}},
	}
	for _, tc := range cases {
		got, err := ParseSpec(tc.text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("%q: want %+v, got %+v", tc.text, tc.want, got)
		}
	}
}

func TestParseSpecRejects(t *testing.T) {
	for _, text := range []string{"x", ":x", ":5x", ":.", ":.a", ":99999", ":?5", ":<<<"} {
		if _, err := ParseSpec(text); !errors.Is(err, ErrSyntax) {
			t.Fatalf("%q: want ErrSyntax, got %v", text, err)
		}
	}
	_, err := ParseSpec(":.7")
	if !errors.Is(err, ErrSyntax) || !errors.Is(err, render.ErrPlaces) {
		t.Fatalf("want ErrSyntax wrapping ErrPlaces, got %v", err)
	}
}

func TestFprintErrorsWriteNothing(t *testing.T) {
	cases := []struct {
		format string
		args   []render.Displayer
		want   error
	}{
		{"a{", nil, ErrSyntax},
		{"a}b", nil, ErrSyntax},
		{"ok {:q}", []render.Displayer{render.U8(1)}, ErrSyntax},
		{"{} {}", []render.Displayer{render.U8(1)}, ErrArgs},
		{"{}", []render.Displayer{render.U8(1), render.U8(2)}, ErrArgs},
		{"{:.2}", []render.Displayer{render.I32(1)}, ErrArgs},
		{"{:?}", []render.Displayer{render.Str("s")}, ErrArgs},
		{"{:.2?}", []render.Displayer{render.F64(1)}, ErrArgs},
	}
	for _, tc := range cases {
		got, err := sprint(t, tc.format, tc.args...)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: want %v, got %v", tc.format, tc.want, err)
		}
		if got != "" {
			t.Fatalf("%q: want no output, got %q", tc.format, got)
		}
	}
}

func TestFprintStopsOnSinkError(t *testing.T) {
	var storage [4]byte
	buf := sink.NewBuffer(storage[:])
	err := Fprint(buf, "ab{:>6}", render.I32(1))
	if !errors.Is(err, sink.ErrFull) {
		t.Fatalf("want ErrFull, got %v", err)
	}
	if buf.String() != "ab  " {
		t.Fatalf("want %q, got %q", "ab  ", buf.String())
	}
}

func TestCheck(t *testing.T) {
	if err := Check("{} and {:>4} {{}}", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Check("{}", 0); !errors.Is(err, ErrArgs) {
		t.Fatalf("want ErrArgs, got %v", err)
	}
	if err := Check("{", 1); !errors.Is(err, ErrSyntax) {
		t.Fatalf("want ErrSyntax, got %v", err)
	}
}

func TestPrinterDoesNotAllocate(t *testing.T) {
	var storage [128]byte
	buf := sink.NewBuffer(storage[:])
	p := NewPrinter(buf)
	args := []render.Displayer{render.I32(-1234), render.F64(2.5), render.Str("ok")}
	allocs := testing.AllocsPerRun(100, func() {
		buf.Reset()
		if err := p.Print("[{:>7}|{:_<8.2}|{:^6}]", args...); err != nil {
			t.Fatalf("print: %v", err)
		}
	})
	if allocs != 0 {
		t.Fatalf("want 0 allocations, got %v", allocs)
	}
	if want := "[  -1234|2.50____|  ok  ]"; buf.String() != want {
		t.Fatalf("want %q, got %q", want, buf.String())
	}
}
