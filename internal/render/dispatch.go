package render

import "lukechampine.com/uint128"

// Debugger is implemented by values with a debug rendering.
type Debugger interface {
	FmtDebug(f *Formatter) error
}

// Displayer is implemented by values with a display rendering.
type Displayer interface {
	FmtDisplay(f *Formatter) error
}

// PaddedDisplayer renders its display form inside a padded field.
type PaddedDisplayer interface {
	Displayer
	FmtPadded(f *Formatter, p Padding, fill rune) error
}

// FloatDisplayer additionally accepts an explicit precision.
type FloatDisplayer interface {
	PaddedDisplayer
	FmtFloat(f *Formatter, places Places, p Padding, fill rune) error
}

// unpadded is the field used by the default renderings.
var unpadded = LeftAligned(0)

// Debug renders v through a Formatter created for this call.
func Debug(w Writer, v Debugger) error {
	var f Formatter
	f.Reset(w)
	return v.FmtDebug(&f)
}

// Display renders v through a Formatter created for this call.
func Display(w Writer, v Displayer) error {
	var f Formatter
	f.Reset(w)
	return v.FmtDisplay(&f)
}

// Wrapper types give each primitive its own method set. Debug and display
// coincide for numbers.
type (
	I8   int8
	I16  int16
	I32  int32
	I64  int64
	Int  int
	U8   uint8
	U16  uint16
	U32  uint32
	U64  uint64
	Uint uint
	U128 uint128.Uint128
	F32  float32
	F64  float64
	Str  string
)

func (v I8) FmtDebug(f *Formatter) error { return FmtInt(f, v, unpadded, ' ') }
func (v I8) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v I8) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt(f, v, p, fill)
}

func (v I16) FmtDebug(f *Formatter) error { return FmtInt(f, v, unpadded, ' ') }
func (v I16) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v I16) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt(f, v, p, fill)
}

func (v I32) FmtDebug(f *Formatter) error { return FmtInt(f, v, unpadded, ' ') }
func (v I32) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v I32) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt(f, v, p, fill)
}

func (v I64) FmtDebug(f *Formatter) error { return FmtInt(f, v, unpadded, ' ') }
func (v I64) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v I64) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt(f, v, p, fill)
}

func (v Int) FmtDebug(f *Formatter) error { return FmtInt(f, v, unpadded, ' ') }
func (v Int) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v Int) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt(f, v, p, fill)
}

func (v U8) FmtDebug(f *Formatter) error { return FmtUint(f, v, unpadded, ' ') }
func (v U8) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v U8) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint(f, v, p, fill)
}

func (v U16) FmtDebug(f *Formatter) error { return FmtUint(f, v, unpadded, ' ') }
func (v U16) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v U16) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint(f, v, p, fill)
}

func (v U32) FmtDebug(f *Formatter) error { return FmtUint(f, v, unpadded, ' ') }
func (v U32) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v U32) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint(f, v, p, fill)
}

func (v U64) FmtDebug(f *Formatter) error { return FmtUint(f, v, unpadded, ' ') }
func (v U64) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v U64) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint(f, v, p, fill)
}

func (v Uint) FmtDebug(f *Formatter) error { return FmtUint(f, v, unpadded, ' ') }
func (v Uint) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v Uint) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint(f, v, p, fill)
}

func (v I128) FmtDebug(f *Formatter) error { return FmtInt128(f, v, unpadded, ' ') }
func (v I128) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v I128) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtInt128(f, v, p, fill)
}

func (v U128) FmtDebug(f *Formatter) error { return FmtUint128(f, uint128.Uint128(v), unpadded, ' ') }
func (v U128) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v U128) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return FmtUint128(f, uint128.Uint128(v), p, fill)
}

// FmtFloat is the parameterised entry point used when a precision or width
// is requested explicitly.
func (v F32) FmtFloat(f *Formatter, places Places, p Padding, fill rune) error {
	return FmtFloat32(f, float32(v), places, p, fill)
}

// FmtDebug renders with DebugPlaces and no padding.
func (v F32) FmtDebug(f *Formatter) error { return v.FmtFloat(f, DebugPlaces, unpadded, ' ') }
func (v F32) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v F32) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return v.FmtFloat(f, DebugPlaces, p, fill)
}

func (v F64) FmtFloat(f *Formatter, places Places, p Padding, fill rune) error {
	return FmtFloat64(f, float64(v), places, p, fill)
}

func (v F64) FmtDebug(f *Formatter) error { return v.FmtFloat(f, DebugPlaces, unpadded, ' ') }
func (v F64) FmtDisplay(f *Formatter) error { return v.FmtDebug(f) }
func (v F64) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return v.FmtFloat(f, DebugPlaces, p, fill)
}

// Str lets labels share a field layout with numbers.
func (v Str) FmtDisplay(f *Formatter) error { return f.WriteStr(string(v)) }
func (v Str) FmtPadded(f *Formatter, p Padding, fill rune) error {
	return f.Pad(string(v), p, fill)
}

var (
	_ FloatDisplayer  = F32(0)
	_ FloatDisplayer  = F64(0)
	_ PaddedDisplayer = I128{}
	_ PaddedDisplayer = U128{}
	_ PaddedDisplayer = Str("")
	_ Debugger        = Uint(0)
)
