// Package render turns primitive numbers into text written through a Writer.
//
// Every rendering call is bounded and allocation-free: digits are assembled
// right-to-left in fixed arrays owned by the Formatter, and the finished
// slice is handed to the Writer together with any padding.
//
// # Entry points
//
//   - FmtInt, FmtUint, FmtInt128, FmtUint128: decimal integers of any width
//   - FmtFloat32, FmtFloat64: fixed decimal places in [0, 6]
//   - Debug, Display: the default renderings of the wrapper types (I8..U128,
//     F32, F64, Str)
//
// # Special outputs
//
// NaN renders as "NaN". Floats whose integral part does not fit the 32-bit
// accumulator render as "ovfl" or "-ovfl". None of these are errors; the only
// errors a rendering call returns are ErrPlaces and whatever the Writer
// returns.
//
// # Usage
//
//	f := render.NewFormatter(w)
//	err := render.FmtInt(f, int32(-42), render.RightAligned(6), ' ')
//	err = render.FmtFloat64(f, 3.14159, 2, render.LeftAligned(0), ' ')
package render
