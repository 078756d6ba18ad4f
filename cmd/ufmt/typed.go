package main

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"lukechampine.com/uint128"

	"ufmt/internal/record"
	"ufmt/internal/render"
)

// valueTypes lists the names accepted by --type and by type:value arguments.
var valueTypes = []string{
	"i8", "i16", "i32", "i64", "i128", "isize",
	"u8", "u16", "u32", "u64", "u128", "usize",
	"f32", "f64", "str",
}

type integerValue interface {
	safecast.Integer
	render.PaddedDisplayer
}

func parseSigned[T integerValue](text string) (render.PaddedDisplayer, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, err
	}
	n, err := safecast.Conv[T](v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func parseUnsigned[T integerValue](text string) (render.PaddedDisplayer, error) {
	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, err
	}
	n, err := safecast.Conv[T](v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// parseValue turns text into the render wrapper for typ.
func parseValue(typ, text string) (render.PaddedDisplayer, error) {
	var (
		v   render.PaddedDisplayer
		err error
	)
	switch typ {
	case "i8":
		v, err = parseSigned[render.I8](text)
	case "i16":
		v, err = parseSigned[render.I16](text)
	case "i32":
		v, err = parseSigned[render.I32](text)
	case "i64":
		v, err = parseSigned[render.I64](text)
	case "isize":
		v, err = parseSigned[render.Int](text)
	case "u8":
		v, err = parseUnsigned[render.U8](text)
	case "u16":
		v, err = parseUnsigned[render.U16](text)
	case "u32":
		v, err = parseUnsigned[render.U32](text)
	case "u64":
		v, err = parseUnsigned[render.U64](text)
	case "usize":
		v, err = parseUnsigned[render.Uint](text)
	case "i128":
		var n render.I128
		n, err = record.ParseI128(text)
		v = n
	case "u128":
		var u uint128.Uint128
		u, err = record.ParseU128(text)
		v = render.U128(u)
	case "f32":
		var f float64
		f, err = strconv.ParseFloat(text, 32)
		v = render.F32(float32(f))
	case "f64":
		var f float64
		f, err = strconv.ParseFloat(text, 64)
		v = render.F64(f)
	case "str":
		v = render.Str(text)
	default:
		return nil, fmt.Errorf("unknown type %q (expected one of %s)", typ, strings.Join(valueTypes, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", typ, text, err)
	}
	return v, nil
}

// parseTypedArg parses "type:value", e.g. "i32:-42" or "str:a:b".
func parseTypedArg(arg string) (render.PaddedDisplayer, error) {
	typ, text, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("argument %q: want type:value (e.g. i32:-42)", arg)
	}
	return parseValue(typ, text)
}

func isIntType(typ string) bool {
	switch typ {
	case "i8", "i16", "i32", "i64", "i128", "isize", "u8", "u16", "u32", "u64", "u128", "usize":
		return true
	}
	return false
}
