package record

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"lukechampine.com/uint128"

	"ufmt/internal/render"
)

var (
	ErrKind   = errors.New("record: unknown kind")
	ErrValue  = errors.New("record: bad value")
	ErrSchema = errors.New("record: schema mismatch")
)

// Reading is one sampled value. Only the fields of its Kind are meaningful:
// Int for i64, Uint for u64, Float for both float kinds, Hi and Lo for the
// 128-bit kinds (Hi holds the two's-complement high word for i128).
type Reading struct {
	Sensor string  `msgpack:"sensor"`
	Kind   Kind    `msgpack:"kind"`
	Int    int64   `msgpack:"int,omitempty"`
	Uint   uint64  `msgpack:"uint,omitempty"`
	Float  float64 `msgpack:"float,omitempty"`
	Hi     uint64  `msgpack:"hi,omitempty"`
	Lo     uint64  `msgpack:"lo,omitempty"`
}

func Int64(sensor string, v int64) Reading {
	return Reading{Sensor: sensor, Kind: KindI64, Int: v}
}

func Uint64(sensor string, v uint64) Reading {
	return Reading{Sensor: sensor, Kind: KindU64, Uint: v}
}

func Float32(sensor string, v float32) Reading {
	return Reading{Sensor: sensor, Kind: KindF32, Float: float64(v)}
}

func Float64(sensor string, v float64) Reading {
	return Reading{Sensor: sensor, Kind: KindF64, Float: v}
}

func Int128(sensor string, v render.I128) Reading {
	//nolint:gosec // G115: bit pattern is kept, not the value
	return Reading{Sensor: sensor, Kind: KindI128, Hi: uint64(v.Hi), Lo: v.Lo}
}

func Uint128(sensor string, v uint128.Uint128) Reading {
	return Reading{Sensor: sensor, Kind: KindU128, Hi: v.Hi, Lo: v.Lo}
}

// Validate checks that the reading can be rendered.
func (r Reading) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %s (sensor %q)", ErrKind, r.Kind, r.Sensor)
	}
	if r.Kind == KindF32 {
		if _, err := safecast.Convert[float32](r.Float); err != nil {
			return fmt.Errorf("%w: %v is not a float32 (sensor %q)", ErrValue, r.Float, r.Sensor)
		}
	}
	return nil
}

// Value returns the render wrapper for the reading.
func (r Reading) Value() (render.PaddedDisplayer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	switch r.Kind {
	case KindI64:
		return render.I64(r.Int), nil
	case KindU64:
		return render.U64(r.Uint), nil
	case KindF32:
		return render.F32(float32(r.Float)), nil
	case KindF64:
		return render.F64(r.Float), nil
	case KindI128:
		//nolint:gosec // G115: restores the bit pattern stored by Int128
		return render.I128{Hi: int64(r.Hi), Lo: r.Lo}, nil
	default:
		return render.U128(uint128.New(r.Lo, r.Hi)), nil
	}
}
