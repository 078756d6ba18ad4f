package record

import "fmt"

// Kind is the numeric type a Reading carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindI64
	KindU64
	KindF32
	KindF64
	KindI128
	KindU128
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindI64:     "i64",
	KindU64:     "u64",
	KindF32:     "f32",
	KindF64:     "f64",
	KindI128:    "i128",
	KindU128:    "u128",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k names a storable type.
func (k Kind) Valid() bool { return k > KindInvalid && k <= KindU128 }

// IsFloat reports whether readings of this kind accept a precision.
func (k Kind) IsFloat() bool { return k == KindF32 || k == KindF64 }

// ParseKind maps "i64", "u128", "f32" and friends back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindI64; k <= KindU128; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrKind, s)
}
