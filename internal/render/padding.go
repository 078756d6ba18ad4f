package render

import (
	"fmt"
	"strings"
)

// Align selects where fill characters go relative to the content.
type Align uint8

const (
	AlignLeft   Align = iota // content, then fill
	AlignRight               // fill, then content
	AlignUsual               // same as AlignRight; the default for numbers
	AlignCenter              // fill split around content, odd one trailing
)

// String returns the string representation of Align.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignUsual:
		return "usual"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAlign accepts the names returned by String as well as the format
// characters '<', '>' and '^'. The empty string selects AlignUsual.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "<":
		return AlignLeft, nil
	case "right", ">":
		return AlignRight, nil
	case "", "usual":
		return AlignUsual, nil
	case "center", "centre", "^":
		return AlignCenter, nil
	default:
		return AlignUsual, fmt.Errorf("invalid alignment %q (expected: left|right|usual|center)", s)
	}
}

// Padding is an alignment plus the minimum field width in characters.
// A Width smaller than the content adds nothing; content is never cut.
type Padding struct {
	Align Align
	Width int
}

// LeftAligned pads after the content.
func LeftAligned(width int) Padding { return Padding{Align: AlignLeft, Width: width} }

// RightAligned pads before the content.
func RightAligned(width int) Padding { return Padding{Align: AlignRight, Width: width} }

// Usual is the conventional numeric alignment (right).
func Usual(width int) Padding { return Padding{Align: AlignUsual, Width: width} }

// CenterAligned splits the padding around the content.
func CenterAligned(width int) Padding { return Padding{Align: AlignCenter, Width: width} }

// fills returns how many fill characters go before and after content of n
// characters.
func (p Padding) fills(n int) (before, after int) {
	pad := p.Width - n
	if pad <= 0 {
		return 0, 0
	}
	switch p.Align {
	case AlignLeft:
		return 0, pad
	case AlignCenter:
		half := pad / 2
		return half, pad - half
	default:
		return pad, 0
	}
}

// String renders the padding the way a format spec would write it.
func (p Padding) String() string {
	switch p.Align {
	case AlignLeft:
		return fmt.Sprintf("<%d", p.Width)
	case AlignRight:
		return fmt.Sprintf(">%d", p.Width)
	case AlignCenter:
		return fmt.Sprintf("^%d", p.Width)
	default:
		return fmt.Sprintf("%d", p.Width)
	}
}
