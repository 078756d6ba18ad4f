package uwrite

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"ufmt/internal/render"
)

var (
	// ErrSyntax reports a malformed format string.
	ErrSyntax = errors.New("uwrite: bad format")
	// ErrArgs reports a mismatch between placeholders and arguments.
	ErrArgs = errors.New("uwrite: bad arguments")
)

// Spec is one parsed placeholder.
type Spec struct {
	Fill      rune
	Align     render.Align
	Width     int
	HasWidth  bool
	Places    render.Places
	HasPlaces bool
	Debug     bool
}

// Padding returns the field the spec asks for.
func (s Spec) Padding() render.Padding {
	return render.Padding{Align: s.Align, Width: s.Width}
}

// maxWidth bounds field widths so a typo cannot request a huge fill run.
const maxWidth = 1 << 12

// ParseSpec parses the text between '{' and '}'.
func ParseSpec(text string) (Spec, error) {
	spec := Spec{Fill: ' ', Align: render.AlignUsual}
	if text == "" {
		return spec, nil
	}
	if text[0] != ':' {
		return spec, fmt.Errorf("%w: {%s}: expected ':'", ErrSyntax, text)
	}
	rest := text[1:]

	// [[fill] align]
	if r, size := utf8.DecodeRuneInString(rest); size > 0 && len(rest) > size {
		if a, ok := alignOf(rest[size]); ok {
			spec.Fill, spec.Align = r, a
			rest = rest[size+1:]
		}
	}
	if spec.Align == render.AlignUsual && rest != "" {
		if a, ok := alignOf(rest[0]); ok {
			spec.Align = a
			rest = rest[1:]
		}
	}

	// [width]
	n, digits := leadingInt(rest)
	if digits > 0 {
		if n > maxWidth {
			return spec, fmt.Errorf("%w: {%s}: width above %d", ErrSyntax, text, maxWidth)
		}
		spec.Width, spec.HasWidth = n, true
		rest = rest[digits:]
	}

	// ['.' places]
	if rest != "" && rest[0] == '.' {
		n, digits := leadingInt(rest[1:])
		if digits == 0 {
			return spec, fmt.Errorf("%w: {%s}: missing precision after '.'", ErrSyntax, text)
		}
		places, err := render.NewPlaces(n)
		if err != nil {
			return spec, fmt.Errorf("%w: {%s}: %w", ErrSyntax, text, err)
		}
		spec.Places, spec.HasPlaces = places, true
		rest = rest[1+digits:]
	}

	// ['?']
	if rest != "" && rest[0] == '?' {
		spec.Debug = true
		rest = rest[1:]
	}

	if rest != "" {
		return spec, fmt.Errorf("%w: {%s}: unexpected %q", ErrSyntax, text, rest)
	}
	return spec, nil
}

func alignOf(c byte) (render.Align, bool) {
	switch c {
	case '<':
		return render.AlignLeft, true
	case '>':
		return render.AlignRight, true
	case '^':
		return render.AlignCenter, true
	default:
		return render.AlignUsual, false
	}
}

// leadingInt consumes a run of decimal digits. n stops growing once it
// passes maxWidth so long runs cannot overflow.
func leadingInt(s string) (n, digits int) {
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n <= maxWidth {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	return n, digits
}
