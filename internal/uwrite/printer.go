package uwrite

import (
	"fmt"
	"strings"

	"ufmt/internal/render"
)

// piece is either a literal run or a placeholder.
type piece struct {
	lit  string
	spec Spec
	hole bool
	at   int
}

type scanner struct {
	s string
	i int
}

func (sc *scanner) next() (piece, bool, error) {
	if sc.i >= len(sc.s) {
		return piece{}, false, nil
	}
	at := sc.i
	rest := sc.s[at:]
	switch rest[0] {
	case '{':
		if len(rest) > 1 && rest[1] == '{' {
			sc.i += 2
			return piece{lit: "{", at: at}, true, nil
		}
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return piece{}, false, fmt.Errorf("%w: unclosed '{' at offset %d", ErrSyntax, at)
		}
		spec, err := ParseSpec(rest[1:end])
		if err != nil {
			return piece{}, false, err
		}
		sc.i += end + 1
		return piece{spec: spec, hole: true, at: at}, true, nil
	case '}':
		if len(rest) > 1 && rest[1] == '}' {
			sc.i += 2
			return piece{lit: "}", at: at}, true, nil
		}
		return piece{}, false, fmt.Errorf("%w: unmatched '}' at offset %d", ErrSyntax, at)
	}
	end := strings.IndexAny(rest, "{}")
	if end < 0 {
		end = len(rest)
	}
	sc.i += end
	return piece{lit: rest[:end], at: at}, true, nil
}

// Check validates format on its own and reports whether it takes exactly n
// arguments.
func Check(format string, n int) error {
	holes, err := count(format)
	if err != nil {
		return err
	}
	if holes != n {
		return fmt.Errorf("%w: format has %d placeholders, got %d arguments", ErrArgs, holes, n)
	}
	return nil
}

func count(format string) (int, error) {
	sc := scanner{s: format}
	holes := 0
	for {
		pc, ok, err := sc.next()
		if err != nil {
			return holes, err
		}
		if !ok {
			return holes, nil
		}
		if pc.hole {
			holes++
		}
	}
}

// validate runs the whole format against args before anything is written so
// a bad call produces no partial output.
func validate(format string, args []render.Displayer) error {
	sc := scanner{s: format}
	arg := 0
	for {
		pc, ok, err := sc.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if !pc.hole {
			continue
		}
		if arg >= len(args) {
			return fmt.Errorf("%w: missing argument for placeholder at offset %d", ErrArgs, pc.at)
		}
		if why := accepts(pc.spec, args[arg]); why != "" {
			return fmt.Errorf("%w: argument %d (%T): %s", ErrArgs, arg, args[arg], why)
		}
		arg++
	}
	if arg != len(args) {
		return fmt.Errorf("%w: %d arguments unused", ErrArgs, len(args)-arg)
	}
	return nil
}

// accepts returns why v cannot fill spec, or "" when it can.
func accepts(spec Spec, v render.Displayer) string {
	if spec.Debug {
		if spec.HasPlaces {
			return "precision cannot be combined with '?'"
		}
		if _, ok := v.(render.Debugger); !ok {
			return "no debug rendering"
		}
	}
	if spec.HasPlaces {
		if _, ok := v.(render.FloatDisplayer); !ok {
			return "precision needs a float"
		}
		return ""
	}
	if spec.HasWidth {
		if _, ok := v.(render.PaddedDisplayer); !ok {
			return "width not supported"
		}
	}
	return ""
}

// Printer renders format strings through one reusable Formatter.
type Printer struct {
	f render.Formatter
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w render.Writer) *Printer {
	p := &Printer{}
	p.f.Reset(w)
	return p
}

// Reset points the printer at another sink.
func (p *Printer) Reset(w render.Writer) { p.f.Reset(w) }

// Print writes format with its placeholders replaced by args. Syntax and
// argument errors are reported before the first write; sink errors stop the
// output where they happen.
func (p *Printer) Print(format string, args ...render.Displayer) error {
	if err := validate(format, args); err != nil {
		return err
	}
	sc := scanner{s: format}
	arg := 0
	for {
		pc, ok, _ := sc.next()
		if !ok {
			return nil
		}
		if !pc.hole {
			if err := p.f.WriteStr(pc.lit); err != nil {
				return err
			}
			continue
		}
		if err := p.hole(pc.spec, args[arg]); err != nil {
			return err
		}
		arg++
	}
}

func (p *Printer) hole(spec Spec, v render.Displayer) error {
	switch {
	case spec.HasPlaces:
		pad := render.LeftAligned(0)
		if spec.HasWidth {
			pad = spec.Padding()
		}
		return v.(render.FloatDisplayer).FmtFloat(&p.f, spec.Places, pad, spec.Fill)
	case spec.HasWidth:
		return v.(render.PaddedDisplayer).FmtPadded(&p.f, spec.Padding(), spec.Fill)
	case spec.Debug:
		return v.(render.Debugger).FmtDebug(&p.f)
	default:
		return v.FmtDisplay(&p.f)
	}
}

// Fprint is Print on a Printer made for this call.
func Fprint(w render.Writer, format string, args ...render.Displayer) error {
	var p Printer
	p.f.Reset(w)
	return p.Print(format, args...)
}
