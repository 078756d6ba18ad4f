package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"ufmt/internal/render"
	"ufmt/internal/trace"
	"ufmt/internal/uwrite"
)

// MaxWidth bounds every field width accepted from files and flags.
const MaxWidth = 4096

var ErrInvalid = errors.New("invalid config")

// ParseFill normalises s to NFC and requires exactly one rune, so a fill
// typed as "e" plus a combining accent still counts as one column.
func ParseFill(s string) (rune, error) {
	n := norm.NFC.String(s)
	if utf8.RuneCountInString(n) != 1 {
		return 0, fmt.Errorf("%w: fill %q must be a single character", ErrInvalid, s)
	}
	r, _ := utf8.DecodeRuneInString(n)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%w: fill %q is not valid UTF-8", ErrInvalid, s)
	}
	return r, nil
}

// ParseWidth checks a field width.
func ParseWidth(n int) (int, error) {
	if n < 0 || n > MaxWidth {
		return 0, fmt.Errorf("%w: width %d outside [0, %d]", ErrInvalid, n, MaxWidth)
	}
	return n, nil
}

// PlacesValue returns the configured precision.
func (r RenderConfig) PlacesValue() (render.Places, error) {
	return render.NewPlaces(r.Places)
}

// Padding returns the configured field.
func (r RenderConfig) Padding() (render.Padding, error) {
	align, err := render.ParseAlign(r.Align)
	if err != nil {
		return render.Padding{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	width, err := ParseWidth(r.Width)
	if err != nil {
		return render.Padding{}, err
	}
	return render.Padding{Align: align, Width: width}, nil
}

// FillRune returns the configured fill character.
func (r RenderConfig) FillRune() (rune, error) {
	return ParseFill(r.Fill)
}

// HeartbeatInterval parses trace.heartbeat; empty means disabled.
func (t TraceConfig) HeartbeatInterval() (time.Duration, error) {
	if t.Heartbeat == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(t.Heartbeat)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: trace.heartbeat %q", ErrInvalid, t.Heartbeat)
	}
	return d, nil
}

func oneOf(key, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (expected one of %v)", ErrInvalid, key, v, allowed)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Render.PlacesValue(); err != nil {
		errs = append(errs, fmt.Errorf("%w: render.places: %w", ErrInvalid, err))
	}
	if _, err := c.Render.Padding(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Render.FillRune(); err != nil {
		errs = append(errs, err)
	}
	if err := uwrite.Check(c.Dump.Template, 2); err != nil {
		errs = append(errs, fmt.Errorf("%w: dump.template: %w", ErrInvalid, err))
	}
	if c.Dump.FloatTemplate != "" {
		if err := uwrite.Check(c.Dump.FloatTemplate, 2); err != nil {
			errs = append(errs, fmt.Errorf("%w: dump.float_template: %w", ErrInvalid, err))
		}
	}
	if c.Dump.Jobs < 0 {
		errs = append(errs, fmt.Errorf("%w: dump.jobs %d is negative", ErrInvalid, c.Dump.Jobs))
	}
	if err := oneOf("dump.ui", c.Dump.UI, "auto", "on", "off"); err != nil {
		errs = append(errs, err)
	}
	if err := oneOf("color", c.Color, "auto", "on", "off"); err != nil {
		errs = append(errs, err)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: trace.level: %w", ErrInvalid, err))
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		errs = append(errs, fmt.Errorf("%w: trace.mode: %w", ErrInvalid, err))
	}
	if _, ok := trace.ParseFormat(c.Trace.Format); !ok {
		errs = append(errs, fmt.Errorf("%w: trace.format %q", ErrInvalid, c.Trace.Format))
	}
	if _, err := c.Trace.HeartbeatInterval(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
