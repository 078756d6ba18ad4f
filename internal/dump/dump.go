// Package dump renders record files through format templates, several files
// at a time, and reassembles the output in input order.
package dump

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"ufmt/internal/observ"
	"ufmt/internal/record"
	"ufmt/internal/render"
	"ufmt/internal/sink"
	"ufmt/internal/trace"
	"ufmt/internal/uwrite"
)

// Status is the state of one file in a run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusQueued:
		return "queued"
	case StatusWorking:
		return "working"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event reports progress on one file.
type Event struct {
	Index   int
	File    string
	Status  Status
	Records int
	Err     error
}

// Options controls a run. Templates take two arguments: the sensor name and
// the value.
type Options struct {
	Template      string
	FloatTemplate string // for f32/f64 readings; Template when empty
	Jobs          int    // <= 0 means GOMAXPROCS
	Timings       bool   // fill Result.Timing
	Events        chan<- Event
}

// Result is the rendered output of one file.
type Result struct {
	File    string
	Records int
	Output  []byte
	Timing  *observ.Report
	Err     error
}

// ErrFiles is returned by WriteResults when some files failed.
var ErrFiles = errors.New("dump: some files failed")

// Run renders every file. A file that cannot be read or rendered is
// reported in its Result; Run itself only fails for a bad template or a
// cancelled context.
func Run(ctx context.Context, files []string, opts Options) ([]Result, error) {
	if opts.FloatTemplate == "" {
		opts.FloatTemplate = opts.Template
	}
	if err := uwrite.Check(opts.Template, 2); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	if err := uwrite.Check(opts.FloatTemplate, 2); err != nil {
		return nil, fmt.Errorf("float template: %w", err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span, ctx := trace.Start(ctx, trace.ScopeCommand, "dump")
	defer span.WithExtra("files", strconv.Itoa(len(files))).End("")

	// each worker owns results[i]
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if err := publish(gctx, opts.Events, Event{Index: i, File: path, Status: StatusWorking}); err != nil {
				return err
			}

			res := renderFile(gctx, path, opts)
			results[i] = res

			ev := Event{Index: i, File: path, Status: StatusDone, Records: res.Records, Err: res.Err}
			if res.Err != nil {
				ev.Status = StatusFailed
			}
			return publish(gctx, opts.Events, ev)
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func publish(ctx context.Context, ch chan<- Event, ev Event) error {
	if ch == nil {
		return nil
	}
	select {
	case ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderFile(ctx context.Context, path string, opts Options) (res Result) {
	span, ctx := trace.Start(ctx, trace.ScopeFile, "file:"+path)
	res.File = path
	defer func() {
		detail := "ok"
		if res.Err != nil {
			detail = res.Err.Error()
		}
		span.WithExtra("records", strconv.Itoa(res.Records)).End(detail)
	}()

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
		defer func() {
			report := timer.Report()
			res.Timing = &report
		}()
	}

	phase := timer.Begin("read")
	readings, err := record.ReadFile(path)
	timer.End(phase, "")
	if err != nil {
		res.Err = err
		return res
	}

	phase = timer.Begin("render")
	defer func() { timer.End(phase, strconv.Itoa(res.Records)+" records") }()

	var out bytes.Buffer
	p := uwrite.NewPrinter(sink.NewStream(&out))
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	for n, r := range readings {
		v, err := r.Value()
		if err != nil {
			res.Err = fmt.Errorf("%s: reading %d: %w", path, n, err)
			return res
		}
		tmpl := opts.Template
		if r.Kind.IsFloat() {
			tmpl = opts.FloatTemplate
		}
		if err := p.Print(tmpl, render.Str(r.Sensor), v); err != nil {
			res.Err = fmt.Errorf("%s: reading %d (%s): %w", path, n, r.Kind, err)
			return res
		}
		if err := out.WriteByte('\n'); err != nil {
			res.Err = err
			return res
		}
		trace.Point(tracer, trace.ScopeRecord, r.Sensor, r.Kind.String(), parent)
		res.Records++
	}
	res.Output = out.Bytes()
	return res
}

// WriteResults writes the successful outputs in input order, each preceded
// by "== file ==" when header is set, and returns ErrFiles joined with every
// file error.
func WriteResults(w io.Writer, results []Result, header bool) error {
	var failed []error
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r.Err)
			continue
		}
		if header {
			if _, err := fmt.Fprintf(w, "== %s ==\n", r.File); err != nil {
				return err
			}
		}
		if _, err := w.Write(r.Output); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return errors.Join(append([]error{ErrFiles}, failed...)...)
	}
	return nil
}

// WriteTimings writes the phase table of every timed file in input order.
func WriteTimings(w io.Writer, results []Result) error {
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n%s", r.File, r.Timing.Summary()); err != nil {
			return err
		}
	}
	return nil
}
