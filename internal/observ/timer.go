package observ

import (
	"strings"
	"time"

	"ufmt/internal/render"
	"ufmt/internal/sink"
	"ufmt/internal/uwrite"
)

// Phase records the duration and metadata of one step of a run.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the execution time of the phases of one file or command.
// A nil *Timer records nothing, so callers can leave timing off without
// branching.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4), now: time.Now} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	if t == nil {
		return -1
	}
	t.phases = append(t.phases, Phase{Name: name, Start: t.now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if t == nil || idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = t.now().Sub(p.Start)
	p.Note = note
}

const (
	phaseLine = "  {:<20} {:>10.2} ms"
	totalLine = "  {:<20} {:>10.2} ms\n"
)

// Summary returns a human-readable table of all tracked phases.
func (t *Timer) Summary() string { return t.Report().Summary() }

// Summary renders the report as a table. Durations get two decimal places;
// anything past 2^32 ms shows as ovfl.
func (report Report) Summary() string {
	var sb strings.Builder
	out := sink.NewStream(&sb)
	sb.WriteString("timings:\n")
	for _, p := range report.Phases {
		// strings.Builder never fails
		_ = uwrite.Fprint(out, phaseLine, render.Str(p.Name), render.F64(p.DurationMS))
		if p.Note != "" {
			sb.WriteString("  // ")
			sb.WriteString(p.Note)
		}
		sb.WriteByte('\n')
	}
	_ = uwrite.Fprint(out, totalLine, render.Str("total"), render.F64(report.TotalMS))
	return sb.String()
}

// PhaseReport is the serialisable form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates a Timer's phases.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report returns the phases and their total in milliseconds.
func (t *Timer) Report() Report {
	if t == nil || len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
