package observ

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.now = stepClock(1500 * time.Microsecond)

	read := tm.Begin("read")
	tm.End(read, "")
	render := tm.Begin("render")
	tm.End(render, "12 records")

	want := "timings:\n" +
		"  read                       1.50 ms\n" +
		"  render                     1.50 ms  // 12 records\n" +
		"  total                      3.00 ms\n"
	if got := tm.Summary(); got != want {
		t.Fatalf("want:\n%s\ngot:\n%s", want, got)
	}
}

func TestTimerReportJSON(t *testing.T) {
	tm := NewTimer()
	tm.now = stepClock(time.Millisecond)
	tm.End(tm.Begin("read"), "x")

	data, err := json.Marshal(tm.Report())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"total_ms":1,"phases":[{"name":"read","duration_ms":1,"note":"x"}]}`
	if string(data) != want {
		t.Fatalf("want %s, got %s", want, data)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("read")
	tm.End(idx, "ignored")
	if r := tm.Report(); len(r.Phases) != 0 || r.TotalMS != 0 {
		t.Fatalf("nil timer reported %+v", r)
	}
	if got := tm.Summary(); !strings.HasSuffix(got, "total                      0.00 ms\n") {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(3, "nope")
	tm.End(-1, "nope")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("End created a phase")
	}
}
