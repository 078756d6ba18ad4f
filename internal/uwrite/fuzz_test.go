package uwrite

import (
	"strings"
	"testing"

	"ufmt/internal/render"
	"ufmt/internal/sink"
)

func FuzzPrint(f *testing.F) {
	for _, seed := range []string{"", "{}{}{}", "{:>8}|{:.2}|{:^5}", "{:?} {} {}", "{{}}", "{:x<", "}{", "{:.9}"} {
		f.Add(seed)
	}
	args := []render.Displayer{render.I32(-42), render.F64(2.5), render.Str("ok")}
	f.Fuzz(func(t *testing.T, format string) {
		if len(format) > 1<<10 {
			return
		}
		var sb strings.Builder
		err := Fprint(sink.NewStream(&sb), format, args...)
		if err != nil && sb.Len() != 0 {
			t.Fatalf("%q: error %v after writing %q", format, err, sb.String())
		}
		if err == nil && Check(format, len(args)) != nil {
			t.Fatalf("%q: printed although Check rejects it", format)
		}
	})
}
