package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ufmt/internal/record"
	"ufmt/internal/trace"
)

func newPackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <out.ufr>",
		Short: "Pack readings from stdin into a record file",
		Long: `Read one reading per line from stdin and store them as a msgpack record file.

Each line is "<sensor> <type> <value>" with type one of i64, u64, f32, f64,
i128, u128. Blank lines and lines starting with # are skipped.`,
		Example: `  printf 'boiler f32 71.25\ncount u64 12\n' | ufmt pack today.ufr`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			readings, err := parseReadings(cmd.InOrStdin())
			if err != nil {
				return err
			}
			span, _ := trace.Start(cmd.Context(), trace.ScopeFile, "pack:"+args[0])
			err = record.WriteFile(args[0], readings)
			span.WithExtra("records", fmt.Sprint(len(readings))).End("")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "packed %d readings into %s\n", len(readings), args[0])
			return nil
		},
	}
}

func parseReadings(in io.Reader) ([]record.Reading, error) {
	var readings []record.Reading
	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"<sensor> <type> <value>\", got %q", line, text)
		}
		kind, err := record.ParseKind(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		r, err := record.Parse(fields[0], kind, fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		readings = append(readings, r)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return readings, nil
}
