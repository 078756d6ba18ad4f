package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ufmt/internal/dump"
	"ufmt/internal/ui"
)

type dumpOutcome struct {
	results []dump.Result
	err     error
}

func runDumpWithUI(ctx context.Context, title string, files []string, opts dump.Options) ([]dump.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan dump.Event, 256)
	outcomeCh := make(chan dumpOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		res, err := dump.Run(ctx, files, optsCopy)
		outcomeCh <- dumpOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// the UI may quit first (ctrl+c); stop the workers instead of blocking on events
	cancel()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
