package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/batch"
	"github.com/fwojciec/toolbox/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	content, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}

	result := deps.Extractor.Extract(content, toolbox.ExtractType(c.Type), c.Options())
	if err := writeJSON(deps, result); err != nil {
		return err
	}
	if !result.Success {
		return errFailed
	}
	return nil
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	runner := &batch.Runner{
		Extractor:   deps.Extractor,
		Load:        func(_ context.Context, path string) (string, error) { return readFile(path) },
		Concurrency: c.Concurrency,
	}

	req := batch.Request{Type: toolbox.ExtractType(c.Type), Options: c.Options()}
	outcomes, err := runner.Run(deps.Ctx, c.Files, req, func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressCompleted:
			deps.Logger.Info("extracted", "source", event.Source, "completed", event.Completed, "total", event.Total)
		case batch.ProgressFailed:
			deps.Logger.Warn("extraction failed", "source", event.Source, "err", event.Error)
		}
	})
	if err != nil {
		return err
	}

	if c.Out != "" {
		w := fs.NewWriter(c.Out)
		for _, o := range outcomes {
			path, err := w.WriteOutcome(deps.Ctx, o)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
				return err
			}
			deps.Logger.Debug("wrote outcome", "source", o.Source, "path", path)
		}
	}

	if err := writeJSON(deps, outcomes); err != nil {
		return err
	}

	var failed int
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(outcomes))
	}
	return nil
}
