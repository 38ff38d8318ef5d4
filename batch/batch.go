// Package batch runs content extraction over many sources concurrently.
// Sources are loaded and extracted independently; outcomes are returned in
// source order.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/toolbox"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// LoadFunc reads the content of a named source.
type LoadFunc func(ctx context.Context, source string) (string, error)

// Runner extracts content from a list of sources.
type Runner struct {
	Extractor   toolbox.ContentExtractor
	Load        LoadFunc
	Concurrency int

	// NewID generates request IDs. Defaults to random UUIDs.
	NewID func() string
}

// Request selects the extraction applied to every source.
type Request struct {
	Type    toolbox.ExtractType
	Options toolbox.ExtractOptions
}

// Outcome is the result of extracting a single source. Result is nil when
// the source could not be loaded.
type Outcome struct {
	ID     string                    `json:"id"`
	Source string                    `json:"source"`
	Error  string                    `json:"error,omitempty"`
	Result *toolbox.ExtractionResult `json:"result,omitempty"`
}

// Failed reports whether the source could not be loaded or extracted.
func (o Outcome) Failed() bool {
	return o.Result == nil || !o.Result.Success
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is called
// from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// Run loads and extracts every source. Failures of individual sources are
// recorded in their outcomes; the returned error is non-nil only when ctx
// is cancelled.
func (r *Runner) Run(ctx context.Context, sources []string, req Request, progress ProgressFunc) ([]Outcome, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	newID := r.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	type indexed struct {
		position int
		outcome  Outcome
	}
	resultCh := make(chan indexed, len(sources))

	var completed atomic.Int64
	total := len(sources)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			id := newID()
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				resultCh <- indexed{position: i, outcome: r.process(gctx, id, source, req)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	outcomes := make([]Outcome, len(sources))
	for res := range resultCh {
		completed.Add(1)
		outcomes[res.position] = res.outcome

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: int(completed.Load()),
			Total:     total,
			Source:    res.outcome.Source,
		}
		if res.outcome.Failed() {
			event.Type = ProgressFailed
			event.Error = res.outcome.Error
			if res.outcome.Result != nil {
				event.Error = res.outcome.Result.Error
			}
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return outcomes, nil
}

// process loads and extracts a single source.
func (r *Runner) process(ctx context.Context, id, source string, req Request) Outcome {
	outcome := Outcome{ID: id, Source: source}
	content, err := r.Load(ctx, source)
	if err != nil {
		outcome.Error = toolbox.ErrorMessage(err)
		return outcome
	}
	outcome.Result = r.Extractor.Extract(content, req.Type, req.Options)
	return outcome
}
