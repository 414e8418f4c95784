package engine

import (
	"context"
	"errors"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reglet-dev/fieldset/internal/config"
	"github.com/reglet-dev/fieldset/internal/record"
)

// Runner validates document batches against the record types of one schema
// file. Documents are independent of each other and resolved schemas are
// read-only, so constructions run concurrently; results land at their
// document's index, keeping output order deterministic.
type Runner struct {
	registry *config.Registry
	meta     config.SchemaMetadata
	workers  int
}

// NewRunner creates a runner over a built registry. workers <= 0 selects
// one worker per CPU.
func NewRunner(registry *config.Registry, meta config.SchemaMetadata, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		registry: registry,
		meta:     meta,
		workers:  workers,
	}
}

// Run constructs every document and returns the aggregated result. A
// document failing validation does not abort the batch; only context
// cancellation does.
func (r *Runner) Run(ctx context.Context, docs []config.Document) (*RunResult, error) {
	result := NewRunResult(r.meta.Name, r.meta.Version, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result.Documents[i] = r.runDocument(i, doc)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Finalize()
	return result, nil
}

// runDocument constructs a single document and classifies the outcome.
func (r *Runner) runDocument(index int, doc config.Document) DocumentResult {
	startTime := time.Now()

	res := DocumentResult{
		Index:  index,
		Record: doc.Record,
	}

	rt, ok := r.registry.Lookup(doc.Record)
	if !ok {
		res.Status = StatusError
		res.Kind = KindUnknownRecord
		res.Message = "schema declares no record type " + doc.Record
		res.Duration = time.Since(startTime)
		return res
	}

	// Resolution is cached on the record type; only the first caller walks
	// the ancestor chain.
	s, err := rt.Resolve()
	if err != nil {
		res.Status = StatusError
		res.Kind = KindUnknownRecord
		res.Message = err.Error()
		res.Duration = time.Since(startTime)
		return res
	}

	inst, err := record.Construct(s, doc.Values)
	if err != nil {
		res.Status = StatusFail
		res.Kind = classify(err)
		res.Message = err.Error()
		res.Duration = time.Since(startTime)
		return res
	}

	res.Status = StatusPass
	res.Rendered = inst.Render()
	res.Duration = time.Since(startTime)
	return res
}

// classify maps a construction error to its result kind.
func classify(err error) string {
	var (
		unknownErr      *record.UnknownFieldError
		mismatchErr     *record.TypeMismatchError
		preconditionErr *record.PreconditionError
		missingErr      *record.MissingFieldsError
	)

	switch {
	case errors.As(err, &unknownErr):
		return KindUnknownField
	case errors.As(err, &mismatchErr):
		return KindTypeMismatch
	case errors.As(err, &preconditionErr):
		return KindPrecondition
	case errors.As(err, &missingErr):
		return KindMissingFields
	default:
		return "unknown"
	}
}
