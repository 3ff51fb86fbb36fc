package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"gallery-compiler/internal/gallery"
)

// Job is one gallery to compile as part of a batch.
type Job struct {
	// Name identifies the job in results and logs (e.g. a file path).
	Name string
	// Records are the raw image records.
	Records []gallery.Record
	// Target selects the adapter.
	Target Target
	// Columns overrides the native column count when > 0.
	Columns int
}

// Result is the outcome of one Job.
type Result struct {
	Name   string
	Output Output
	// Err is the job's own failure (validation, unknown target).
	Err error
}

// CompileAll compiles jobs concurrently, at most Config.Concurrency at a
// time. Results are in job order. A failing job does not stop the others;
// its error is reported in its Result. The returned error is non-nil only
// when ctx is cancelled before every job has run.
func (c *Compiler) CompileAll(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if c.config.Concurrency > 0 {
		g.SetLimit(c.config.Concurrency)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := c.compile(job.Records, job.Target, job.Columns)
			results[i] = Result{Name: job.Name, Output: out, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
