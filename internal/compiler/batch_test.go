package compiler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-compiler/internal/gallery"
	"gallery-compiler/internal/native"
)

func TestCompileAll(t *testing.T) {
	jobs := []Job{
		{Name: "web", Records: scenarioRecords(), Target: TargetWeb},
		{Name: "native", Records: scenarioRecords(), Target: TargetNative, Columns: 4},
		{Name: "broken", Records: []gallery.Record{{"src": ""}}, Target: TargetWeb},
		{Name: "empty", Records: nil, Target: TargetNative},
	}

	results, err := New(DefaultConfig()).CompileAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	for i, r := range results {
		assert.Equal(t, jobs[i].Name, r.Name)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Output.Len())

	require.NoError(t, results[1].Err)
	assert.Equal(t, 4, results[1].Output.(*native.Descriptor).ColumnCount)

	assert.ErrorIs(t, results[2].Err, gallery.ErrMissingSource)
	assert.Nil(t, results[2].Output)

	assert.ErrorIs(t, results[3].Err, gallery.ErrEmptySequence)
}

func TestCompileAll_MatchesCompile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Concurrency = 2
	c := New(cfg)

	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = Job{
			Name:    fmt.Sprintf("job-%d", i),
			Records: []gallery.Record{{"src": fmt.Sprintf("/%d.jpg", i), "width": i + 1, "height": 1}},
			Target:  Targets()[i%2],
		}
	}

	results, err := c.CompileAll(context.Background(), jobs)
	require.NoError(t, err)

	for i, job := range jobs {
		want, err := c.Compile(job.Records, job.Target)
		require.NoError(t, err)
		assert.Equal(t, want, results[i].Output)
	}
}

func TestCompileAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := New(DefaultConfig()).CompileAll(ctx, []Job{
		{Name: "a", Records: scenarioRecords(), Target: TargetWeb},
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestCompileAll_NoJobs(t *testing.T) {
	results, err := New(DefaultConfig()).CompileAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
