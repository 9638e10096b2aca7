// Package batch runs one transform over many OBJ files with a bounded
// number of concurrent workers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Job is a single input/output pair
type Job struct {
	Input  string
	Output string
}

// Outcome records what happened to one job
type Outcome[T any] struct {
	Job    Job
	Result T
	Err    error
}

// Func processes one job
type Func[T any] func(ctx context.Context, job Job) (T, error)

// DiscoverJobs lists every *.obj file (case-insensitive) directly inside
// inputDir and maps it to the same file name in outputDir, sorted by name.
func DiscoverJobs(inputDir, outputDir string) ([]Job, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", inputDir, err)
	}

	var jobs []Job
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".obj") {
			continue
		}
		jobs = append(jobs, Job{
			Input:  filepath.Join(inputDir, entry.Name()),
			Output: filepath.Join(outputDir, entry.Name()),
		})
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].Input < jobs[j].Input
	})
	return jobs, nil
}

// Run processes all jobs with at most workers in flight (GOMAXPROCS when
// workers <= 0). A failing job does not stop the others; outcomes are
// returned in job order together with the joined errors of all failed jobs.
// Jobs not yet started when ctx is canceled fail with the context error.
func Run[T any](ctx context.Context, jobs []Job, workers int, fn Func[T]) ([]Outcome[T], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome[T], len(jobs))
	var g errgroup.Group
	g.SetLimit(workers)

	for i, job := range jobs {
		outcomes[i].Job = job
		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			result, err := fn(ctx, job)
			outcomes[i].Result = result
			if err != nil {
				outcomes[i].Err = fmt.Errorf("%s: %w", job.Input, err)
			}
			return nil
		})
	}
	g.Wait()

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return outcomes, errors.Join(errs...)
}
