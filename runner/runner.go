package runner

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task represents a unit of work producing a value of type R.
type Task[R any] func(ctx context.Context) (R, error)

// Collect runs all the provided tasks concurrently and returns their results in the order of the tasks.
//
// At most limit tasks run at the same time, a limit lower than 1 means no limit.
// The first failing task cancels the context shared by the other ones and its error is returned.
func Collect[R any](parentCtx context.Context, limit int, tasks ...Task[R]) ([]R, error) {
	group, ctx := errgroup.WithContext(parentCtx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	results := make([]R, len(tasks))
	for i, task := range tasks {
		i, task := i, task // per-iteration copies (go.mod targets go 1.21)
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := task(ctx)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
