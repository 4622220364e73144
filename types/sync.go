// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"fmt"
	"sync"

	"cloudeng.io/errors"
	"github.com/panjf2000/ants/v2"
)

type (
	// Task is a unit of work submitted by RunTasks.
	Task func(context.Context) error
)

const (
	// DefaultWorkers is the pool size used by batch helpers when none is supplied.
	DefaultWorkers = 4
)

// Synchronization errors.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// RunTasks executes tasks on an ants pool of the given size, waiting for all submitted tasks to
// terminate.
//
// Errors from the tasks (and from submission) are aggregated into an errors.M; tasks that were
// not submitted due to context cancellation contribute the context's error.
func RunTasks(ctx context.Context, workers int, tasks ...Task) error {
	if workers < 1 {
		return fmt.Errorf("%w: %w: %d", ErrInvalidArgument, ErrInvalidWorkerCount, workers)
	}
	if len(tasks) < 1 {
		return nil
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	errs := &errors.M{}
	wg := new(sync.WaitGroup)

submit:
	for index := range tasks {
		select {
		case <-ctx.Done():
			errs.Append(ctx.Err())
			break submit
		default:
		}

		task := tasks[index]

		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			errs.Append(task(ctx))
		}); err != nil {
			wg.Done()
			errs.Append(fmt.Errorf("task (%d): %w", index, err))
		}
	}
	wg.Wait()

	return errs.Err()
}
