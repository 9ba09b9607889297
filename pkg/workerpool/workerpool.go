// Package workerpool provides bounded fan-out helpers.
package workerpool

import (
	"context"
	"sync"
)

// Result is the outcome of processing one item.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Map runs fn for every item on at most workerCount goroutines and returns one
// result per item in input order. A failing item does not cancel the others;
// items not yet started when ctx is done get ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	for i, item := range items {
		results[i].Item = item
	}
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				if err := ctx.Err(); err != nil {
					results[idx].Err = err
					continue
				}
				results[idx].Value, results[idx].Err = fn(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}

// Split separates successful values from errors, keeping input order.
func Split[T, R any](results []Result[T, R]) ([]R, []error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	return values, errs
}
