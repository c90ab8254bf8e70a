package ds

import (
	"context"
	"runtime"
	"sync"
)

// ParallelMap applies f to every element of ts on at most workers goroutines.
// Results are addressed by index, so result i always belongs to ts[i] whatever
// the completion order. The first error cancels the remaining work and is
// returned; no partial result is returned with it.
//
// A non-positive workers value means runtime.NumCPU().
func ParallelMap[T any, R any](
	ctx context.Context,
	ts []T,
	workers int,
	f func(ctx context.Context, index int, t T) (R, error),
) ([]R, error) {
	results := make([]R, len(ts))
	if len(ts) == 0 {
		return results, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(ts) {
		workers = len(ts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexes {
				if ctx.Err() != nil {
					continue
				}
				result, err := f(ctx, index, ts[index])
				if err != nil {
					once.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[index] = result
			}
		}()
	}

feed:
	for index := range ts {
		select {
		case indexes <- index:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
