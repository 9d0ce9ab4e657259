package xcmd

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Group runs related tasks and cancels all of them on the first error.
// With SetLimit, at most n tasks run at the same time; the rest wait for a
// free slot or for the group context to be canceled.
type Group struct {
	ctx     context.Context
	cancel  context.CancelCauseFunc
	wg      sync.WaitGroup
	sem     *semaphore.Weighted
	errOnce sync.Once
	err     error
}

// ErrGroup returns a new Group and an associated Context derived from ctx.
// The derived Context is canceled when the first task returns an error,
// or when Wait returns, whichever happens first.
func ErrGroup(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancelCause(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLimit bounds the number of tasks running at once. n <= 0 removes the limit.
// It must be called before the first Go.
func (g *Group) SetLimit(n int) {
	if n <= 0 {
		g.sem = nil
		return
	}
	g.sem = semaphore.NewWeighted(int64(n))
}

// Go calls f in a new goroutine. A task still waiting for a slot when the
// group context is canceled is not started and reports the context error.
func (g *Group) Go(f func(ctx context.Context) error) {
	g.wg.Add(1)

	go func() {
		defer g.wg.Done()

		if g.sem != nil {
			if err := g.sem.Acquire(g.ctx, 1); err != nil {
				g.fail(context.Cause(g.ctx))
				return
			}
			defer g.sem.Release(1)
		}

		if err := f(g.ctx); err != nil {
			g.fail(err)
		}
	}()
}

// Wait blocks until all tasks have returned and returns the first error.
func (g *Group) Wait() error {
	g.wg.Wait()
	g.cancel(nil)
	return g.err
}

func (g *Group) fail(err error) {
	g.errOnce.Do(func() {
		g.err = err
		g.cancel(err)
	})
}
