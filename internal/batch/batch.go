// Package batch runs a list of writes one at a time, paced by a token bucket and
// split into batches with a pause between them.
package batch

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/time/rate"
)

// Options controls pacing. Zero values disable the corresponding delay.
type Options struct {
	// Interval is the minimum spacing between the start of two items.
	Interval time.Duration
	// BatchSize splits the items into groups; 0 means one group.
	BatchSize int
	// BatchPause is waited between groups.
	BatchPause time.Duration
	Clock      clock.Clock
}

// Result reports what happened to one item.
type Result struct {
	Index int
	Err   error
}

// Summary is returned once every item has been attempted or the context ends.
type Summary struct {
	Done   int
	Failed int
}

// Executor runs items strictly sequentially. Failures do not stop the run.
type Executor struct {
	opts    Options
	clock   clock.Clock
	limiter *rate.Limiter
}

func NewExecutor(opts Options) *Executor {
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}
	return &Executor{
		opts:    opts,
		clock:   clk,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Run calls fn for each of n items in order. onResult, when set, is called
// after every item. It returns ctx.Err() if the context ends early.
func (e *Executor) Run(ctx context.Context, n int, fn func(ctx context.Context, i int) error, onResult func(Result)) (Summary, error) {
	var sum Summary
	for i := 0; i < n; i++ {
		if i > 0 && e.opts.BatchSize > 0 && i%e.opts.BatchSize == 0 {
			if err := e.Sleep(ctx, e.opts.BatchPause); err != nil {
				return sum, err
			}
		}
		if err := e.wait(ctx); err != nil {
			return sum, err
		}

		err := fn(ctx, i)
		sum.Done++
		if err != nil {
			sum.Failed++
		}
		if onResult != nil {
			onResult(Result{Index: i, Err: err})
		}
	}
	return sum, nil
}

// wait blocks until the limiter grants the next item.
func (e *Executor) wait(ctx context.Context) error {
	now := e.clock.Now()
	r := e.limiter.ReserveN(now, 1)
	if !r.OK() {
		return nil
	}
	return e.Sleep(ctx, r.DelayFrom(now))
}

// Sleep waits d on the executor's clock or until ctx ends.
func (e *Executor) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := e.clock.Timer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
