package engine

import (
	"context"
	"time"
)

type Limits struct {
	MoveTime time.Duration
	Nodes    int64
}

type simpleTimeManager struct {
	start     time.Time
	hardLimit time.Duration
	cancel    context.CancelFunc
}

func newSimpleTimeManager(ctx context.Context, start time.Time,
	limits Limits) (context.Context, *simpleTimeManager) {

	var tm = &simpleTimeManager{
		start:     start,
		hardLimit: limits.MoveTime,
	}

	var cancel context.CancelFunc
	if tm.hardLimit != 0 {
		ctx, cancel = context.WithDeadline(ctx, start.Add(tm.hardLimit))
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	tm.cancel = cancel
	return ctx, tm
}

func (tm *simpleTimeManager) Elapsed() time.Duration {
	return time.Since(tm.start)
}

func (tm *simpleTimeManager) Close() {
	tm.cancel()
}
