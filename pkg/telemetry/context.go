package telemetry

import (
	"context"
	"time"
)

// NewDetachedContext returns a context carrying the values of parent, including its active span
// and logger, but none of its deadline or cancellation. Work started from it, such as a
// background flush, outlives the call that triggered it.
func NewDetachedContext(parent context.Context) context.Context {
	return detachedContext{parent: parent}
}

var _ context.Context = detachedContext{}

type detachedContext struct {
	parent context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }
func (detachedContext) Done() <-chan struct{}       { return nil }
func (detachedContext) Err() error                  { return nil }

func (d detachedContext) Value(key any) any {
	return d.parent.Value(key)
}
