// Package faultx injects artificial latency and failures into stores and
// remote clients. The memory backend uses it to reproduce slow storage in
// development, and tests use it to force errors at a chosen operation.
package faultx

import (
	"context"
	"time"
)

// Injector is consulted at the start of every instrumented operation.
// The zero value does nothing.
type Injector struct {
	// Delay is slept before each operation; the sleep ends early if the
	// context is cancelled.
	Delay time.Duration
	// Fail, when set, is called with the operation name; a non-nil result
	// is returned instead of running the operation.
	Fail func(op string) error
}

// Before applies the delay and failure hook for op.
func (i *Injector) Before(ctx context.Context, op string) error {
	if i == nil {
		return nil
	}
	if i.Delay > 0 {
		t := time.NewTimer(i.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if i.Fail != nil {
		return i.Fail(op)
	}
	return nil
}

// FailOn returns a Fail hook that returns err for the listed operations.
func FailOn(err error, ops ...string) func(string) error {
	set := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return func(op string) error {
		if _, ok := set[op]; ok {
			return err
		}
		return nil
	}
}
