package must

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Call invokes op and returns its value, panicking on any failure. A
// declared error is re-raised wrapped in outcome.Unchecked with the
// original as its cause; cancellation errors captured on the way set the
// flag on ctx before the re-raise hides behind the wrapper.
func Call[T any](ctx context.Context, op outcome.Operation[T]) T {
	return outcome.Capture(ctx, outcome.CatchRecoverable, op).MustGet()
}

// Run is the no-result form of Call.
func Run(ctx context.Context, op outcome.RunOperation) {
	outcome.Run(ctx, outcome.CatchRecoverable, op).MustGet()
}

// CallFunc defers Call until the returned function is invoked.
func CallFunc[T any](ctx context.Context, op outcome.Operation[T]) func() T {
	return func() T {
		return Call(ctx, op)
	}
}

// RunFunc defers Run until the returned function is invoked.
func RunFunc(ctx context.Context, op outcome.RunOperation) func() {
	return func() {
		Run(ctx, op)
	}
}
