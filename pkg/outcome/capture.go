package outcome

import (
	"context"
	"errors"
	"fmt"
)

// Operation is a zero-argument computation producing a value or a
// declared error. It may also panic; Capture intercepts both channels.
type Operation[T any] func() (T, error)

// RunOperation is an Operation without a result.
type RunOperation func() error

// Void is the payload type of no-result Outcomes.
type Void struct{}

// PanicError carries a panic value that was not itself an error. It
// classifies as TierUnchecked.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func (e *PanicError) ErrorTier() Tier {
	return TierUnchecked
}

// Capture invokes op and builds an Outcome from what it produced.
//
// A normal return with a nil error yields a success. A returned error or
// a panic whose tier is within catch yields a failure through the
// PreserveInterrupt path, so cancellation errors captured here always set
// the flag on ctx. A failure outside catch propagates out of Capture
// unmodified: a panic value is re-panicked as-is, and a returned error is
// raised via panic with the error itself, preserving its identity. It is
// never wrapped, logged or altered.
//
// Returned errors classify via Classify (declared, recoverable by
// default); panicked values default to TierUnchecked unless the value is
// an error declaring its own tier or a cancellation error.
func Capture[T any](ctx context.Context, catch CatchTier, op Operation[T]) Outcome[T] {
	v, err, rv, panicked := invoke(op)

	if panicked {
		perr, tier := classifyPanic(rv)
		if !catch.Catches(tier) {
			panic(rv)
		}
		return failure[T](ctx, perr, tier, PreserveInterrupt)
	}

	if err != nil {
		tier := Classify(err)
		if !catch.Catches(tier) {
			panic(err)
		}
		return failure[T](ctx, err, tier, PreserveInterrupt)
	}

	return Success(v)
}

// invoke separates running op from routing its failure, so the recover
// here never intercepts the propagation panics raised by Capture itself.
func invoke[T any](op Operation[T]) (v T, err error, rv any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			rv = r
			panicked = true
		}
	}()

	v, err = op()
	return
}

// Run is the no-result variant of Capture. The success path always
// carries an absent payload, regardless of what op did.
func Run(ctx context.Context, catch CatchTier, op RunOperation) Outcome[Void] {
	res := Capture(ctx, catch, func() (Void, error) {
		return Void{}, op()
	})
	if res.IsSuccess() {
		return Empty[Void]()
	}
	return res
}

func classifyPanic(rv any) (error, Tier) {
	err, ok := rv.(error)
	if !ok {
		return &PanicError{Value: rv}, TierUnchecked
	}

	var tiered Tiered
	if errors.As(err, &tiered) {
		return err, tiered.ErrorTier()
	}
	if IsCancellationError(err) {
		return err, TierRecoverable
	}
	return err, TierUnchecked
}
