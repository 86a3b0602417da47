package outcome

import "context"

// ErrorTransform rewrites a captured error during unwrap. Its contract
// depends on the unwrap used: MustGetWith requires the result to escape
// the recoverable tier, GetWith requires it to stay out of the unchecked
// tier. A transform that violates its contract triggers *ArgumentError.
type ErrorTransform func(err error) error

// MustGet unwraps like MustGetWith with the default transform, which
// wraps a recoverable failure in Unchecked before panicking, keeping the
// original as the cause.
func (r Outcome[T]) MustGet() T {
	return r.MustGetWith(func(err error) error {
		return Unchecked(err)
	})
}

// MustGetWith returns the success payload, or re-raises the failure as an
// undeclared panic. Unchecked and fatal failures are panicked exactly as
// captured, same value, same tier. A recoverable failure is first passed
// through transform, whose non-nil result must classify unchecked or
// fatal and is then panicked; otherwise MustGetWith panics with
// *ArgumentError carrying the bad replacement as its cause.
//
// The cancellation flag is never touched here: it was already settled
// when the Outcome was constructed, and an undeclared re-raise cannot be
// a cancellation signal, leaving the flag as the sole indicator.
func (r Outcome[T]) MustGetWith(transform ErrorTransform) T {
	if r.err == nil {
		return r.value
	}

	if r.tier == TierUnchecked || r.tier == TierFatal {
		panic(r.err)
	}

	replaced := transform(r.err)
	if IsNil(replaced) {
		panic(&ArgumentError{Msg: "transform must not discard the error"})
	}
	switch Classify(replaced) {
	case TierUnchecked, TierFatal:
		panic(replaced)
	}
	panic(&ArgumentError{Msg: "transform must escape the recoverable tier", Cause: replaced})
}

// Get unwraps like GetWith with the default transform, which wraps an
// unchecked failure in Recoverable, keeping the original as the cause.
func (r Outcome[T]) Get(ctx context.Context) (T, error) {
	return r.GetWith(ctx, func(err error) error {
		return Recoverable(err)
	})
}

// GetWith returns the success payload, or hands the failure back as a
// declared error. Recoverable and fatal failures are returned exactly as
// captured; when such an original is a cancellation error the flag on ctx
// is cleared first, making the returned error the sole carrier of the
// cancellation fact again. An unchecked failure is passed through
// transform, whose non-nil result must classify recoverable or fatal and
// is then returned; otherwise GetWith panics with *ArgumentError carrying
// the bad replacement as its cause. The transform path leaves the flag
// alone: the wrapped replacement hides the raw signal, so the flag stays
// the record.
func (r Outcome[T]) GetWith(ctx context.Context, transform ErrorTransform) (T, error) {
	if r.err == nil {
		return r.value, nil
	}

	var zero T
	if r.tier == TierRecoverable || r.tier == TierFatal {
		if IsCancellationError(r.err) {
			FlagFrom(ctx).Clear()
		}
		return zero, r.err
	}

	replaced := transform(r.err)
	if IsNil(replaced) {
		panic(&ArgumentError{Msg: "transform must not discard the error"})
	}
	switch Classify(replaced) {
	case TierRecoverable, TierFatal:
		return zero, replaced
	}
	panic(&ArgumentError{Msg: "transform must not produce unchecked errors", Cause: replaced})
}

// GetRaw returns the success payload, or the original error completely
// unmodified regardless of tier. A cancellation error clears the flag on
// ctx first. There is no transform hook and no validation; be careful,
// as this invites callers to handle fatal failures they normally should
// not intercept.
func (r Outcome[T]) GetRaw(ctx context.Context) (T, error) {
	if r.err == nil {
		return r.value, nil
	}

	if IsCancellationError(r.err) {
		FlagFrom(ctx).Clear()
	}
	var zero T
	return zero, r.err
}

// GetOrRecover returns the success payload, or the result of applying
// recovery to the failure. Anything raised by recovery propagates
// unmodified.
func (r Outcome[T]) GetOrRecover(recovery func(err error) T) T {
	if r.err == nil {
		return r.value
	}
	return recovery(r.err)
}

// GetOrHandle returns the success payload when present; on failure it
// invokes handler for its side effect and reports no payload. As with
// Value, the second return reports presence, not success: an empty
// success also yields false.
func (r Outcome[T]) GetOrHandle(handler func(err error)) (T, bool) {
	return r.ObserveFailure(handler).Value()
}

// ObserveFailure invokes observer on the failure error, if any, and
// returns the receiver unchanged either way so calls can be chained.
// Anything raised by observer propagates unmodified.
func (r Outcome[T]) ObserveFailure(observer func(err error)) Outcome[T] {
	if r.err != nil {
		observer(r.err)
	}
	return r
}
