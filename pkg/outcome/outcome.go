package outcome

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Outcome is an immutable success-or-failure value. It is in exactly one
// of the two variants for its entire lifetime: a success (possibly with an
// absent payload) or a failure carrying a non-nil error and its tier.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	hasValue  bool
	err       error
	tier      Tier
}

// Success produces a successful Outcome carrying v. The value may itself
// be the zero value of T; absence of a meaningful value is not a failure.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Empty produces a successful Outcome with an absent payload. It is
// structurally distinct from Success with a zero value: HasResult reports
// false.
func Empty[T any]() Outcome[T] {
	return Outcome[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure produces a failed Outcome carrying err, classified once via
// Classify. It panics with *ArgumentError when err is nil (typed-nil
// included).
//
// When err is a cancellation error and policy is PreserveInterrupt, the
// flag on ctx is set. This is the single place this package introduces
// new flag state; SwallowInterrupt leaves the flag untouched.
func Failure[T any](ctx context.Context, err error, policy InterruptPolicy) Outcome[T] {
	return failure[T](ctx, err, Classify(err), policy)
}

func failure[T any](ctx context.Context, err error, tier Tier, policy InterruptPolicy) Outcome[T] {
	if IsNil(err) {
		panic(&ArgumentError{Msg: "failure error must not be nil"})
	}

	if policy == PreserveInterrupt && IsCancellationError(err) {
		FlagFrom(ctx).Set()
	}

	return Outcome[T]{
		err:       err,
		tier:      tier,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair builds an Outcome from a (value, error) pair where a nil
// pointer marks the absent side. Exactly one side may be present: both
// present panics with *ArgumentError naming both values, both absent
// yields Empty. The failure case delegates to Failure with the given
// policy.
func FromPair[T any](ctx context.Context, success *T, err error, policy InterruptPolicy) Outcome[T] {
	if success != nil && !IsNil(err) {
		panic(&ArgumentError{
			Msg: fmt.Sprintf("at least one of success or error must be absent: <%v, %v>", *success, err),
		})
	}

	if !IsNil(err) {
		return Failure[T](ctx, err, policy)
	}

	if success == nil {
		return Empty[T]()
	}

	return Success(*success)
}

// Result returns the success payload, or the zero value for failures and
// empty successes.
func (r Outcome[T]) Result() T {
	return r.value
}

// Value returns the success payload and whether one is present. Empty
// successes report false, so presence does not indicate success; use
// IsSuccess for that.
func (r Outcome[T]) Value() (T, bool) {
	if r.err == nil && r.hasValue {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Err returns the failure error, or nil if and only if the Outcome is a
// success.
func (r Outcome[T]) Err() error {
	return r.err
}

func (r Outcome[T]) IsSuccess() bool {
	return r.err == nil
}

func (r Outcome[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// HasResult reports whether a success payload is present.
func (r Outcome[T]) HasResult() bool {
	return r.hasValue
}

// Tier returns the tier the failure was classified into at construction
// time. It is meaningful only for failures.
func (r Outcome[T]) Tier() Tier {
	return r.tier
}

func (r Outcome[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Outcome[T]) Id() uuid.UUID {
	return r.id
}

// Equal reports value equality: same variant, same tier, equal payloads.
// The id and creation time do not participate.
func (r Outcome[T]) Equal(other Outcome[T]) bool {
	return r.hasValue == other.hasValue &&
		r.tier == other.tier &&
		reflect.DeepEqual(r.value, other.value) &&
		reflect.DeepEqual(r.err, other.err)
}

func (r Outcome[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Outcome[failure=%v,tier=%v]", r.err, r.tier)
	}
	if !r.hasValue {
		return "Outcome[success=<empty>]"
	}
	return fmt.Sprintf("Outcome[success=%v]", r.value)
}
