package outcome

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is absent, treating a typed nil pointer boxed
// in an interface as absent too. Failure, FromPair and the unwrap
// transforms use it to reject absence where an error is required.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens err for callers that join observed failures: a
// multi-error yields its wrapped errors, a single error yields itself,
// an absent error yields none.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellationError reports whether err is a cooperative-cancellation
// signal. Cancellation is a recoverable subcase with flag semantics; see
// the package doc.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
