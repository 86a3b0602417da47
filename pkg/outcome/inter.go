package outcome

import "time"

type Provider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	Provider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithTier extends WithError with the failure tier recorded at
// classification time
type WithTier[T any] interface {
	WithError[T]
	// Tier returns the tier the failure was classified into
	Tier() Tier
}

var _ WithTier[int] = Outcome[int]{}
