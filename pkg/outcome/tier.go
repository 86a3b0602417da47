package outcome

import (
	"errors"
	"fmt"
	"runtime"
)

// Tier classifies how freely a failure may be intercepted.
type Tier int

const (
	// TierUnchecked failures are undeclared (panics) and may always be
	// intercepted and carried in an Outcome.
	TierUnchecked Tier = iota
	// TierRecoverable failures are declared (returned errors, cancellation
	// signals) and are intercepted only when the caller opts in.
	TierRecoverable
	// TierFatal failures are invariant violations and should not normally
	// be intercepted; capturing them requires CatchAll.
	TierFatal
)

func (t Tier) String() string {
	switch t {
	case TierUnchecked:
		return "unchecked"
	case TierRecoverable:
		return "recoverable"
	case TierFatal:
		return "fatal"
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// CatchTier is the inclusive set of tiers a capturing operation intercepts.
// Each level is a superset of the previous one.
type CatchTier int

const (
	CatchUnchecked CatchTier = iota
	CatchRecoverable
	CatchAll
)

// Catches reports whether a failure of tier t is within c.
func (c CatchTier) Catches(t Tier) bool {
	switch c {
	case CatchAll:
		return true
	case CatchRecoverable:
		return t == TierUnchecked || t == TierRecoverable
	default:
		return t == TierUnchecked
	}
}

// Tiered is implemented by errors that declare their own tier. It takes
// precedence over every default in Classify.
type Tiered interface {
	error
	ErrorTier() Tier
}

// TierError attaches an explicit tier to a cause error.
type TierError struct {
	tier  Tier
	cause error
}

// Unchecked wraps cause so it classifies as TierUnchecked.
func Unchecked(cause error) error {
	return &TierError{tier: TierUnchecked, cause: cause}
}

// Recoverable wraps cause so it classifies as TierRecoverable.
func Recoverable(cause error) error {
	return &TierError{tier: TierRecoverable, cause: cause}
}

// Fatal wraps cause so it classifies as TierFatal.
func Fatal(cause error) error {
	return &TierError{tier: TierFatal, cause: cause}
}

func (e *TierError) Error() string {
	return e.cause.Error()
}

func (e *TierError) Unwrap() error {
	return e.cause
}

func (e *TierError) ErrorTier() Tier {
	return e.tier
}

// Classify resolves the tier of an error that was returned (declared) by
// an operation. An explicit Tiered implementation wins; cancellation
// errors are recoverable; runtime errors classify unchecked; any other
// returned error is declared by its signature and therefore recoverable.
//
// Panicked values follow a different default (unchecked); see Capture.
func Classify(err error) Tier {
	var tiered Tiered
	if errors.As(err, &tiered) {
		return tiered.ErrorTier()
	}
	if IsCancellationError(err) {
		return TierRecoverable
	}
	var rte runtime.Error
	if errors.As(err, &rte) {
		return TierUnchecked
	}
	return TierRecoverable
}

// ArgumentError reports a violated construction or consumption contract:
// a nil failure error, a FromPair call with both sides present, or a
// transform returning an error outside its required tier. It is always
// delivered by panic and is never stored inside an Outcome.
type ArgumentError struct {
	Msg   string
	Cause error
}

func (e *ArgumentError) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

func (e *ArgumentError) ErrorTier() Tier {
	return TierUnchecked
}
