// Package outcome provides Outcome[T], an immutable value representing the
// result of an operation that either succeeded with a value or failed with
// an error, together with the protocol for building, classifying and
// unwrapping such values.
//
// Every failure carries a Tier deciding how freely it may be intercepted:
// - TierUnchecked: undeclared failures (panics); always interceptable
// - TierRecoverable: declared failures (returned errors); caller opts in
// - TierFatal: invariant violations; intercepting requires CatchAll
//
// Cancellation errors (context.Canceled, context.DeadlineExceeded) are a
// Recoverable subcase coordinated with a cooperative-cancellation Flag
// carried on the context:
// - Capture/Run/Failure set the flag when classifying a cancellation error
//   under PreserveInterrupt
// - Get/GetRaw clear it when handing the original cancellation error back
//   to the caller, so the error is again the sole record of the fact
// - MustGet, GetOrRecover, ObserveFailure and Consume never touch it
//
// Key constructs:
// - Success/Empty/Failure/FromPair: construct Outcome[T]
// - Capture/Run: invoke an operation, intercepting failures by CatchTier
// - MustGet/Get/GetRaw: unwrap, re-raising at the captured tier
// - GetOrRecover/GetOrHandle/ObserveFailure/Convert/Consume: hooks
//
// For running operations as if they only failed unchecked, see package
// must.
package outcome
