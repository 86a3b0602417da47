// Package must runs operations as if they only failed unchecked. Declared
// errors are captured and re-raised as panics wrapping the original, so
// call sites need no error return at all; failures outside the
// recoverable tier propagate unmodified.
//
// Key constructs:
// - Call/Run: capture and unwrap eagerly
// - CallFunc/RunFunc: defer the same composition until invocation time
//
// Everything here is composed purely from outcome.Capture, outcome.Run
// and MustGet; use those directly for control over what is caught or how
// declared errors are transformed.
package must
