package outcome

import (
	"context"
	"sync/atomic"
)

// InterruptPolicy governs whether classifying a cancellation error into a
// failure records the fact on the cooperative-cancellation flag.
type InterruptPolicy int

const (
	// PreserveInterrupt sets the flag when a cancellation error is
	// classified. Default for capturing paths.
	PreserveInterrupt InterruptPolicy = iota
	// SwallowInterrupt leaves the flag untouched, for contexts outside a
	// natural catch boundary.
	SwallowInterrupt
)

// Flag is an explicit cooperative-cancellation flag. It is owned by the
// execution context that created it, not by any Outcome; Outcome
// operations only read and write it through the context. All methods are
// nil-safe, so code may run without a flag installed.
type Flag struct {
	interrupted atomic.Bool
}

func NewFlag() *Flag {
	return &Flag{}
}

func (f *Flag) Set() {
	if f != nil {
		f.interrupted.Store(true)
	}
}

func (f *Flag) Clear() {
	if f != nil {
		f.interrupted.Store(false)
	}
}

func (f *Flag) IsSet() bool {
	if f == nil {
		return false
	}
	return f.interrupted.Load()
}

type OptionKey string

const FlagOptionKey OptionKey = "interrupt_flag"

// WithFlag installs the cooperative-cancellation flag on the context.
func WithFlag(ctx context.Context, f *Flag) context.Context {
	return context.WithValue(ctx, FlagOptionKey, f)
}

// FlagFrom returns the flag installed on the context, or nil when none is.
func FlagFrom(ctx context.Context) *Flag {
	f, ok := ctx.Value(FlagOptionKey).(*Flag)
	if ok {
		return f
	}
	return nil
}
