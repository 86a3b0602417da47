package outcome

import (
	"context"
	"errors"
	"testing"
)

func TestCapture_Success(t *testing.T) {
	t.Parallel()
	out := Capture(context.Background(), CatchUnchecked, func() (int, error) {
		return 5, nil
	})

	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: %v", out)
	}
}

func TestCapture_ReturnedErrorCaptured(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	out := Capture(context.Background(), CatchRecoverable, func() (int, error) {
		return 0, err
	})

	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected captured failure, got: %v", out)
	}
	if out.Tier() != TierRecoverable {
		t.Fatalf("returned error should classify recoverable, got: %v", out.Tier())
	}
}

func TestCapture_ReturnedErrorOutsideCatchPropagates(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")

	defer func() {
		if rv := recover(); rv != err {
			t.Fatalf("expected the original error identity, got: %v", rv)
		}
	}()

	Capture(context.Background(), CatchUnchecked, func() (int, error) {
		return 0, err
	})
	t.Fatalf("capture should not have returned")
}

func TestCapture_FatalOutsideCatchPropagates(t *testing.T) {
	t.Parallel()
	err := Fatal(errors.New("corrupted"))

	defer func() {
		if rv := recover(); rv != err {
			t.Fatalf("expected the original fatal error, got: %v", rv)
		}
	}()

	Capture(context.Background(), CatchRecoverable, func() (int, error) {
		return 0, err
	})
	t.Fatalf("capture should not have returned")
}

func TestCapture_FatalCapturedWithCatchAll(t *testing.T) {
	t.Parallel()
	err := Fatal(errors.New("corrupted"))
	out := Capture(context.Background(), CatchAll, func() (int, error) {
		return 0, err
	})

	if !out.IsFailure() || out.Err() != err || out.Tier() != TierFatal {
		t.Fatalf("expected captured fatal failure, got: %v", out)
	}
}

func TestCapture_PanicErrorCaptured(t *testing.T) {
	t.Parallel()
	err := errors.New("undeclared")
	out := Capture(context.Background(), CatchUnchecked, func() (int, error) {
		panic(err)
	})

	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected captured panic, got: %v", out)
	}
	if out.Tier() != TierUnchecked {
		t.Fatalf("panicked plain error should classify unchecked, got: %v", out.Tier())
	}
}

func TestCapture_PanicNonErrorWrapped(t *testing.T) {
	t.Parallel()
	out := Capture(context.Background(), CatchUnchecked, func() (int, error) {
		panic("blew up")
	})

	if !out.IsFailure() {
		t.Fatalf("expected failure, got: %v", out)
	}
	var panicErr *PanicError
	if !errors.As(out.Err(), &panicErr) || panicErr.Value != "blew up" {
		t.Fatalf("expected *PanicError carrying the value, got: %v", out.Err())
	}
}

func TestCapture_PanicOutsideCatchRepanicsSameValue(t *testing.T) {
	t.Parallel()
	err := Fatal(errors.New("corrupted"))

	defer func() {
		if rv := recover(); rv != err {
			t.Fatalf("expected the original panic value, got: %v", rv)
		}
	}()

	Capture(context.Background(), CatchRecoverable, func() (int, error) {
		panic(err)
	})
	t.Fatalf("capture should not have returned")
}

func TestCapture_PanickedCancellationIsRecoverable(t *testing.T) {
	t.Parallel()
	out := Capture(context.Background(), CatchRecoverable, func() (int, error) {
		panic(context.Canceled)
	})

	if !out.IsFailure() || out.Tier() != TierRecoverable {
		t.Fatalf("panicked cancellation should classify recoverable, got: %v", out)
	}
}

func TestCapture_CancellationSetsFlag(t *testing.T) {
	t.Parallel()
	flag := NewFlag()
	ctx := WithFlag(context.Background(), flag)

	out := Capture(ctx, CatchRecoverable, func() (int, error) {
		return 0, context.Canceled
	})

	if !out.IsFailure() || out.Err() != context.Canceled {
		t.Fatalf("expected captured cancellation, got: %v", out)
	}
	if !flag.IsSet() {
		t.Fatalf("capturing a cancellation error should set the flag")
	}
}

func TestCapture_PropagatedCancellationLeavesFlag(t *testing.T) {
	t.Parallel()
	flag := NewFlag()
	ctx := WithFlag(context.Background(), flag)

	defer func() {
		if rv := recover(); rv != context.Canceled {
			t.Fatalf("expected the cancellation error, got: %v", rv)
		}
		if flag.IsSet() {
			t.Fatalf("a propagated failure was never classified, flag must stay unset")
		}
	}()

	Capture(ctx, CatchUnchecked, func() (int, error) {
		return 0, context.Canceled
	})
	t.Fatalf("capture should not have returned")
}

func TestRun_SuccessHasNoPayload(t *testing.T) {
	t.Parallel()
	ran := false
	out := Run(context.Background(), CatchRecoverable, func() error {
		ran = true
		return nil
	})

	if !ran {
		t.Fatalf("operation should have been invoked")
	}
	if !out.IsSuccess() || out.HasResult() {
		t.Fatalf("run success should carry an absent payload, got: %v", out)
	}
}

func TestRun_FailureCaptured(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	out := Run(context.Background(), CatchRecoverable, func() error {
		return err
	})

	if !out.IsFailure() || out.Err() != err {
		t.Fatalf("expected captured failure, got: %v", out)
	}
}
