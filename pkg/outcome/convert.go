package outcome

// Convert merges both sides of the Outcome into a new value. At most one
// argument is non-nil: a failure presents only err, a success presents
// only a copy of its payload, and an empty success presents both sides
// absent, so a nil pair does not mean failure. Anything raised by
// converter propagates unmodified.
//
// Convert is a package function because Go methods cannot introduce type
// parameters.
func Convert[In, Out any](r Outcome[In], converter func(success *In, err error) Out) Out {
	return converter(r.successRef(), r.err)
}

// Consume is Convert without a result, for side-effecting merges.
func (r Outcome[T]) Consume(consumer func(success *T, err error)) {
	consumer(r.successRef(), r.err)
}

func (r Outcome[T]) successRef() *T {
	if r.err == nil && r.hasValue {
		v := r.value
		return &v
	}
	return nil
}
