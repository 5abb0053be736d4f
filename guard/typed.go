package guard

// Check returns the disposed error when d is disposed and nil otherwise.
func Check(d Disposable) error {
	if d.IsDisposed() {
		return newDisposedError()
	}
	return nil
}

// Method0 guards a method without arguments.
// fn is returned as is when name is reserved.
func Method0[R Disposable, T any](name string, fn func(R) (T, error)) func(R) (T, error) {
	if IsReserved(name) || fn == nil {
		return fn
	}

	return func(r R) (T, error) {
		if err := Check(r); err != nil {
			var zero T
			return zero, err
		}
		return fn(r)
	}
}

// Method1 guards a method with one argument.
func Method1[R Disposable, A, T any](name string, fn func(R, A) (T, error)) func(R, A) (T, error) {
	if IsReserved(name) || fn == nil {
		return fn
	}

	return func(r R, a A) (T, error) {
		if err := Check(r); err != nil {
			var zero T
			return zero, err
		}
		return fn(r, a)
	}
}

// Method2 guards a method with two arguments.
func Method2[R Disposable, A, B, T any](name string, fn func(R, A, B) (T, error)) func(R, A, B) (T, error) {
	if IsReserved(name) || fn == nil {
		return fn
	}

	return func(r R, a A, b B) (T, error) {
		if err := Check(r); err != nil {
			var zero T
			return zero, err
		}
		return fn(r, a, b)
	}
}

// Action0 guards a method that only returns an error.
func Action0[R Disposable](name string, fn func(R) error) func(R) error {
	if IsReserved(name) || fn == nil {
		return fn
	}

	return func(r R) error {
		if err := Check(r); err != nil {
			return err
		}
		return fn(r)
	}
}

// Action1 guards a method with one argument that only returns an error.
func Action1[R Disposable, A any](name string, fn func(R, A) error) func(R, A) error {
	if IsReserved(name) || fn == nil {
		return fn
	}

	return func(r R, a A) error {
		if err := Check(r); err != nil {
			return err
		}
		return fn(r, a)
	}
}
