package bottombar

// Run constructs a Bar, initializes it, invokes fn, and finalizes the bar
// on every exit path, including a panic inside fn. This is the recommended
// way to use a Bar: skipping Finalize on an error path leaves a dangling,
// partially drawn region on the terminal.
//
// The error from fn wins over a finalize error; a finalize error is only
// returned when fn itself succeeded.
func Run(height int, fn func(*Bar) error, opts ...Option) (err error) {
	bar, err := New(height, opts...)
	if err != nil {
		return err
	}
	if err = bar.Init(); err != nil {
		return err
	}
	defer func() {
		ferr := bar.Finalize()
		if err == nil {
			err = ferr
		}
	}()

	return fn(bar)
}
