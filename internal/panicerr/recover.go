package panicerr

// Recover runs f, converting any panic into a non-nil error return that
// carries the panic value and stack.
// Unlike running f in a separate goroutine, f shares the caller's stack, so
// it must not call runtime.Goexit.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = newPanicError(name, e)
		}
	}()
	return f()
}
