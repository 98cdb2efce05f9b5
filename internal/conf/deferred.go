package conf

// Deferred holds a parse result captured during resolution whose
// failure is surfaced only when the value is read. The wait
// subcommand's offset and event are parsed while merging the
// command-line layer, but a failure there must not abort a run that
// never consumes them.
type Deferred[T any] struct {
	value T
	err   error
}

// DeferredOf captures a value and its parse error as a pair.
func DeferredOf[T any](value T, err error) Deferred[T] {
	return Deferred[T]{value: value, err: err}
}

// Get returns the stored value, or the error captured at resolution
// time. A failed parse never degrades to the zero value: callers must
// check the error before using the result.
func (d Deferred[T]) Get() (T, error) {
	return d.value, d.err
}
