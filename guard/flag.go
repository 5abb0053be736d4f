package guard

import "sync/atomic"

// Flag records the disposed state of an object. Embed it to satisfy
// [Disposable]; the zero value is not disposed.
//
// Flag performs no cleanup. Release resources before or after calling Dispose.
type Flag struct {
	disposed atomic.Bool
}

// Dispose marks the object as disposed. It reports whether this call changed
// the state, so only the first caller observes true.
func (f *Flag) Dispose() bool {
	return f.disposed.CompareAndSwap(false, true)
}

// IsDisposed implements [Disposable].
func (f *Flag) IsDisposed() bool {
	return f.disposed.Load()
}
