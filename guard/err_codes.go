package guard

// Error codes for guard operations.
const (
	// CodeObjectDisposed is returned when a guarded method is called on a disposed receiver.
	CodeObjectDisposed = "OBJECT_DISPOSED"

	// CodeMissingDisposeCheck is returned when the receiver of a guarded method
	// exposes no IsDisposed predicate.
	CodeMissingDisposeCheck = "MISSING_DISPOSE_CHECK"
)
