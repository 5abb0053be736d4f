package guard

import "github.com/code19m/errx"

// MsgDisposed is the message of the error returned for calls on a disposed receiver.
const MsgDisposed = "Object is disposed"

// IsDisposedError reports whether err was produced by a guard rejecting a call.
func IsDisposedError(err error) bool {
	return errx.IsCodeIn(err, CodeObjectDisposed)
}

func newDisposedError() error {
	return errx.New(
		MsgDisposed,
		errx.WithCode(CodeObjectDisposed),
		errx.WithType(errx.T_Conflict),
	)
}

func newMissingCheckError(methodName, receiver string) error {
	return errx.New(
		"[guard]: receiver has no "+DisposeCheckName+" method",
		errx.WithCode(CodeMissingDisposeCheck),
		errx.WithType(errx.T_Internal),
		errx.WithDetails(errx.D{
			"method":   methodName,
			"receiver": receiver,
		}),
	)
}
