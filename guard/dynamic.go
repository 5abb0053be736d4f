package guard

import (
	"reflect"

	"github.com/spf13/cast"
)

//nolint:gochecknoglobals // type descriptors resolved once
var (
	errorType = reflect.TypeFor[error]()
)

// wrapFunc builds a func of fn's type that runs the disposal check on its
// first argument before calling fn.
func wrapFunc(methodName string, fn reflect.Value) reflect.Value {
	ft := fn.Type()
	returnsErr := ft.NumOut() > 0 && ft.Out(ft.NumOut()-1) == errorType

	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		if err := checkArgs(methodName, args); err != nil {
			if !returnsErr {
				panic(err)
			}
			return failResults(ft, err)
		}

		// MakeFunc hands variadic arguments over as a trailing slice.
		if ft.IsVariadic() {
			return fn.CallSlice(args)
		}
		return fn.Call(args)
	})
}

func checkArgs(methodName string, args []reflect.Value) error {
	if len(args) == 0 {
		return newMissingCheckError(methodName, "<none>")
	}

	disposed, ok := queryDisposed(args[0])
	if !ok {
		return newMissingCheckError(methodName, args[0].Type().String())
	}
	if disposed {
		return newDisposedError()
	}
	return nil
}

// queryDisposed asks recv whether it is disposed. ok is false when recv has
// no usable IsDisposed method.
func queryDisposed(recv reflect.Value) (disposed, ok bool) {
	if !recv.CanInterface() {
		return false, false
	}

	v := recv.Interface()
	if v == nil {
		return false, false
	}

	if d, isDisposable := v.(Disposable); isDisposable {
		return d.IsDisposed(), true
	}

	// Fall back to any IsDisposed method returning a boolean-like value.
	m := reflect.ValueOf(v).MethodByName(DisposeCheckName)
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() == 0 {
		return false, false
	}

	out := m.Call(nil)
	return cast.ToBool(out[0].Interface()), true
}

func failResults(ft reflect.Type, err error) []reflect.Value {
	out := make([]reflect.Value, ft.NumOut())
	for i := range out {
		out[i] = reflect.Zero(ft.Out(i))
	}
	out[len(out)-1] = reflect.ValueOf(&err).Elem()
	return out
}
