package guard

import (
	"reflect"
	"slices"

	"github.com/samber/lo"
)

//nolint:gochecknoglobals // fixed exclusion set, never modified
var reservedNames = []string{ConstructorName, DisposeCheckName}

// ReservedNames returns the method names that are never wrapped.
func ReservedNames() []string {
	return slices.Clone(reservedNames)
}

// IsReserved reports whether name is exempt from wrapping.
func IsReserved(name string) bool {
	return lo.Contains(reservedNames, name)
}

// IsCallable reports whether v is a non-nil func.
func IsCallable(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// ShouldWrap reports whether [Create] would wrap candidate under methodName.
func ShouldWrap(methodName string, candidate any) bool {
	return !IsReserved(methodName) && IsCallable(candidate)
}
