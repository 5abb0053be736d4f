package cfgloader

import (
	"log/slog"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

func printConfig(config any) {
	out, err := yaml.Marshal(masked(reflect.ValueOf(config)).Interface())
	if err != nil {
		slog.Error("[cfgloader]: failed to marshal config", "error", err.Error())
		return
	}
	slog.Info("[cfgloader]: loaded config:\n" + string(out))
}

// masked returns a copy of val where string fields tagged `mask:"true"` are
// replaced by asterisks and other tagged fields are zeroed.
func masked(val reflect.Value) reflect.Value {
	switch val.Kind() { //nolint:exhaustive // only containers need copying
	case reflect.Pointer:
		if val.IsNil() {
			return val
		}
		ptr := reflect.New(val.Elem().Type())
		ptr.Elem().Set(masked(val.Elem()))
		return ptr

	case reflect.Struct:
		out := reflect.New(val.Type()).Elem()
		for i := range val.NumField() {
			if !out.Field(i).CanSet() {
				continue
			}
			field := val.Field(i)
			if val.Type().Field(i).Tag.Get("mask") == "true" {
				out.Field(i).Set(hide(field))
			} else {
				out.Field(i).Set(masked(field))
			}
		}
		return out

	default:
		return val
	}
}

func hide(val reflect.Value) reflect.Value {
	if val.Kind() == reflect.String {
		return reflect.ValueOf(strings.Repeat("*", val.Len())).Convert(val.Type())
	}
	return reflect.Zero(val.Type())
}
