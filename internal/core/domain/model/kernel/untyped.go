package kernel

import (
	"reflect"

	"coffeeshop/internal/pkg/errs"
)

// StringFrom coerces a value received from an untyped source (decoded JSON, form values,
// any-typed call sites) into a string. Named string types are accepted; everything else,
// including nil and []byte, is a wrong-type error.
func StringFrom(paramName string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}

	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	return "", errs.NewValueHasWrongTypeError(paramName, "string", v)
}

// NumberFrom coerces any Go integer or floating-point kind into a float64.
// Integers are converted exactly where float64 allows; bool, string and nil are wrong-type errors.
func NumberFrom(paramName string, v any) (float64, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, errs.NewValueHasWrongTypeError(paramName, "number", v)
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, errs.NewValueHasWrongTypeError(paramName, "number", v)
	}
}
