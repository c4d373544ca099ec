package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueHasWrongType = errors.New("value has wrong type")
	ErrObjectNotFound    = errors.New("object not found")
)

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value has the right shape but breaks a business rule
// that is not a simple bound, for example a reference to an entity owned by another shop.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive [Min, Max] interval.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsTooShortError reports a length below an open-ended lower bound.
// It is a range error: errors.Is(err, ErrValueIsOutOfRange) holds.
type ValueIsTooShortError struct {
	ParamName string
	Length    int
	Min       int
}

func NewValueIsTooShortError(paramName string, length, minLength int) *ValueIsTooShortError {
	return &ValueIsTooShortError{ParamName: paramName, Length: length, Min: minLength}
}

func (e *ValueIsTooShortError) Error() string {
	return fmt.Sprintf("%s: %s length is %d, min length is %d", ErrValueIsOutOfRange, e.ParamName, e.Length, e.Min)
}

func (e *ValueIsTooShortError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueHasWrongTypeError is returned at untyped boundaries when a value is not of the expected kind.
type ValueHasWrongTypeError struct {
	ParamName string
	Expected  string
	Actual    string
}

func NewValueHasWrongTypeError(paramName, expected string, value any) *ValueHasWrongTypeError {
	return &ValueHasWrongTypeError{ParamName: paramName, Expected: expected, Actual: fmt.Sprintf("%T", value)}
}

func (e *ValueHasWrongTypeError) Error() string {
	return fmt.Sprintf("%s: %s must be %s, got %s", ErrValueHasWrongType, e.ParamName, e.Expected, e.Actual)
}

func (e *ValueHasWrongTypeError) Unwrap() error {
	return ErrValueHasWrongType
}

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// IsTypeKind reports whether err carries a wrong-type failure.
func IsTypeKind(err error) bool {
	return errors.Is(err, ErrValueHasWrongType)
}

// IsRangeKind reports whether err carries an out-of-bounds failure.
func IsRangeKind(err error) bool {
	return errors.Is(err, ErrValueIsOutOfRange)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
