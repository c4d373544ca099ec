// Package errs provides the error types shared by the coffeeshop domain and its use cases.
//
// Every error type pairs a sentinel with a struct carrying the details:
//   - ValueHasWrongTypeError (ErrValueHasWrongType): a value of the wrong kind at an untyped boundary
//   - ValueIsOutOfRangeError, ValueIsTooShortError (ErrValueIsOutOfRange): a value outside its bounds
//   - ValueIsInvalidError (ErrValueIsInvalid): a well-formed value that breaks a business rule
//   - ValueIsRequiredError (ErrValueIsRequired): a missing value
//   - ObjectNotFoundError (ErrObjectNotFound): a lookup that found nothing
//
// Callers classify failures with errors.Is against the sentinels, or with IsTypeKind and IsRangeKind.
package errs
