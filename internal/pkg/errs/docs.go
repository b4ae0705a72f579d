// Package errs provides standardized error types for the delivery marketplace.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the failure modes the application
// distinguishes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - InvalidStateError: an operation is not legal from the object's current state
//   - MalformedPayloadError: an encoded payload cannot be decoded
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// All errors here are local, synchronous and recoverable; callers surface
// them to users and leave retries to the user.
package errs
