// Package errs provides standardized error types for the harvest service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors into the three families callers are expected to handle:
//   - Validation: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - Lookup: ObjectNotFoundError
//   - State: ConflictError, raised when a lifecycle precondition no longer holds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Anything that does not unwrap to one of the sentinels is an internal failure.
package errs
