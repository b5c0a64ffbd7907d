// Package errs provides standardized error types for the fulfillment services.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - UpstreamUnavailableError, UpstreamTimeoutError, UpstreamFailureError:
//     For classifying failed calls to remote collaborator services
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The upstream trio carries the most weight here: the order acceptance saga
// persists a distinct order status for each class, so the difference between
// "could not connect", "timed out", and "responded with an error status" must
// survive every layer between the HTTP client and the caller.
package errs
