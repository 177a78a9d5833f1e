// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per application error category:
//   - ObjectNotFoundError: For missing or cross-tenant resources
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ConflictError: For operations that contradict current state
//   - PaymentRequiredError: For subscription and quota gating
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is matching
//
// The Kind type classifies any error into one of these categories so that
// transport adapters can map errors to response codes and business code can
// branch on error class without parsing messages.
package errs
