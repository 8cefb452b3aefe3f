// Package errs provides the typed errors shared by the courier dispatch service.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) used with errors.Is
//   - a struct carrying the details (e.g. ObjectNotFoundError) used with errors.As
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError) sit next to the dispatch specific ones:
// AssignmentMismatchError, UnknownVehicleTypeError, MalformedIntervalError and
// InvalidItemsError for rejected batch payloads.
package errs
