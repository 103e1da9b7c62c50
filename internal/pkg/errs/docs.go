// Package errs provides the error taxonomy shared by the back-office service.
//
// Every error type follows the same pattern:
//   - a sentinel variable (ErrValueIsRequired, ErrObjectNotFound, ...) used with errors.Is
//   - a struct carrying the details of the failure
//   - a constructor pair, with and without an underlying cause
//   - Error() for the message and Unwrap() returning the sentinel
//
// Adapters classify failures only through the sentinels: required and invalid values
// become client errors, ErrOperationNotAllowed a conflict, ErrObjectNotFound a not-found.
package errs
