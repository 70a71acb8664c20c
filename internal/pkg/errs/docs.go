// Package errs provides the error taxonomy shared by the order lifecycle core.
//
// Every error type follows one pattern: a sentinel error variable, a struct carrying the
// details, constructors with and without a cause, an Error method and an Unwrap method so
// callers classify with errors.Is and errors.As.
//
// Mapping to the lifecycle taxonomy:
//   - ObjectNotFoundError: NotFound (referenced order, notification or user is absent)
//   - UnauthorizedError: Unauthorized (actor lacks rights for the transition)
//   - InvalidStateError: InvalidState (a transition guard failed; Reason is user facing)
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: ValidationError
//   - ChannelFailureError: ChannelFailure (notification channel local, never surfaced)
package errs
