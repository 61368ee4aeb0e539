package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Services wrap these with context and the API layer uses `errors.Is()` to map
// them to HTTP responses.

var (
	// ErrNotFound signifies that a requested resource could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that an operation could not be completed because
	// it conflicts with the current state of a resource.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrConflict = errors.New("resource conflict")

	// ErrBusy signifies that a generation is already in flight. Only one
	// generation may run at a time for the whole application.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrBusy = errors.New("a response is already being generated")

	// ErrUnauthenticated signifies that no user is signed in.
	// This is typically mapped to a 401 Unauthorized HTTP status.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrPermission signifies that the user is not allowed to perform the
	// requested action.
	// This is typically mapped to a 403 Forbidden HTTP status.
	ErrPermission = errors.New("permission denied")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
