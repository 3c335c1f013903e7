package usecase

import "errors"

// Error taxonomy surfaced by the usecases. All of these are scoped to the
// current interaction; none of them are fatal to the process.
var (
	// Registration conflicts.
	ErrDuplicatePhone = errors.New("phone number already registered")
	ErrUnderage       = errors.New("must be at least 12 years old to register")

	// Login failure. Deliberately the same for a wrong password and an
	// unknown phone so accounts cannot be enumerated.
	ErrInvalidCredentials = errors.New("invalid phone number or password")

	// Chat input rejections.
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message exceeds the maximum length")
	ErrSessionClosed  = errors.New("session is not authenticated")

	// Infrastructure failures. The in-memory transcript survives both.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrModelCallFailure   = errors.New("model call failed")
)
