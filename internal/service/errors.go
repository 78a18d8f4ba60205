package service

import "errors"

// Engine error taxonomy. Controllers map these to HTTP statuses with
// errors.Is; services wrap them with context via fmt.Errorf and %w.
var (
	ErrPositionNotFound = errors.New("position not found")
	ErrPersonNotFound   = errors.New("person not found")
	ErrTestNotFound     = errors.New("test not found")
	ErrProgressNotFound = errors.New("test progress not found")
	ErrAttemptNotFound  = errors.New("test attempt not found")
	ErrLinkNotFound     = errors.New("assignment link not found")

	// ErrAttemptLimitExceeded rejects a start once the per-test attempt
	// cap from the position config is reached.
	ErrAttemptLimitExceeded = errors.New("attempt limit exceeded")
	// ErrAlreadyInProgress rejects a second open attempt for the same
	// (person, test) pair.
	ErrAlreadyInProgress = errors.New("an attempt is already in progress")
	// ErrAttemptAlreadyExpired rejects starts and completions on a
	// progress row that expired. Expiry is terminal.
	ErrAttemptAlreadyExpired = errors.New("test assignment has expired")
	// ErrAttemptNotOpen rejects completing an attempt that was already
	// completed or abandoned.
	ErrAttemptNotOpen = errors.New("attempt is not open")

	ErrInvalidConfig = errors.New("invalid evaluation config")
)
