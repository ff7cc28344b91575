package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every request validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrHubClosed is returned by Subscribe after the hub was closed.
	ErrHubClosed = errors.New("event hub is closed")
)
