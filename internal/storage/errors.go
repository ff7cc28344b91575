package storage

import "errors"

// Sentinel errors returned by repositories. Callers match them with
// [errors.Is].
var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when an insert violates a unique or
	// primary key constraint.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrUnsupportedDriver is returned by [NewStorages] for unknown driver
	// names.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. They wrap the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)
