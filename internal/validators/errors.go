package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrDescTooLong      = errors.New("description is too long")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidStatus    = errors.New("invalid project status")
	ErrInvalidPage      = errors.New("page must not be negative")
	ErrInvalidPageSize  = errors.New("page size is out of range")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
