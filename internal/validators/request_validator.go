package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/axle-client/models"
)

const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldEmail       = "email"
	FieldPage        = "page"
	FieldPageSize    = "page_size"
	FieldUpdate      = "update"
)

const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxPageSize          = 100
)

// RequestValidator validates bff.v1 request messages.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.ListProjectsRequest:
		return v.validatePage(value.Page, value.PageSize, fields...)
	case *models.ListUsersRequest:
		return v.validatePage(value.Page, value.PageSize, fields...)

	case *models.GetProjectRequest:
		return requireID(value.ID)
	case *models.DeleteProjectRequest:
		return requireID(value.ID)
	case *models.GetUserRequest:
		return requireID(value.ID)

	case *models.CreateProjectRequest:
		return v.validateCreateProject(value, fields...)
	case *models.UpdateProjectRequest:
		return v.validateUpdateProject(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validatePage(page, pageSize int32, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldPageSize}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if page < 0 {
				return ErrInvalidPage
			}
		case FieldPageSize:
			// zero or negative selects the server default
			if pageSize > MaxPageSize {
				return ErrInvalidPageSize
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateProject(req *models.CreateProjectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(req.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
				return ErrDescTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateProject(req *models.UpdateProjectRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldName, FieldDescription, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if req.ID == "" {
				return ErrEmptyID
			}
		case FieldUpdate:
			if req.Name == "" && req.Description == "" && req.Status == models.ProjectStatusUnspecified {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if utf8.RuneCountInString(req.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldDescription:
			if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
				return ErrDescTooLong
			}
		case FieldStatus:
			switch req.Status {
			case models.ProjectStatusUnspecified, models.ProjectStatusActive, models.ProjectStatusArchived:
			default:
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateUser(req *models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUpdate, FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if req.ID == "" {
				return ErrEmptyID
			}
		case FieldUpdate:
			if req.Name == "" && req.Email == "" {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if utf8.RuneCountInString(req.Name) > MaxNameLength {
				return ErrNameTooLong
			}
		case FieldEmail:
			if req.Email == "" {
				continue
			}
			if addr, err := mail.ParseAddress(req.Email); err != nil || addr.Address != req.Email {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireID(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	return nil
}
