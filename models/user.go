package models

// UserRole is the access role of a user as defined by the bff.v1 schema.
type UserRole int32

const (
	UserRoleUnspecified UserRole = 0
	UserRoleAdmin       UserRole = 1
	UserRoleMember      UserRole = 2
	UserRoleViewer      UserRole = 3
)

var userRoleNames = map[int32]string{
	0: "USER_ROLE_UNSPECIFIED",
	1: "USER_ROLE_ADMIN",
	2: "USER_ROLE_MEMBER",
	3: "USER_ROLE_VIEWER",
}

var userRoleValues = map[string]int32{
	"USER_ROLE_UNSPECIFIED": 0,
	"USER_ROLE_ADMIN":       1,
	"USER_ROLE_MEMBER":      2,
	"USER_ROLE_VIEWER":      3,
}

func (r UserRole) String() string {
	if name, ok := userRoleNames[int32(r)]; ok {
		return name
	}
	return "USER_ROLE_" + itoa(int32(r))
}

func (r UserRole) MarshalJSON() ([]byte, error) {
	return marshalEnum(int32(r), userRoleNames)
}

func (r *UserRole) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, userRoleValues)
	if err != nil {
		return err
	}
	*r = UserRole(v)
	return nil
}

// User is the bff.v1.User wire message.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

type ListUsersRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"pageSize"`
}

type ListUsersResponse struct {
	Users []*User `json:"users"`
	Total int32   `json:"total"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User *User `json:"user"`
}

type UpdateUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type UpdateUserResponse struct {
	User *User `json:"user"`
}
