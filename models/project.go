package models

import "time"

// ProjectStatus is the lifecycle state of a project as defined by the
// bff.v1 schema.
type ProjectStatus int32

const (
	ProjectStatusUnspecified ProjectStatus = 0
	ProjectStatusActive      ProjectStatus = 1
	ProjectStatusArchived    ProjectStatus = 2
)

var projectStatusNames = map[int32]string{
	0: "PROJECT_STATUS_UNSPECIFIED",
	1: "PROJECT_STATUS_ACTIVE",
	2: "PROJECT_STATUS_ARCHIVED",
}

var projectStatusValues = map[string]int32{
	"PROJECT_STATUS_UNSPECIFIED": 0,
	"PROJECT_STATUS_ACTIVE":      1,
	"PROJECT_STATUS_ARCHIVED":    2,
}

// String returns the schema name of the status, or its numeric code when the
// value is not known to this client.
func (s ProjectStatus) String() string {
	if name, ok := projectStatusNames[int32(s)]; ok {
		return name
	}
	return "PROJECT_STATUS_" + itoa(int32(s))
}

func (s ProjectStatus) MarshalJSON() ([]byte, error) {
	return marshalEnum(int32(s), projectStatusNames)
}

func (s *ProjectStatus) UnmarshalJSON(b []byte) error {
	v, err := unmarshalEnum(b, projectStatusValues)
	if err != nil {
		return err
	}
	*s = ProjectStatus(v)
	return nil
}

// Project is the bff.v1.Project wire message.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt,omitzero"`
	UpdatedAt   time.Time     `json:"updatedAt,omitzero"`
}

// ListProjectsRequest asks for one page of projects. Page numbering starts
// at 1; the server applies its own default when PageSize is not positive.
type ListProjectsRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"pageSize"`
}

// ListProjectsResponse carries one page of projects in server order and the
// total number of projects visible to the caller.
type ListProjectsResponse struct {
	Projects []*Project `json:"projects"`
	Total    int32      `json:"total"`
}

type GetProjectRequest struct {
	ID string `json:"id"`
}

type GetProjectResponse struct {
	Project *Project `json:"project"`
}

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateProjectResponse struct {
	Project *Project `json:"project"`
}

type UpdateProjectRequest struct {
	ID          string        `json:"id"`
	Name        string        `json:"name,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
}

type UpdateProjectResponse struct {
	Project *Project `json:"project"`
}

type DeleteProjectRequest struct {
	ID string `json:"id"`
}

type DeleteProjectResponse struct{}
