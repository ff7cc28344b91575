package store

import (
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/models"
)

type UsersStore = ListStore[models.ListUsersRequest, models.ListUsersResponse, models.UserView]

func NewUsersStore(client bff.UserServiceClient, opts ...Option) *UsersStore {
	return NewListStore(ListQuery[models.ListUsersRequest, models.ListUsersResponse, models.UserView]{
		Name: "users",
		Call: client.ListUsers,
		Request: func(page, pageSize int32) *models.ListUsersRequest {
			return &models.ListUsersRequest{Page: page, PageSize: pageSize}
		},
		Items: func(resp *models.ListUsersResponse) []models.UserView {
			return userViews(resp.Users)
		},
	}, opts...)
}
