package bff

import (
	"context"
	"errors"

	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

const UserServiceName = "bff.v1.UserService"

const (
	UserServiceListUsersProcedure  = "/bff.v1.UserService/ListUsers"
	UserServiceGetUserProcedure    = "/bff.v1.UserService/GetUser"
	UserServiceGetMeProcedure      = "/bff.v1.UserService/GetMe"
	UserServiceUpdateUserProcedure = "/bff.v1.UserService/UpdateUser"
)

var UserServiceDesc = rpc.ServiceDesc{
	Name: UserServiceName,
	Methods: []rpc.MethodDesc{
		{Name: "ListUsers", Kind: rpc.MethodUnary},
		{Name: "GetUser", Kind: rpc.MethodUnary},
		{Name: "GetMe", Kind: rpc.MethodUnary},
		{Name: "UpdateUser", Kind: rpc.MethodUnary},
	},
}

type userServiceClient struct {
	listUsers  rpc.UnaryFunc[models.ListUsersRequest, models.ListUsersResponse]
	getUser    rpc.UnaryFunc[models.GetUserRequest, models.GetUserResponse]
	getMe      rpc.UnaryFunc[models.GetMeRequest, models.GetMeResponse]
	updateUser rpc.UnaryFunc[models.UpdateUserRequest, models.UpdateUserResponse]
}

func NewUserServiceClient(t transport.Transport) (UserServiceClient, error) {
	c, err := rpc.NewClient(UserServiceDesc, t)
	if err != nil {
		return nil, err
	}

	var (
		uc   userServiceClient
		errs [4]error
	)
	uc.listUsers, errs[0] = rpc.NewUnary[models.ListUsersRequest, models.ListUsersResponse](c, "ListUsers")
	uc.getUser, errs[1] = rpc.NewUnary[models.GetUserRequest, models.GetUserResponse](c, "GetUser")
	uc.getMe, errs[2] = rpc.NewUnary[models.GetMeRequest, models.GetMeResponse](c, "GetMe")
	uc.updateUser, errs[3] = rpc.NewUnary[models.UpdateUserRequest, models.UpdateUserResponse](c, "UpdateUser")
	if err = errors.Join(errs[:]...); err != nil {
		return nil, err
	}
	return &uc, nil
}

func (c *userServiceClient) ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListUsersResponse, error) {
	return c.listUsers(ctx, req)
}

func (c *userServiceClient) GetUser(ctx context.Context, req *models.GetUserRequest) (*models.GetUserResponse, error) {
	return c.getUser(ctx, req)
}

func (c *userServiceClient) GetMe(ctx context.Context, req *models.GetMeRequest) (*models.GetMeResponse, error) {
	return c.getMe(ctx, req)
}

func (c *userServiceClient) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error) {
	return c.updateUser(ctx, req)
}
