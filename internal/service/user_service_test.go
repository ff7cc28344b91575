package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/mock"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/models"
)

func TestUserService_GetMe_ReturnsDemoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, nil, &seqIDs{}, logger.Nop())

	repo.EXPECT().GetUser(gomock.Any(), storage.DemoUser.ID).Return(storage.DemoUser, nil)

	resp, err := svc.GetMe(context.Background(), &models.GetMeRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Demo User", resp.User.Name)
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)
}

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(repo, nil, &seqIDs{}, logger.Nop())

	repo.EXPECT().ListUsers(gomock.Any(), storage.Page{Offset: 10, Limit: 10}).
		Return([]models.User{{ID: "u1"}, {ID: "u2"}}, int32(12), nil)

	resp, err := svc.ListUsers(context.Background(), &models.ListUsersRequest{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, int32(12), resp.Total)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "u2", resp.Users[1].ID)
}

func TestUserService_UpdateUser_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	pub := &recordingPublisher{}
	svc := NewUserService(repo, pub, &seqIDs{}, logger.Nop())

	updated := storage.DemoUser
	updated.Email = "new@axle.local"

	repo.EXPECT().GetUser(gomock.Any(), storage.DemoUser.ID).Return(storage.DemoUser, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), updated).Return(updated, nil)

	resp, err := svc.UpdateUser(context.Background(), &models.UpdateUserRequest{ID: storage.DemoUser.ID, Email: "new@axle.local"})

	require.NoError(t, err)
	assert.Equal(t, "Demo User", resp.User.Name)
	require.Len(t, pub.events, 1)
	assert.Equal(t, EventUserUpdated, pub.events[0].Type)
	assert.Empty(t, pub.events[0].ProjectID)
}
