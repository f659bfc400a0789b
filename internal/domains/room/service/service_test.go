package service_test

import (
	"context"
	"errors"
	"spa/config"
	otelMocks "spa/infras/otel/mocks"
	roomMocks "spa/internal/domains/room/mocks"
	"spa/internal/domains/room/model"
	"spa/internal/domains/room/model/dto"
	"spa/internal/domains/room/service"
	"spa/shared/cache"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockOtel := otelMocks.NewOtel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, cache.NewRedisCache(client, mockOtel), mockOtel), mockRepo
}

func actorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyActorID, "front-desk")
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom)
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "Lotus", room.Name)
						assert.Equal(t, "front-desk", room.CreatedBy)
						assert.True(t, room.Active)

						return nil
					})
			},
		},
		{
			name: "repository error",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			err := svc.Create(actorContext(), dto.CreateRoomRequest{Name: "Lotus", Capacity: 1})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r-1", Name: "Lotus", Active: true}, nil)

	res, err := svc.Get(actorContext(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, "Lotus", res.Name)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err = svc.Get(actorContext(), "missing")

	assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
}

func TestRoomService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{{ID: "r-1"}}, nil)

	res, err := svc.GetAll(actorContext(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Rooms, 1)
}

func TestRoomService_Update(t *testing.T) {
	capacity := 3

	t.Run("not found", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(actorContext(), dto.UpdateRoomRequest{Capacity: &capacity}, "missing")

		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})

	t.Run("updates only set fields", func(t *testing.T) {
		svc, repo := newService(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &capacity, fields[model.FieldCapacity])
				assert.NotContains(t, fields, model.FieldName)
				assert.Equal(t, "front-desk", fields[constant.FieldModifiedBy])

				return nil
			})

		err := svc.Update(actorContext(), dto.UpdateRoomRequest{Capacity: &capacity}, "r-1")

		assert.NoError(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, svc.Delete(actorContext(), "r-1"))
}

func TestRoomService_AddCapability(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		repoErr  error
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "added", exists: true},
		{name: "room missing", exists: false, wantErr: true, wantKind: failure.KindNotFound},
		{name: "already present", exists: true, repoErr: &pq.Error{Code: "23505"}, wantErr: true, wantKind: failure.KindConflict},
		{name: "database error", exists: true, repoErr: errors.New("boom"), wantErr: true, wantKind: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exists, nil)

			if tt.exists {
				repo.EXPECT().
					AddCapability(gomock.Any(), model.Capability{RoomID: "r-1", ServiceID: "svc-1"}).
					Return(tt.repoErr)
			}

			err := svc.AddCapability(actorContext(), "r-1", dto.CapabilityRequest{ServiceID: "svc-1"})

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func TestRoomService_Capabilities(t *testing.T) {
	svc, repo := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().GetCapabilities(gomock.Any(), "r-1").Return([]model.Capability{{RoomID: "r-1", ServiceID: "svc-1"}}, nil)

	res, err := svc.GetCapabilities(actorContext(), "r-1")

	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, res.ServiceIDs)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().RemoveCapability(gomock.Any(), model.Capability{RoomID: "r-1", ServiceID: "svc-1"}).Return(nil)

	assert.NoError(t, svc.RemoveCapability(actorContext(), "r-1", "svc-1"))
}
