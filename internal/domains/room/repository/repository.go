package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/room/model"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetCapabilities(ctx context.Context, roomID string) ([]model.Capability, error)
	GetCapabilitiesTx(ctx context.Context, sqltx *sqlx.Tx, roomID, serviceID string) ([]model.Capability, error)
	AddCapability(ctx context.Context, capability model.Capability) error
	RemoveCapability(ctx context.Context, capability model.Capability) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	capabilities gRepo.Repository[model.Capability]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		capabilities: gRepo.NewRepository[model.Capability](
			model.CapabilityEntityName, model.CapabilityTableName, model.FieldCapabilityRoomID, db, otel,
		),
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) GetCapabilities(ctx context.Context, roomID string) ([]model.Capability, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetCapabilities")
	defer scope.End()

	return r.capabilities.GetAll(ctx, gDto.QueryParams{}, capabilityFilter(model.Capability{RoomID: roomID})) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCapabilitiesTx(ctx context.Context, sqltx *sqlx.Tx, roomID, serviceID string) ([]model.Capability, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetCapabilitiesTx")
	defer scope.End()

	filter := capabilityFilter(model.Capability{RoomID: roomID, ServiceID: serviceID})

	return r.capabilities.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) AddCapability(ctx context.Context, capability model.Capability) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AddCapability")
	defer scope.End()

	return r.capabilities.Insert(ctx, capability) //nolint:wrapcheck
}

func (r *repositoryImpl) RemoveCapability(ctx context.Context, capability model.Capability) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RemoveCapability")
	defer scope.End()

	return r.capabilities.Delete(ctx, capabilityFilter(capability)) //nolint:wrapcheck
}

func capabilityFilter(capability model.Capability) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if capability.RoomID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCapabilityRoomID,
			Value:    capability.RoomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.CapabilityTableName,
		})
	}

	if capability.ServiceID != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldCapabilityServiceID,
			Value:    capability.ServiceID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.CapabilityTableName,
		})
	}

	return filter
}
