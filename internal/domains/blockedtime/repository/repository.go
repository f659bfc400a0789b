package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/blockedtime/model"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"
	"spa/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
)

type BlockedTime interface {
	Insert(ctx context.Context, model model.BlockedTime) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BlockedTime, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedTime, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	FindForResources(ctx context.Context, query ResourceQuery) ([]model.BlockedTime, error)
	FindForResourcesTx(ctx context.Context, sqltx *sqlx.Tx, query ResourceQuery) ([]model.BlockedTime, error)
}

// ResourceQuery selects the blocks that can affect a therapist and/or room between two dates,
// including the location-wide blocks of LocationID.
type ResourceQuery struct {
	From        time.Time
	To          time.Time
	TherapistID *string
	RoomID      *string
	LocationID  *string
}

func (q ResourceQuery) hasLocation() bool {
	return q.LocationID != nil && *q.LocationID != ""
}

// HasOwner reports whether any block could match: a therapist, a room or a location.
func (q ResourceQuery) HasOwner() bool {
	return (q.TherapistID != nil && *q.TherapistID != "") || (q.RoomID != nil && *q.RoomID != "") || q.hasLocation()
}

type repositoryImpl struct {
	gRepo.Repository[model.BlockedTime]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BlockedTime {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BlockedTime](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) FindForResources(ctx context.Context, query ResourceQuery) ([]model.BlockedTime, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".blocked_time.FindForResources")
	defer scope.End()

	if !query.HasOwner() {
		return nil, nil
	}

	return r.GetAll(ctx, gDto.QueryParams{}, ResourceFilter(query)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindForResourcesTx(ctx context.Context, sqltx *sqlx.Tx, query ResourceQuery) ([]model.BlockedTime, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".blocked_time.FindForResourcesTx")
	defer scope.End()

	if !query.HasOwner() {
		return nil, nil
	}

	return r.GetAllTx(ctx, sqltx, gDto.QueryParams{}, ResourceFilter(query)) //nolint:wrapcheck
}

// ResourceFilter builds the where clause for ResourceQuery. Location-wide blocks match only
// the queried location; without a location only blocks on the therapist or room match.
func ResourceFilter(query ResourceQuery) gDto.FilterGroup {
	owners := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	if query.hasLocation() {
		owners.Filters = append(owners.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldTherapistID, Operator: gDto.FilterIsNull, Table: model.TableName},
				gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterIsNull, Table: model.TableName},
			},
		})
	}

	if query.TherapistID != nil && *query.TherapistID != "" {
		owners.Filters = append(owners.Filters, gDto.Filter{
			Field:    model.FieldTherapistID,
			Value:    *query.TherapistID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if query.RoomID != nil && *query.RoomID != "" {
		owners.Filters = append(owners.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    *query.RoomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	filters := []any{
		gDto.Filter{
			ArgName:  "date_from",
			Field:    model.FieldBlockDate,
			Value:    timezone.StartOfDayUTC(query.From),
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "date_to",
			Field:    model.FieldBlockDate,
			Value:    timezone.StartOfDayUTC(query.To),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
		owners,
	}

	if query.hasLocation() {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldLocationID, Value: *query.LocationID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
				gDto.Filter{Field: model.FieldLocationID, Operator: gDto.FilterIsNull, Table: model.TableName},
			},
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}
