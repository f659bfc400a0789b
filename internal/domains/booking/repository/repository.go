package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/booking/model"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"
	"spa/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	FindOverlapping(ctx context.Context, window timezone.Interval, resources model.Resources) ([]model.Booking, error)
	FindOverlappingTx(ctx context.Context, sqltx *sqlx.Tx, window timezone.Interval, resources model.Resources) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) FindOverlapping(ctx context.Context, window timezone.Interval, resources model.Resources) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlapping")
	defer scope.End()

	if resources.Kind() == model.ResourceKindNone {
		return []model.Booking{}, nil
	}

	return r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: "asc"}, OverlapFilter(window, resources)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindOverlappingTx(
	ctx context.Context,
	sqltx *sqlx.Tx,
	window timezone.Interval,
	resources model.Resources,
) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlappingTx")
	defer scope.End()

	if resources.Kind() == model.ResourceKindNone {
		return []model.Booking{}, nil
	}

	return r.GetAllTx(ctx, sqltx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: "asc"}, OverlapFilter(window, resources)) //nolint:wrapcheck
}

// OverlapFilter selects non-cancelled bookings on either resource whose interval overlaps window.
func OverlapFilter(window timezone.Interval, resources model.Resources) gDto.FilterGroup {
	window = window.UTC()

	holders := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorOr}

	if resources.HasTherapist() {
		holders.Filters = append(holders.Filters, gDto.Filter{
			Field:    model.FieldTherapistID,
			Value:    resources.Therapist(),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if resources.HasRoom() {
		holders.Filters = append(holders.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    resources.Room(),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    string(model.StatusCancelled),
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldStartTime,
				Value:    window.End,
				Operator: gDto.FilterOperatorLess,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldEndTime,
				Value:    window.Start,
				Operator: gDto.FilterOperatorGreater,
				Table:    model.TableName,
			},
			holders,
		},
	}
}
