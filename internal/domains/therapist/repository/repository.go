package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/therapist/model"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Therapist interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Therapist, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Therapist, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetQualificationsTx(ctx context.Context, sqltx *sqlx.Tx, therapistID, serviceID string) ([]model.Qualification, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Therapist]
	qualifications gRepo.Repository[model.Qualification]
	otel           otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Therapist {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Therapist](model.EntityName, model.TableName, model.FieldID, db, otel),
		qualifications: gRepo.NewRepository[model.Qualification](
			model.QualificationEntityName, model.QualificationTableName, model.FieldQualificationTherapistID, db, otel,
		),
		otel: otel,
	}
}

func (r *repositoryImpl) GetQualificationsTx(ctx context.Context, sqltx *sqlx.Tx, therapistID, serviceID string) ([]model.Qualification, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".therapist.GetQualificationsTx")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldQualificationTherapistID,
				Value:    therapistID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.QualificationTableName,
			},
			gDto.Filter{
				Field:    model.FieldQualificationServiceID,
				Value:    serviceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.QualificationTableName,
			},
		},
	}

	return r.qualifications.GetAllTx(ctx, sqltx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
