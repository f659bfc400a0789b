package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/treatment/model"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Treatment interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Treatment, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Treatment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Treatment, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Treatment]
}

func New(db *postgres.Connection, otel otel.Otel) Treatment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Treatment](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
