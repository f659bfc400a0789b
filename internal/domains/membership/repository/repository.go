package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/membership/model"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Membership interface {
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Membership, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Membership]
}

func New(db *postgres.Connection, otel otel.Otel) Membership {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Membership](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
