package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"spa/infras/otel"
	"spa/infras/postgres"
	"spa/internal/domains/giftcertificate/model"
	gDto "spa/shared/dto"
	gRepo "spa/shared/repository"

	"github.com/jmoiron/sqlx"
)

type GiftCertificate interface {
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.GiftCertificate, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.GiftCertificate]
}

func New(db *postgres.Connection, otel otel.Otel) GiftCertificate {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GiftCertificate](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
