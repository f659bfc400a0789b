package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"spa/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Transactor runs a unit of work inside a database transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) error
}

// Serializable is the isolation booking writes run under.
func Serializable() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

// WithTransaction begins a transaction on the write connection, runs fn and commits.
// Any error from fn, or a panic, rolls the transaction back.
func (c *Connection) WithTransaction(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error().Err(rollbackErr).Msg("Failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// IsConcurrentWrite reports whether err comes from a concurrent writer winning the race:
// an exclusion constraint violation or a serialization failure.
func IsConcurrentWrite(err error) bool {
	code := errorCode(err)

	return code == constant.PqErrorCodeExclusionViolation || code == constant.PqErrorCodeSerializationFailure
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return errorCode(err) == constant.PqErrorCodeUniqueViolation
}

func errorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}
