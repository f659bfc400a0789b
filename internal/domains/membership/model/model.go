package model

import (
	"spa/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "memberships"
	EntityName = "membership"

	FieldID             = "id"
	FieldClientID       = "client_id"
	FieldCurrentCredits = "current_credits"
	FieldActive         = "active"
)

// Membership is a client's credit ledger. CurrentCredits never goes below zero.
type Membership struct {
	ID             string          `db:"id"`
	ClientID       string          `db:"client_id"`
	CurrentCredits decimal.Decimal `db:"current_credits"`
	Active         bool            `db:"active"`
	model.Metadata
}
