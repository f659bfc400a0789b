package model

import (
	"spa/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "treatments"
	EntityName = "treatment"

	FieldID              = "id"
	FieldName            = "name"
	FieldPrice           = "price"
	FieldDurationMinutes = "duration_minutes"
	FieldCreditEligible  = "credit_eligible"
	FieldActive          = "active"
)

// Treatment is a bookable spa service from the catalog.
type Treatment struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
	CreditEligible  bool            `db:"credit_eligible"`
	Active          bool            `db:"active"`
	model.Metadata
}
