package model

import (
	"spa/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "gift_certificates"
	EntityName = "gift_certificate"

	FieldID               = "id"
	FieldCode             = "code"
	FieldOriginalAmount   = "original_amount"
	FieldRemainingBalance = "remaining_balance"
	FieldStatus           = "status"
	FieldExpiresAt        = "expires_at"
	FieldLocationID       = "location_id"
)

type Status string

const (
	StatusActive        Status = "active"
	StatusPartiallyUsed Status = "partially_used"
	StatusFullyRedeemed Status = "fully_redeemed"
	StatusExpired       Status = "expired"
	StatusCancelled     Status = "cancelled"
)

// Redeemable reports whether a certificate in this status can still be drawn down.
func (s Status) Redeemable() bool {
	return s == StatusActive || s == StatusPartiallyUsed
}

// GiftCertificate holds a prepaid balance with 0 <= RemainingBalance <= OriginalAmount.
type GiftCertificate struct {
	ID               string          `db:"id"`
	Code             string          `db:"code"`
	OriginalAmount   decimal.Decimal `db:"original_amount"`
	RemainingBalance decimal.Decimal `db:"remaining_balance"`
	Status           Status          `db:"status"`
	ExpiresAt        *time.Time      `db:"expires_at"`
	LocationID       *string         `db:"location_id"`
	model.Metadata
}

// ExpiredAt reports whether the certificate has passed its expiry at now.
func (g GiftCertificate) ExpiredAt(now time.Time) bool {
	return g.Status == StatusExpired || (g.ExpiresAt != nil && !now.Before(*g.ExpiresAt))
}
