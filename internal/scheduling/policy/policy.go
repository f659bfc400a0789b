// Package policy holds the booking policy snapshot handed to the scheduling engine on
// every call. A Config is a value; the engine never keeps one between calls.
package policy

import (
	"fmt"
	"spa/config"
	"spa/shared/failure"

	"github.com/shopspring/decimal"
)

// Config is an immutable booking policy snapshot.
type Config struct {
	DepositPercentage             decimal.Decimal
	CancellationWindowHours       int
	LateCancellationFeePercentage decimal.Decimal
	MinDurationMinutes            int
	MaxDurationMinutes            int
	MaxBookingAdvanceDays         int
	MaxNotesLength                int
	CreditCostPerBooking          decimal.Decimal
	OpeningHour                   int
	ClosingHour                   int
}

// CreditCostPerBooking is the flat number of membership credits one booking consumes.
var CreditCostPerBooking = decimal.NewFromInt(1)

// Default builds the policy from the service configuration.
func Default(cfg *config.Config) (Config, error) {
	booking := cfg.Booking

	deposit, err := decimal.NewFromString(booking.DepositPercentage)
	if err != nil {
		return Config{}, fmt.Errorf("parse deposit percentage: %w", err)
	}

	fee, err := decimal.NewFromString(booking.LateCancellationFeePercentage)
	if err != nil {
		return Config{}, fmt.Errorf("parse late cancellation fee percentage: %w", err)
	}

	policy := Config{
		DepositPercentage:             deposit,
		CancellationWindowHours:       booking.CancellationWindowHours,
		LateCancellationFeePercentage: fee,
		MinDurationMinutes:            booking.MinDurationMinutes,
		MaxDurationMinutes:            booking.MaxDurationMinutes,
		MaxBookingAdvanceDays:         booking.MaxBookingAdvanceDays,
		MaxNotesLength:                booking.MaxNotesLength,
		CreditCostPerBooking:          CreditCostPerBooking,
		OpeningHour:                   booking.OpeningHour,
		ClosingHour:                   booking.ClosingHour,
	}

	if err := policy.Validate(); err != nil {
		return Config{}, err
	}

	return policy, nil
}

// Validate rejects snapshots the engine cannot apply consistently.
func (c Config) Validate() error {
	one := decimal.NewFromInt(1)

	switch {
	case c.DepositPercentage.IsNegative() || c.DepositPercentage.GreaterThan(one):
		return failure.Validation(failure.ReasonPolicyInvalid, "deposit percentage must be between 0 and 1") // nolint:wrapcheck
	case c.LateCancellationFeePercentage.IsNegative() || c.LateCancellationFeePercentage.GreaterThan(one):
		return failure.Validation(failure.ReasonPolicyInvalid, "late cancellation fee percentage must be between 0 and 1") // nolint:wrapcheck
	case c.CancellationWindowHours < 0:
		return failure.Validation(failure.ReasonPolicyInvalid, "cancellation window must not be negative") // nolint:wrapcheck
	case c.MinDurationMinutes <= 0 || c.MaxDurationMinutes < c.MinDurationMinutes:
		return failure.Validation(failure.ReasonPolicyInvalid, "duration bounds are inconsistent") // nolint:wrapcheck
	case c.MaxBookingAdvanceDays <= 0:
		return failure.Validation(failure.ReasonPolicyInvalid, "max booking advance days must be positive") // nolint:wrapcheck
	case c.MaxNotesLength < 0:
		return failure.Validation(failure.ReasonPolicyInvalid, "max notes length must not be negative") // nolint:wrapcheck
	case !c.CreditCostPerBooking.IsPositive():
		return failure.Validation(failure.ReasonPolicyInvalid, "credit cost per booking must be positive") // nolint:wrapcheck
	case c.OpeningHour < 0 || c.ClosingHour > 24 || c.OpeningHour >= c.ClosingHour:
		return failure.Validation(failure.ReasonPolicyInvalid, "business hours are inconsistent") // nolint:wrapcheck
	}

	return nil
}
