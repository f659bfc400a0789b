// Package pricing computes the charge terms of an accepted booking and draws down the
// membership credits or gift certificate balance that pays for it.
package pricing

import (
	"fmt"
	bookingModel "spa/internal/domains/booking/model"
	giftModel "spa/internal/domains/giftcertificate/model"
	membershipModel "spa/internal/domains/membership/model"
	"spa/internal/scheduling/policy"
	"spa/shared/failure"
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the precision money amounts are rounded to.
const CurrencyPlaces = 2

// Input carries the price, the client's balances and the policy for one booking.
// Membership and GiftCertificate are mutated in place when Allocate succeeds.
type Input struct {
	BasePrice            decimal.Decimal
	Policy               policy.Config
	Now                  time.Time
	LocationID           *string
	UseMembershipCredits bool
	CreditEligible       bool
	Membership           *membershipModel.Membership
	GiftCertificateCode  *string
	GiftCertificate      *giftModel.GiftCertificate
}

// Quote is the outcome of Allocate.
type Quote struct {
	TotalPrice            decimal.Decimal
	DepositAmount         decimal.Decimal
	DiscountApplied       decimal.Decimal
	UsedMembershipCredits bool
	CreditsUsed           decimal.Decimal
	GiftCertificateCode   *string
}

// ApplyTo copies the charge terms onto a booking draft.
func (q Quote) ApplyTo(booking *bookingModel.Booking) {
	booking.TotalPrice = q.TotalPrice
	booking.DepositAmount = q.DepositAmount
	booking.DiscountApplied = q.DiscountApplied
	booking.UsedMembershipCredits = q.UsedMembershipCredits
	booking.CreditsUsed = q.CreditsUsed
	booking.GiftCertificateCode = q.GiftCertificateCode
}

// Allocate prices a booking. Membership credits take precedence over a gift certificate.
// Balances are only touched once every check has passed.
func Allocate(in Input) (Quote, error) {
	if !in.BasePrice.IsPositive() {
		return Quote{}, failure.InvariantViolation( // nolint:wrapcheck
			failure.ReasonNonPositiveBasePrice,
			fmt.Sprintf("service price must be positive, got %s", in.BasePrice.StringFixed(CurrencyPlaces)),
		)
	}

	if in.UseMembershipCredits {
		return allocateCredits(in)
	}

	if in.GiftCertificateCode != nil && *in.GiftCertificateCode != "" {
		return allocateGiftCertificate(in)
	}

	quote := Quote{
		TotalPrice:      in.BasePrice,
		DiscountApplied: decimal.Zero,
		CreditsUsed:     decimal.Zero,
	}

	quote.DepositAmount = Deposit(quote.TotalPrice, in.Policy.DepositPercentage)

	if err := quote.check(); err != nil {
		return Quote{}, err
	}

	return quote, nil
}

// Deposit returns owed × percentage rounded to currency precision.
func Deposit(owed, percentage decimal.Decimal) decimal.Decimal {
	return owed.Mul(percentage).Round(CurrencyPlaces)
}

func allocateCredits(in Input) (Quote, error) {
	membership := in.Membership

	if membership == nil || !membership.Active {
		return Quote{}, failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonMembershipInactive,
			"client has no active membership to pay with credits",
		)
	}

	if !in.CreditEligible {
		return Quote{}, failure.IncompatibleResource( // nolint:wrapcheck
			failure.ReasonServiceNotCreditEligible,
			"service cannot be paid with membership credits",
		)
	}

	cost := in.Policy.CreditCostPerBooking
	if membership.CurrentCredits.LessThan(cost) {
		return Quote{}, failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonInsufficientCredits,
			fmt.Sprintf("booking needs %s credits, %s available", cost.String(), membership.CurrentCredits.String()),
		)
	}

	remaining := membership.CurrentCredits.Sub(cost)

	quote := Quote{
		TotalPrice:            decimal.Zero,
		DepositAmount:         decimal.Zero,
		DiscountApplied:       in.BasePrice,
		UsedMembershipCredits: true,
		CreditsUsed:           cost,
	}

	if remaining.IsNegative() {
		return Quote{}, failure.InvariantViolation(failure.ReasonNegativeBalance, "credit balance would become negative") // nolint:wrapcheck
	}

	if err := quote.check(); err != nil {
		return Quote{}, err
	}

	membership.CurrentCredits = remaining

	return quote, nil
}

func allocateGiftCertificate(in Input) (Quote, error) {
	cert := in.GiftCertificate
	if cert == nil {
		return Quote{}, failure.NotFound(fmt.Sprintf("gift certificate %s not found", *in.GiftCertificateCode)) // nolint:wrapcheck
	}

	if err := redeemable(cert, in.Now, in.LocationID); err != nil {
		return Quote{}, err
	}

	applied := decimal.Min(cert.RemainingBalance, in.BasePrice)
	remaining := cert.RemainingBalance.Sub(applied)
	owed := in.BasePrice.Sub(applied)
	code := cert.Code

	quote := Quote{
		TotalPrice:          owed,
		DepositAmount:       Deposit(owed, in.Policy.DepositPercentage),
		DiscountApplied:     applied,
		CreditsUsed:         decimal.Zero,
		GiftCertificateCode: &code,
	}

	if remaining.IsNegative() || remaining.GreaterThan(cert.OriginalAmount) {
		return Quote{}, failure.InvariantViolation( // nolint:wrapcheck
			failure.ReasonNegativeBalance,
			fmt.Sprintf("gift certificate %s balance would leave its bounds", cert.Code),
		)
	}

	if err := quote.check(); err != nil {
		return Quote{}, err
	}

	cert.RemainingBalance = remaining
	cert.Status = giftModel.StatusPartiallyUsed

	if remaining.IsZero() {
		cert.Status = giftModel.StatusFullyRedeemed
	}

	return quote, nil
}

func redeemable(cert *giftModel.GiftCertificate, now time.Time, locationID *string) error {
	if cert.ExpiredAt(now) {
		return failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonGiftCertificateExpired,
			fmt.Sprintf("gift certificate %s has expired", cert.Code),
		)
	}

	if !cert.Status.Redeemable() {
		return failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonGiftCertificateInactive,
			fmt.Sprintf("gift certificate %s is %s", cert.Code, cert.Status),
		)
	}

	if cert.LocationID != nil && (locationID == nil || *locationID != *cert.LocationID) {
		return failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonGiftCertificateLocation,
			fmt.Sprintf("gift certificate %s is not valid at this location", cert.Code),
		)
	}

	if !cert.RemainingBalance.IsPositive() {
		return failure.InsufficientBalance( // nolint:wrapcheck
			failure.ReasonGiftCertificateExhausted,
			fmt.Sprintf("gift certificate %s has no balance left", cert.Code),
		)
	}

	return nil
}

// check enforces 0 <= DepositAmount <= TotalPrice and non-negative amounts.
func (q Quote) check() error {
	if q.TotalPrice.IsNegative() || q.DiscountApplied.IsNegative() || q.CreditsUsed.IsNegative() {
		return failure.InvariantViolation(failure.ReasonNegativeAmount, "computed amounts must not be negative") // nolint:wrapcheck
	}

	if q.DepositAmount.IsNegative() || q.DepositAmount.GreaterThan(q.TotalPrice) {
		return failure.InvariantViolation( // nolint:wrapcheck
			failure.ReasonDepositExceedsTotal,
			fmt.Sprintf("deposit %s is outside [0, %s]",
				q.DepositAmount.StringFixed(CurrencyPlaces), q.TotalPrice.StringFixed(CurrencyPlaces)),
		)
	}

	return nil
}
