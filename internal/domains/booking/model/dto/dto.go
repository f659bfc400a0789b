package dto

import (
	"spa/internal/domains/booking/model"
	"spa/internal/scheduling/availability"
	"spa/internal/scheduling/cancellation"
	"spa/internal/scheduling/validation"
	"spa/shared"
	"spa/shared/constant"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"spa/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ClientID             string  `json:"client_id"              validate:"required"`
	ServiceID            string  `json:"service_id"             validate:"required"`
	TherapistID          *string `json:"therapist_id"           validate:"omitempty"`
	RoomID               *string `json:"room_id"                validate:"omitempty"`
	LocationID           *string `json:"location_id"            validate:"omitempty"`
	StartTime            string  `json:"start_time"             validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime              string  `json:"end_time"               validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Notes                string  `json:"notes"`
	UseMembershipCredits bool    `json:"use_membership_credits"`
	GiftCertificateCode  *string `json:"gift_certificate_code"  validate:"omitempty,max=64"`
}

// ToRequest converts the body into an engine request. Times are RFC 3339 and end up in UTC.
func (c *CreateBookingRequest) ToRequest() (validation.Request, error) {
	start, end, err := parseInterval(c.StartTime, c.EndTime)
	if err != nil {
		return validation.Request{}, err
	}

	return validation.Request{
		ClientID:             c.ClientID,
		ServiceID:            c.ServiceID,
		Resources:            model.Resources{TherapistID: c.TherapistID, RoomID: c.RoomID},
		LocationID:           c.LocationID,
		Start:                start,
		End:                  end,
		Notes:                c.Notes,
		UseMembershipCredits: c.UseMembershipCredits,
		GiftCertificateCode:  c.GiftCertificateCode,
	}, nil
}

type RescheduleBookingRequest struct {
	StartTime string `json:"start_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"end_time"   validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Reason    string `json:"reason"     validate:"max=500"`
}

func (r *RescheduleBookingRequest) ToInterval() (timezone.Interval, error) {
	start, end, err := parseInterval(r.StartTime, r.EndTime)
	if err != nil {
		return timezone.Interval{}, err
	}

	return timezone.NewInterval(start, end), nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type ConfirmBookingRequest struct {
	PaymentReference string `json:"payment_reference" validate:"required,max=255"`
}

type AvailabilityRequest struct {
	ResourceType string  `json:"resource_type" validate:"required,oneof=therapist room"`
	ResourceID   string  `json:"resource_id"   validate:"required"`
	Date         string  `json:"date"          validate:"required,datetime=2006-01-02"`
	LocationID   *string `json:"location_id"   validate:"omitempty"`
}

func (a *AvailabilityRequest) Day() (time.Time, error) {
	day, err := time.Parse(constant.DateOnlyFormat, a.Date)
	if err != nil {
		return time.Time{}, failure.Validation(failure.ReasonIntervalInvalid, "date must be YYYY-MM-DD") // nolint:wrapcheck
	}

	return timezone.StartOfDayUTC(day), nil
}

// Resources returns the single resource the availability query is about.
func (a *AvailabilityRequest) Resources() model.Resources {
	id := a.ResourceID

	if availability.ResourceType(a.ResourceType) == availability.ResourceRoom {
		return model.Resources{RoomID: &id}
	}

	return model.Resources{TherapistID: &id}
}

type BookingResponse struct {
	ID                    string          `json:"id"`
	ClientID              string          `json:"client_id"`
	ServiceID             string          `json:"service_id"`
	TherapistID           *string         `json:"therapist_id"`
	RoomID                *string         `json:"room_id"`
	LocationID            *string         `json:"location_id"`
	Status                string          `json:"status"`
	StartTime             string          `json:"start_time"`
	EndTime               string          `json:"end_time"`
	TotalPrice            decimal.Decimal `json:"total_price"`
	DepositAmount         decimal.Decimal `json:"deposit_amount"`
	DiscountApplied       decimal.Decimal `json:"discount_applied"`
	UsedMembershipCredits bool            `json:"used_membership_credits"`
	CreditsUsed           decimal.Decimal `json:"credits_used"`
	GiftCertificateCode   *string         `json:"gift_certificate_code"`
	Notes                 string          `json:"notes"`
	CancelledAt           *string         `json:"cancelled_at"`
	CancellationReason    string          `json:"cancellation_reason,omitempty"`
	RescheduleReason      string          `json:"reschedule_reason,omitempty"`
	PaymentReference      string          `json:"payment_reference,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.ServiceID = model.ServiceID
	r.TherapistID = model.TherapistID
	r.RoomID = model.RoomID
	r.LocationID = model.LocationID
	r.Status = string(model.Status)
	r.StartTime = model.StartTime.UTC().Format(constant.DateFormat)
	r.EndTime = model.EndTime.UTC().Format(constant.DateFormat)
	r.TotalPrice = model.TotalPrice
	r.DepositAmount = model.DepositAmount
	r.DiscountApplied = model.DiscountApplied
	r.UsedMembershipCredits = model.UsedMembershipCredits
	r.CreditsUsed = model.CreditsUsed
	r.GiftCertificateCode = model.GiftCertificateCode
	r.Notes = model.Notes
	r.CancellationReason = model.CancellationReason
	r.RescheduleReason = model.RescheduleReason
	r.PaymentReference = model.PaymentReference

	if model.CancelledAt != nil {
		cancelledAt := model.CancelledAt.UTC().Format(constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type CancelBookingResponse struct {
	Booking         BookingResponse `json:"booking"`
	HoursUntilStart float64         `json:"hours_until_start"`
	Late            bool            `json:"late"`
	Fee             decimal.Decimal `json:"fee"`
	Refund          decimal.Decimal `json:"refund"`
}

func (r *CancelBookingResponse) FromOutcome(booking model.Booking, outcome cancellation.Outcome) {
	r.Booking.FromModel(booking)
	r.HoursUntilStart = outcome.HoursUntilStart
	r.Late = outcome.Late
	r.Fee = outcome.Fee
	r.Refund = outcome.Refund
}

type WindowResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	ResourceType string           `json:"resource_type"`
	ResourceID   string           `json:"resource_id"`
	Date         string           `json:"date"`
	Windows      []WindowResponse `json:"windows"`
}

func (r *AvailabilityResponse) FromWindows(req AvailabilityRequest, windows []timezone.Interval) {
	r.ResourceType = req.ResourceType
	r.ResourceID = req.ResourceID
	r.Date = req.Date

	r.Windows = make([]WindowResponse, len(windows))
	for i, window := range windows {
		r.Windows[i] = WindowResponse{
			StartTime: window.Start.UTC().Format(constant.DateFormat),
			EndTime:   window.End.UTC().Format(constant.DateFormat),
		}
	}
}

func parseInterval(startValue, endValue string) (time.Time, time.Time, error) {
	start, err := time.Parse(constant.DateFormat, startValue)
	if err != nil {
		return time.Time{}, time.Time{}, failure.Validation(failure.ReasonIntervalMissing, "start_time must be RFC 3339") // nolint:wrapcheck
	}

	end, err := time.Parse(constant.DateFormat, endValue)
	if err != nil {
		return time.Time{}, time.Time{}, failure.Validation(failure.ReasonIntervalMissing, "end_time must be RFC 3339") // nolint:wrapcheck
	}

	return timezone.ToUTC(start), timezone.ToUTC(end), nil
}
