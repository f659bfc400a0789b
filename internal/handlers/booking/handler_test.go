package booking_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"spa/infras/otel/mocks"
	bookingMocks "spa/internal/domains/booking/mocks"
	"spa/internal/domains/booking/model/dto"
	"spa/internal/handlers/booking"
	gDto "spa/shared/dto"
	"spa/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Code   int             `json:"code"`
	Kind   string          `json:"kind"`
	Reason string          `json:"reason"`
}

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBookingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router, svc
}

func serve(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestCreateBooking(t *testing.T) {
	validBody := `{"client_id":"c-1","service_id":"svc-1","therapist_id":"t-1",` +
		`"start_time":"2025-11-15T10:00:00Z","end_time":"2025-11-15T11:00:00Z"}`

	tests := []struct {
		name       string
		body       string
		setupMock  func(svc *bookingMocks.MockBookingService)
		wantStatus int
		wantReason string
	}{
		{
			name: "created",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "t-1", *req.TherapistID)

						return dto.BookingResponse{ID: "b-1", Status: "pending"}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing client",
			body:       `{"service_id":"svc-1","start_time":"2025-11-15T10:00:00Z","end_time":"2025-11-15T11:00:00Z"}`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "time without offset",
			body:       `{"client_id":"c-1","service_id":"svc-1","start_time":"2025-11-15 10:00","end_time":"2025-11-15T11:00:00Z"}`,
			setupMock:  func(_ *bookingMocks.MockBookingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "therapist busy",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.ConflictWithReason(failure.ReasonTherapistNotAvailable, "therapist t-1 is not available"))
			},
			wantStatus: http.StatusConflict,
			wantReason: failure.ReasonTherapistNotAvailable,
		},
		{
			name: "no credits left",
			body: validBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(dto.BookingResponse{}, failure.InsufficientBalance(failure.ReasonInsufficientCredits, "no credits"))
			},
			wantStatus: http.StatusPaymentRequired,
			wantReason: failure.ReasonInsufficientCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec, env := serve(t, router, http.MethodPost, "/v1/bookings/", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantReason, env.Reason)
		})
	}
}

func TestGetBookings_FiltersFromQuery(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Len(t, filter.Filters, 2)

			return dto.GetBookingsResponse{TotalData: 0}, nil
		})

	rec, _ := serve(t, router, http.MethodGet, "/v1/bookings/?page=2&status=pending&therapist_id=t-1&ignored=x", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Cancel(gomock.Any(), "b-1", dto.CancelBookingRequest{Reason: "sick"}).
		Return(dto.CancelBookingResponse{Late: true}, nil)

	rec, env := serve(t, router, http.MethodPost, "/v1/bookings/b-1/cancel", `{"reason":"sick"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var outcome dto.CancelBookingResponse
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.True(t, outcome.Late)
}

func TestLifecycleRoutes(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Confirm(gomock.Any(), "b-1", dto.ConfirmBookingRequest{PaymentReference: "pi_1"}).Return(dto.BookingResponse{Status: "confirmed"}, nil)
	svc.EXPECT().Complete(gomock.Any(), "b-1").
		Return(dto.BookingResponse{}, failure.Validation(failure.ReasonNotStarted, "appointment has not started"))
	svc.EXPECT().MarkNoShow(gomock.Any(), "b-1").
		Return(dto.BookingResponse{}, errors.New("connection reset"))

	rec, _ := serve(t, router, http.MethodPost, "/v1/bookings/b-1/confirm", `{"payment_reference":"pi_1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, router, http.MethodPost, "/v1/bookings/b-1/complete", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, failure.ReasonNotStarted, env.Reason)

	rec, env = serve(t, router, http.MethodPost, "/v1/bookings/b-1/no-show", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(failure.KindInternal), env.Kind)
	assert.NotContains(t, env.Error, "connection reset")
}

func TestGetAvailability(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().
			Availability(gomock.Any(), dto.AvailabilityRequest{ResourceType: "room", ResourceID: "r-1", Date: "2025-11-15"}).
			Return(dto.AvailabilityResponse{Windows: []dto.WindowResponse{}}, nil)

		rec, _ := serve(t, router, http.MethodGet, "/v1/availability?resource_type=room&resource_id=r-1&date=2025-11-15", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown resource type", func(t *testing.T) {
		router, _ := newRouter(t)

		rec, env := serve(t, router, http.MethodGet, "/v1/availability?resource_type=location&resource_id=l-1&date=2025-11-15", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(failure.KindValidation), env.Kind)
	})
}
