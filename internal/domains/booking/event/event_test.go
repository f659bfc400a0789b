package event_test

import (
	"context"
	"errors"
	kafkaInfra "spa/infras/kafka"
	kafkaMocks "spa/infras/kafka/mocks"
	otelMocks "spa/infras/otel/mocks"
	"spa/internal/domains/booking/event"
	"spa/internal/domains/booking/model"
	"spa/internal/scheduling/cancellation"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func booking() model.Booking {
	therapist := "t-1"

	return model.Booking{
		ID:            "b-1",
		ClientID:      "c-1",
		ServiceID:     "svc-1",
		TherapistID:   &therapist,
		Status:        model.StatusPending,
		StartTime:     time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, 11, 15, 11, 0, 0, 0, time.UTC),
		TotalPrice:    decimal.NewFromInt(120),
		DepositAmount: decimal.NewFromInt(60),
	}
}

func TestPublisher_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	client.EXPECT().
		SendMessages(gomock.Any(), event.TopicBookingCreated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "b-1", messages[0].Key)

			evt, ok := messages[0].Value.(event.CreatedEvent)
			require.True(t, ok)
			assert.Equal(t, "c-1", evt.ClientID)
			assert.True(t, evt.DepositAmount.Equal(decimal.NewFromInt(60)))

			return nil
		})

	publisher := event.New(client, otelMocks.NewOtel())

	require.NoError(t, publisher.Created(context.Background(), booking()))
}

func TestPublisher_CancelledCarriesRefund(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	outcome := cancellation.Outcome{
		BookingID: "b-1",
		Late:      true,
		Fee:       decimal.NewFromInt(60),
		Refund:    decimal.Zero,
	}

	client.EXPECT().
		SendMessages(gomock.Any(), event.TopicBookingCancelled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
			evt, ok := messages[0].Value.(event.CancelledEvent)
			require.True(t, ok)
			assert.True(t, evt.Cancellation.Late)
			assert.True(t, evt.Cancellation.Fee.Equal(decimal.NewFromInt(60)))

			return nil
		})

	publisher := event.New(client, otelMocks.NewOtel())

	require.NoError(t, publisher.Cancelled(context.Background(), booking(), outcome))
}

func TestPublisher_RescheduledAndStatusChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	b := booking()
	b.RescheduleReason = "client asked"

	client.EXPECT().
		SendMessages(gomock.Any(), event.TopicBookingRescheduled, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
			evt := messages[0].Value.(event.RescheduledEvent)
			assert.Equal(t, "client asked", evt.Reason)
			assert.Equal(t, 9, evt.PreviousStartTime.Hour())

			return nil
		})

	client.EXPECT().
		SendMessages(gomock.Any(), event.TopicBookingStatusChanged, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaInfra.Message) error {
			evt := messages[0].Value.(event.StatusChangedEvent)
			assert.Equal(t, model.StatusPending, evt.From)

			return nil
		})

	publisher := event.New(client, otelMocks.NewOtel())
	previous := time.Date(2025, 11, 15, 9, 0, 0, 0, time.UTC)

	require.NoError(t, publisher.Rescheduled(context.Background(), b, previous, previous.Add(time.Hour)))
	require.NoError(t, publisher.StatusChanged(context.Background(), b, model.StatusPending))
}

func TestPublisher_WrapsClientError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	sendErr := errors.New("broker down")
	client.EXPECT().SendMessages(gomock.Any(), event.TopicBookingCreated, gomock.Any()).Return(sendErr)

	publisher := event.New(client, otelMocks.NewOtel())

	err := publisher.Created(context.Background(), booking())

	require.Error(t, err)
	assert.ErrorIs(t, err, sendErr)
}
