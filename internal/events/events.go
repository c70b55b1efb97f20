package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"roomstay/config"
	"roomstay/infras/kafka"
	"roomstay/infras/otel"
	"roomstay/internal/domains/booking/model"
	"roomstay/shared/constant"
	"roomstay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeBookingDeleted = "booking.deleted"
)

// BookingEvent is the envelope published to the booking topic for every
// lifecycle change.
type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  int64     `json:"booking_id"`
	RoomID     int64     `json:"room_id,omitempty"`
	Checkin    string    `json:"checkin,omitempty"`
	Checkout   string    `json:"checkout,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking model.Booking) error
	BookingUpdated(ctx context.Context, booking model.Booking) error
	BookingDeleted(ctx context.Context, bookingID int64) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, ot otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, BookingEvent{
		Type:       TypeBookingCreated,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Checkin:    booking.Checkin.Format(constant.BookingDateFormat),
		Checkout:   booking.Checkout.Format(constant.BookingDateFormat),
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) BookingUpdated(ctx context.Context, booking model.Booking) error {
	return p.publish(ctx, BookingEvent{
		Type:       TypeBookingUpdated,
		BookingID:  booking.ID,
		RoomID:     booking.RoomID,
		Checkin:    booking.Checkin.Format(constant.BookingDateFormat),
		Checkout:   booking.Checkout.Format(constant.BookingDateFormat),
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) BookingDeleted(ctx context.Context, bookingID int64) error {
	return p.publish(ctx, BookingEvent{
		Type:       TypeBookingDeleted,
		BookingID:  bookingID,
		OccurredAt: timezone.Now(),
	})
}

func (p *publisherImpl) publish(ctx context.Context, event BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Type)
	defer scope.End()
	defer scope.TraceIfError(err)

	msg := kafka.Message{
		Key:   strconv.FormatInt(event.BookingID, 10),
		Value: event,
	}

	err = p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, msg)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Int64("bookingID", event.BookingID).Msg("failed to publish booking event")

		return fmt.Errorf("failed to publish booking event: %w", err)
	}

	return nil
}
