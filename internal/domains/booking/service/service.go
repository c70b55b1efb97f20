package service

import (
	"context"
	"fmt"
	"roomstay/config"
	"roomstay/infras/message"
	"roomstay/infras/otel"
	"roomstay/internal/domains/booking/model"
	"roomstay/internal/domains/booking/model/dto"
	"roomstay/internal/domains/booking/repository"
	roomModel "roomstay/internal/domains/room/model"
	roomRepo "roomstay/internal/domains/room/repository"
	"roomstay/internal/events"
	"roomstay/shared"
	"roomstay/shared/cache"
	"roomstay/shared/constant"
	gDto "roomstay/shared/dto"
	"roomstay/shared/failure"
	"roomstay/shared/lock"
	"roomstay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreatedBookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.CreatedBookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dto.CreatedBookingResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	locks     *lock.Keyed
	notifier  message.Client
	publisher events.Publisher
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	notifier message.Client,
	publisher events.Publisher,
) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		locks:     lock.NewKeyed(),
		notifier:  notifier,
		publisher: publisher,
	}
}

func roomLockKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreatedBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	id, err := s.reserve(ctx, booking, 0)
	if err != nil {
		return res, err
	}

	booking.ID = id
	res.FromModel(booking)

	// Notification and event publishing run strictly after the room
	// lock is released and never affect the committed booking.
	go s.afterCommit(ctx, booking, events.TypeBookingCreated)

	return res, nil
}

// reserve serializes the availability check and the write per room so
// two overlapping requests for the same room cannot both commit. When
// excludeID is non-zero the write is an update and the booking's own
// record is left out of the overlap scan.
func (s *serviceImpl) reserve(ctx context.Context, booking model.Booking, excludeID int64) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	key := roomLockKey(booking.RoomID)

	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	conflict, err := s.repo.Exist(ctx, dto.OverlapFilter(booking.RoomID, booking.Checkin, booking.Checkout, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return 0, fmt.Errorf("failed to check room availability: %w", err)
	}

	if conflict {
		return 0, failure.BadRequestFromString("room is unavailable for the requested dates") // nolint:wrapcheck
	}

	if excludeID != 0 {
		updatedFields := map[string]any{
			model.FieldRoomID:        booking.RoomID,
			model.FieldFirstname:     booking.Firstname,
			model.FieldLastname:      booking.Lastname,
			model.FieldDepositPaid:   booking.DepositPaid,
			model.FieldEmail:         booking.Email,
			model.FieldPhone:         booking.Phone,
			model.FieldCheckin:       booking.Checkin,
			model.FieldCheckout:      booking.Checkout,
			constant.FieldModifiedAt: timezone.Now(),
		}

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(excludeID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to update booking")

			return 0, fmt.Errorf("failed to update booking: %w", err)
		}

		return excludeID, nil
	}

	id, err = s.repo.Create(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

// afterCommit performs the best-effort side effects of a committed
// write: guest notification, event publishing, and cache invalidation.
// Failures here are logged and absorbed.
func (s *serviceImpl) afterCommit(ctx context.Context, booking model.Booking, eventType string) {
	c := context.WithoutCancel(ctx)

	notification := message.Notification{
		Name:        booking.Firstname + " " + booking.Lastname,
		Email:       booking.Email,
		Phone:       booking.Phone,
		Subject:     "Booking confirmation",
		Description: fmt.Sprintf(
			"Booking %d for room %d from %s to %s",
			booking.ID,
			booking.RoomID,
			booking.Checkin.Format(constant.BookingDateFormat),
			booking.Checkout.Format(constant.BookingDateFormat),
		),
	}

	if err := s.notifier.SendNotification(c, notification); err != nil {
		log.Error().Err(err).Int64("bookingID", booking.ID).Msg("failed to send booking notification")
	}

	var err error

	switch eventType {
	case events.TypeBookingCreated:
		err = s.publisher.BookingCreated(c, booking)
	case events.TypeBookingUpdated:
		err = s.publisher.BookingUpdated(c, booking)
	}

	if err != nil {
		log.Error().Err(err).Int64("bookingID", booking.ID).Msg("failed to publish booking event")
	}

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, booking.ID)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(c, s.cache, cacheCountBooking)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CreatedBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (res dto.CreatedBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return res, fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	if _, err = s.reserve(ctx, booking, id); err != nil {
		return res, err
	}

	booking.ID = id
	res.FromModel(booking)

	go s.afterCommit(ctx, booking, events.TypeBookingUpdated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.BookingDeleted(c, id); err != nil {
			log.Error().Err(err).Int64("bookingID", id).Msg("failed to publish booking event")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return nil
}
