package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roomstay/config"
	messageMocks "roomstay/infras/message/mocks"
	"roomstay/infras/otel/mocks"
	bookingMocks "roomstay/internal/domains/booking/mocks"
	"roomstay/internal/domains/booking/model"
	"roomstay/internal/domains/booking/model/dto"
	"roomstay/internal/domains/booking/service"
	roomMocks "roomstay/internal/domains/room/mocks"
	eventMocks "roomstay/internal/events/mocks"
	cacheMocks "roomstay/shared/cache/mocks"
	gDto "roomstay/shared/dto"
	"roomstay/shared/failure"
)

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	roomRepo  *roomMocks.MockRoom
	cache     *cacheMocks.MockRedisCache
	notifier  *messageMocks.MockClient
	publisher *eventMocks.MockPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		notifier:  messageMocks.NewMockClient(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.roomRepo, cfg, f.cache, mocks.NewOtel(), f.notifier, f.publisher)

	return f
}

// expectAfterCommit wires the best-effort side effects of a committed
// write and returns a WaitGroup that unblocks once cache invalidation,
// the final step, has run.
func (f *fixture) expectAfterCommit() *sync.WaitGroup {
	var wg sync.WaitGroup
	wg.Add(2)

	f.notifier.EXPECT().
		SendNotification(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.publisher.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.publisher.EXPECT().
		BookingUpdated(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			wg.Done()
			return nil
		}).
		Times(2)

	return &wg
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:      1,
		Firstname:   "cara",
		Lastname:    "bee",
		DepositPaid: true,
		Email:       "cara@test.com",
		Phone:       "01234123123",
		BookingDates: dto.BookingDates{
			Checkin:  "2021-04-01",
			Checkout: "2021-04-03",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(int64(1), nil)

		wg := f.expectAfterCommit()

		res, err := f.svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.BookingID)
		assert.Equal(t, int64(1), res.Booking.RoomID)
		assert.Equal(t, "cara", res.Booking.Firstname)
		assert.Equal(t, "2021-04-01", res.Booking.BookingDates.Checkin)
		assert.Equal(t, "2021-04-03", res.Booking.BookingDates.Checkout)

		wg.Wait()
	})

	t.Run("inverted dates rejected", func(t *testing.T) {
		f := newFixture(t)

		req := validCreateRequest()
		req.BookingDates.Checkin = "2021-04-03"
		req.BookingDates.Checkout = "2021-04-01"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room rejected", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		req := validCreateRequest()
		req.RoomID = 99

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("overlapping dates rejected", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("database error"))

		_, err := f.svc.Create(context.Background(), validCreateRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(int64(5), nil)

		var wg sync.WaitGroup
		wg.Add(2)

		f.notifier.EXPECT().
			SendNotification(gomock.Any(), gomock.Any()).
			Return(errors.New("connection refused"))
		f.publisher.EXPECT().
			BookingCreated(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) error {
				wg.Done()
				return nil
			}).
			Times(2)

		res, err := f.svc.Create(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(5), res.BookingID)

		wg.Wait()
	})
}

func TestBookingService_CreateConcurrent(t *testing.T) {
	const workers = 20

	f := newFixture(t)

	f.roomRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil).
		Times(workers)

	// Stateful store: the room reads as free until the first insert
	// commits. The per-room lock in the service must make the
	// check-then-insert sequence atomic, so exactly one request wins.
	var (
		mu     sync.Mutex
		booked bool
		nextID int64
	)

	f.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, gDto.FilterGroup) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			return booked, nil
		}).
		Times(workers)
	f.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, model.Booking) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			booked = true
			nextID++
			return nextID, nil
		}).
		Times(1)

	var wg sync.WaitGroup
	wg.Add(2)

	f.notifier.EXPECT().
		SendNotification(gomock.Any(), gomock.Any()).
		Return(nil)
	f.publisher.EXPECT().
		BookingCreated(gomock.Any(), gomock.Any()).
		Return(nil)
	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)
	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			wg.Done()
			return nil
		}).
		Times(2)

	var (
		successes int64
		rejected  int64
		countMu   sync.Mutex
	)

	var requests sync.WaitGroup
	requests.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer requests.Done()

			_, err := f.svc.Create(context.Background(), validCreateRequest())

			countMu.Lock()
			defer countMu.Unlock()

			if err == nil {
				successes++
			} else if failure.GetCode(err) == http.StatusBadRequest {
				rejected++
			}
		}()
	}

	requests.Wait()

	assert.Equal(t, int64(1), successes)
	assert.Equal(t, int64(workers-1), rejected)

	wg.Wait()
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{
		ID:          7,
		RoomID:      1,
		Firstname:   "cara",
		Lastname:    "bee",
		DepositPaid: true,
		Email:       "cara@test.com",
		Phone:       "01234123123",
		Checkin:     time.Date(2021, 4, 1, 0, 0, 0, 0, time.UTC),
		Checkout:    time.Date(2021, 4, 3, 0, 0, 0, 0, time.UTC),
	}

	t.Run("successful get", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		f.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.BookingID)
		assert.Equal(t, "2021-04-01", res.Booking.BookingDates.Checkin)
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), 404)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	updateRequest := dto.UpdateBookingRequest(validCreateRequest())

	t.Run("successful update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		wg := f.expectAfterCommit()

		res, err := f.svc.Update(context.Background(), updateRequest, 7)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.BookingID)

		wg.Wait()
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := f.svc.Update(context.Background(), updateRequest, 404)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("overlap with another booking rejected", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := f.svc.Update(context.Background(), updateRequest, 7)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		var wg sync.WaitGroup
		wg.Add(2)

		f.publisher.EXPECT().
			BookingDeleted(gomock.Any(), int64(7)).
			Return(nil)
		f.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string) error {
				wg.Done()
				return nil
			}).
			Times(2)

		err := f.svc.Delete(context.Background(), 7)

		assert.NoError(t, err)

		wg.Wait()
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), 404)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	bookings := []model.Booking{
		{ID: 1, RoomID: 1, Firstname: "cara", Lastname: "bee"},
		{ID: 2, RoomID: 2, Firstname: "mark", Lastname: "winteringham"},
	}

	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, int64(1), res.Bookings[0].BookingID)
}
