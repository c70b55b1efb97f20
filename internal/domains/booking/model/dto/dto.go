package dto

import (
	"errors"
	"roomstay/internal/domains/booking/model"
	"roomstay/shared"
	"roomstay/shared/constant"
	gDto "roomstay/shared/dto"
	gModel "roomstay/shared/model"
	"roomstay/shared/timezone"
	"time"
)

var (
	errInvalidCheckin  = errors.New("checkin must be a valid YYYY-MM-DD date")
	errInvalidCheckout = errors.New("checkout must be a valid YYYY-MM-DD date")
	errInvertedDates   = errors.New("checkin must be strictly before checkout")
)

type BookingDates struct {
	Checkin  string `json:"checkin"  validate:"required"`
	Checkout string `json:"checkout" validate:"required"`
}

type CreateBookingRequest struct {
	RoomID       int64        `json:"roomid"       validate:"required,gte=1"`
	Firstname    string       `json:"firstname"    validate:"required,min=3,max=18"`
	Lastname     string       `json:"lastname"     validate:"required,min=3,max=30"`
	DepositPaid  bool         `json:"depositpaid"`
	Email        string       `json:"email"        validate:"required,email"`
	Phone        string       `json:"phone"        validate:"required,min=11,max=21"`
	BookingDates BookingDates `json:"bookingdates" validate:"required"`
}

// ToModel parses the stay dates and enforces their ordering. Length and
// presence rules are covered by the validate tags.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkin, err := time.Parse(constant.BookingDateFormat, c.BookingDates.Checkin)
	if err != nil {
		return model.Booking{}, errInvalidCheckin
	}

	checkout, err := time.Parse(constant.BookingDateFormat, c.BookingDates.Checkout)
	if err != nil {
		return model.Booking{}, errInvalidCheckout
	}

	if !checkin.Before(checkout) {
		return model.Booking{}, errInvertedDates
	}

	return model.Booking{
		RoomID:      c.RoomID,
		Firstname:   c.Firstname,
		Lastname:    c.Lastname,
		DepositPaid: c.DepositPaid,
		Email:       c.Email,
		Phone:       c.Phone,
		Checkin:     checkin,
		Checkout:    checkout,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

// UpdateBookingRequest carries the full booking payload. Updates re-run
// the same validation and availability pipeline as creates.
type UpdateBookingRequest struct {
	RoomID       int64        `json:"roomid"       validate:"required,gte=1"`
	Firstname    string       `json:"firstname"    validate:"required,min=3,max=18"`
	Lastname     string       `json:"lastname"     validate:"required,min=3,max=30"`
	DepositPaid  bool         `json:"depositpaid"`
	Email        string       `json:"email"        validate:"required,email"`
	Phone        string       `json:"phone"        validate:"required,min=11,max=21"`
	BookingDates BookingDates `json:"bookingdates" validate:"required"`
}

func (u *UpdateBookingRequest) ToModel() (model.Booking, error) {
	create := CreateBookingRequest(*u)

	return create.ToModel()
}

type BookingResponse struct {
	RoomID       int64        `json:"roomid"`
	Firstname    string       `json:"firstname"`
	Lastname     string       `json:"lastname"`
	DepositPaid  bool         `json:"depositpaid"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	BookingDates BookingDates `json:"bookingdates"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.RoomID = model.RoomID
	r.Firstname = model.Firstname
	r.Lastname = model.Lastname
	r.DepositPaid = model.DepositPaid
	r.Email = model.Email
	r.Phone = model.Phone
	r.BookingDates = BookingDates{
		Checkin:  model.Checkin.Format(constant.BookingDateFormat),
		Checkout: model.Checkout.Format(constant.BookingDateFormat),
	}
}

// CreatedBookingResponse wraps the assigned identifier with the booking
// payload, returned on create and on read.
type CreatedBookingResponse struct {
	BookingID int64           `json:"bookingid"`
	Booking   BookingResponse `json:"booking"`
}

func (r *CreatedBookingResponse) FromModel(model model.Booking) {
	r.BookingID = model.ID
	r.Booking.FromModel(model)
}

type GetBookingsResponse struct {
	Bookings  []CreatedBookingResponse `json:"bookings"`
	TotalPage int                      `json:"total_page"`
	TotalData int                      `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]CreatedBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// OverlapFilter builds the availability predicate for a room and date
// range: an existing booking conflicts iff existing.checkin < checkout
// AND checkin < existing.checkout. Touching boundaries do not conflict.
// excludeID, when non-zero, leaves the booking's own record out of the
// scan on update.
func OverlapFilter(roomID int64, checkin, checkout time.Time, excludeID int64) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "checkin_before",
			Field:    model.FieldCheckin,
			Value:    checkout,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "checkout_after",
			Field:    model.FieldCheckout,
			Value:    checkin,
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		},
	}

	if excludeID != 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	}
}
