package model

import (
	"roomstay/shared/model"
	"time"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldFirstname   = "firstname"
	FieldLastname    = "lastname"
	FieldDepositPaid = "deposit_paid"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCheckin     = "checkin"
	FieldCheckout    = "checkout"
)

type Booking struct {
	ID          int64     `db:"id"`
	RoomID      int64     `db:"room_id"`
	Firstname   string    `db:"firstname"`
	Lastname    string    `db:"lastname"`
	DepositPaid bool      `db:"deposit_paid"`
	Email       string    `db:"email"`
	Phone       string    `db:"phone"`
	Checkin     time.Time `db:"checkin"`
	Checkout    time.Time `db:"checkout"`
	model.Metadata
}
