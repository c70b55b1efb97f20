package model

import "roomstay/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldName       = "name"
	FieldType       = "type"
	FieldBeds       = "beds"
	FieldAccessible = "accessible"
	FieldActive     = "active"
)

type Room struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Beds       int    `db:"beds"`
	Accessible bool   `db:"accessible"`
	Active     bool   `db:"active"`
	model.Metadata
}
