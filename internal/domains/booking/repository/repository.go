package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"roomstay/infras/otel"
	"roomstay/infras/postgres"
	"roomstay/internal/domains/booking/model"
	gDto "roomstay/shared/dto"
	gRepo "roomstay/shared/repository"
	"slices"
)

type Booking interface {
	Create(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	repo := gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel)

	// The id column is assigned by the database sequence, never by the caller.
	repo.InsertColumns = slices.DeleteFunc(repo.InsertColumns, func(col string) bool {
		return col == model.FieldID
	})

	return &repositoryImpl{
		Repository: repo,
		db:         db,
		otel:       otel,
	}
}

// Create inserts the booking and returns the identifier assigned by the
// database sequence.
func (repo *repositoryImpl) Create(ctx context.Context, booking model.Booking) (int64, error) {
	return repo.InsertReturningID(ctx, booking)
}
