package repository

import (
	"context"
	"fmt"

	"staybook/pkg/config"
	"staybook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DateCollectionName = "BookingDates"
)

// BookingDateRepository is the day-level occupancy index. The existence
// queries are pure reads; rows are only ever written or removed by the
// booking service inside its transaction, one per calendar day of a booking.
type BookingDateRepository interface {
	InsertMany(ctx context.Context, dates []*model.BookingDate) error
	DeleteByBookingID(ctx context.Context, bookingID string) error
	ExistsReservation(ctx context.Context, propertyID int64, start, end model.Date) (bool, error)
	ExistsAny(ctx context.Context, propertyID int64, start, end model.Date) (bool, error)
}

type mongoBookingDateRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingDateRepository(cfg *config.Config) BookingDateRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingDateRepository{
		cfg:        cfg,
		collection: db.Collection(DateCollectionName),
	}
}

func (r *mongoBookingDateRepository) InsertMany(ctx context.Context, dates []*model.BookingDate) error {
	if len(dates) == 0 {
		return nil
	}

	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, len(dates))
	for i, date := range dates {
		docs[i] = date
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert booking dates: %w", err)
	}
	return nil
}

func (r *mongoBookingDateRepository) DeleteByBookingID(ctx context.Context, bookingID string) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{"booking_id": bookingID}); err != nil {
		return fmt.Errorf("failed to delete booking dates: %w", err)
	}
	return nil
}

// ExistsReservation reports whether any reservation-typed day falls inside
// [start, end] for the property. Both bounds are inclusive.
func (r *mongoBookingDateRepository) ExistsReservation(ctx context.Context, propertyID int64, start, end model.Date) (bool, error) {
	filter := r.rangeFilter(propertyID, start, end)
	filter["booking_type"] = model.TypeReservation
	return r.exists(ctx, filter)
}

// ExistsAny reports whether any day of either type falls inside [start, end]
// for the property.
func (r *mongoBookingDateRepository) ExistsAny(ctx context.Context, propertyID int64, start, end model.Date) (bool, error) {
	return r.exists(ctx, r.rangeFilter(propertyID, start, end))
}

func (r *mongoBookingDateRepository) rangeFilter(propertyID int64, start, end model.Date) bson.M {
	return bson.M{
		"property_id": propertyID,
		"date": bson.M{
			"$gte": start.Time,
			"$lte": end.Time,
		},
	}
}

func (r *mongoBookingDateRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check booking dates: %w", err)
	}
	return count > 0, nil
}
