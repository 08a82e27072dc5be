package mongo

import (
	"context"
	"fmt"
	"strings"

	"staybook/internal/migrations/mongo/validators"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	BookingsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	// The unique partial index on (property_id, date) for RESERVATION rows is
	// the backstop against two concurrent reservation creates both passing the
	// conflict check: at most one can commit its date rows.
	BookingDatesIndexes = []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "property_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "booking_type", Value: 1},
		}},
		{
			Keys: bson.D{
				{Key: "property_id", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"booking_type": "RESERVATION"}),
		},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	}
)

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	collections := map[string]struct {
		Indexes   []mongo.IndexModel
		Validator bson.M
	}{
		"Bookings": {
			Indexes:   BookingsIndexes,
			Validator: validators.BookingValidator,
		},
		"BookingDates": {
			Indexes:   BookingDatesIndexes,
			Validator: validators.BookingDateValidator,
		},
	}

	for name, spec := range collections {
		if err := ensureCollection(ctx, db, name, spec.Validator); err != nil {
			return fmt.Errorf("collection %s: %w", name, err)
		}
		if len(spec.Indexes) > 0 {
			if _, err := db.Collection(name).Indexes().CreateMany(ctx, spec.Indexes); err != nil {
				return fmt.Errorf("indexes for %s: %w", name, err)
			}
		}
	}

	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	opts := options.CreateCollection().SetValidator(validator)
	err := db.CreateCollection(ctx, name, opts)
	if err == nil {
		return nil
	}

	// Collection already exists: refresh its validator instead.
	if strings.Contains(err.Error(), "already exists") {
		cmd := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		return db.RunCommand(ctx, cmd).Err()
	}

	return err
}
