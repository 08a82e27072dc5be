package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"property_id",
			"start_date",
			"end_date",
			"status",
			"booking_type",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"property_id": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"start_date": bson.M{
				"bsonType": "date",
			},

			"end_date": bson.M{
				"bsonType": "date",
			},

			"guest_id": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"ACTIVE",
					"CANCEL",
				},
			},

			"booking_type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"RESERVATION",
					"BLOCK",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
