package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingDateValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"booking_id",
			"property_id",
			"date",
			"booking_type",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"booking_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"property_id": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"date": bson.M{
				"bsonType": "date",
			},

			"booking_type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"RESERVATION",
					"BLOCK",
				},
			},
		},
	},
}
