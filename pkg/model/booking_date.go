package model

// BookingDate is one day-level occupancy row in the date index. Each row
// carries a denormalized property id and booking type so overlap queries never
// need to join back to the owning booking. Rows exist only while the owning
// booking is ACTIVE.
type BookingDate struct {
	ID         string      `json:"id,omitempty" bson:"_id,omitempty"`
	BookingID  string      `json:"booking_id" bson:"booking_id"`
	PropertyID int64       `json:"property_id" bson:"property_id"`
	Date       Date        `json:"date" bson:"date"`
	Type       BookingType `json:"booking_type" bson:"booking_type"`
}
