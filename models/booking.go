package models

import "time"

// Booking statuses. A booking starts pending and is only moved by an
// admin status update.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	BookingID         string    `json:"bookingid" bson:"bookingid"`
	PackageID         string    `json:"packageId" bson:"packageId"`
	CustomerName      string    `json:"customerName" bson:"customerName"`
	Email             string    `json:"email" bson:"email"`
	Phone             string    `json:"phone" bson:"phone"`
	TravelDate        time.Time `json:"travelDate" bson:"travelDate"`
	NumberOfTravelers int       `json:"numberOfTravelers" bson:"numberOfTravelers"`
	TotalPrice        float64   `json:"totalPrice" bson:"totalPrice"`
	Status            string    `json:"status" bson:"status"`
	SpecialRequests   string    `json:"specialRequests,omitempty" bson:"specialRequests,omitempty"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}
