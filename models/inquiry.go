package models

import "time"

const (
	InquiryNew       = "new"
	InquiryRead      = "read"
	InquiryResponded = "responded"
)

// Inquiry is a contact-form submission, not tied to a booking.
type Inquiry struct {
	InquiryID string    `json:"inquiryid" bson:"inquiryid"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
