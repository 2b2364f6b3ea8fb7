package models

import "time"

// DashboardStats is the payload of GET /api/admin/stats.
type DashboardStats struct {
	Bookings        CountStat       `json:"bookings"`
	Revenue         RevenueStat     `json:"revenue"`
	Inquiries       CountStat       `json:"inquiries"`
	Packages        CountStat       `json:"packages"`
	Subscribers     CountStat       `json:"subscribers"`
	RecentBookings  []RecentBooking `json:"recentBookings"`
	RecentInquiries []RecentInquiry `json:"recentInquiries"`
}

type CountStat struct {
	Total int64 `json:"total"`
}

type RevenueStat struct {
	Total float64 `json:"total"`
}

// RecentBooking is the trimmed projection shown on the dashboard.
type RecentBooking struct {
	BookingID    string    `json:"bookingid" bson:"bookingid"`
	CustomerName string    `json:"customerName" bson:"customerName"`
	Email        string    `json:"email" bson:"email"`
	Status       string    `json:"status" bson:"status"`
	TotalPrice   float64   `json:"totalPrice" bson:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type RecentInquiry struct {
	InquiryID string    `json:"inquiryid" bson:"inquiryid"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
