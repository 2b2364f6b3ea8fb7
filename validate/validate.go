// Package validate holds the schema validation shared by the API
// handlers. Every rejection happens here, before anything touches the
// database.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// NormalizeEmail trims and lowercases for storage.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// BookingForm is the public booking submission body.
type BookingForm struct {
	PackageID         string  `json:"packageId"`
	CustomerName      string  `json:"customerName"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	TravelDate        string  `json:"travelDate"`
	NumberOfTravelers int     `json:"numberOfTravelers"`
	TotalPrice        float64 `json:"totalPrice"`
	SpecialRequests   string  `json:"specialRequests"`
}

// Booking checks a submission against the booking contract and returns
// the parsed travel date. now is passed in so the future-date rule is
// testable.
func Booking(f BookingForm, now time.Time) (time.Time, error) {
	required := []struct {
		field string
		value string
	}{
		{"packageId", f.PackageID},
		{"customerName", f.CustomerName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"travelDate", f.TravelDate},
	}
	for _, rq := range required {
		if strings.TrimSpace(rq.value) == "" {
			return time.Time{}, fmt.Errorf("%s is required", rq.field)
		}
	}
	if f.NumberOfTravelers == 0 {
		return time.Time{}, errors.New("numberOfTravelers is required")
	}
	if !Email(strings.TrimSpace(f.Email)) {
		return time.Time{}, errors.New("invalid email address")
	}
	if f.NumberOfTravelers < 0 {
		return time.Time{}, errors.New("numberOfTravelers must be at least 1")
	}
	if f.TotalPrice < 0 {
		return time.Time{}, errors.New("totalPrice cannot be negative")
	}

	travelDate, err := ParseDate(f.TravelDate)
	if err != nil {
		return time.Time{}, errors.New("invalid travelDate")
	}
	if !travelDate.After(now) {
		return time.Time{}, errors.New("travelDate must be in the future")
	}
	return travelDate, nil
}

// InquiryForm is the contact-form body.
type InquiryForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func Inquiry(f InquiryForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(f.Email) == "" {
		return errors.New("email is required")
	}
	if !Email(strings.TrimSpace(f.Email)) {
		return errors.New("invalid email address")
	}
	if strings.TrimSpace(f.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}

// PackageForm is the admin create/update body for a travel package.
type PackageForm struct {
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Duration    int      `json:"duration"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Itinerary   []string `json:"itinerary"`
	Inclusions  []string `json:"inclusions"`
	Exclusions  []string `json:"exclusions"`
	Images      []string `json:"images"`
	Active      *bool    `json:"active"`
	Featured    bool     `json:"featured"`
}

func TravelPackage(f PackageForm) error {
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(f.Destination) == "" {
		return errors.New("destination is required")
	}
	if f.Duration < 1 {
		return errors.New("duration must be at least 1 day")
	}
	if f.Price < 0 {
		return errors.New("price cannot be negative")
	}
	return nil
}

// ReviewForm is the public review submission body.
type ReviewForm struct {
	PackageID string `json:"packageId"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func Review(f ReviewForm) error {
	if strings.TrimSpace(f.PackageID) == "" {
		return errors.New("packageId is required")
	}
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("name is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// Credentials checks the register body.
func Credentials(username, email, password string) error {
	if strings.TrimSpace(username) == "" || password == "" || strings.TrimSpace(email) == "" {
		return errors.New("username, email and password are required")
	}
	if !Email(strings.TrimSpace(email)) {
		return errors.New("invalid email address")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// BookingStatus and InquiryStatus guard admin status updates.
func BookingStatus(s string) error {
	switch s {
	case "pending", "confirmed", "cancelled":
		return nil
	}
	return fmt.Errorf("invalid booking status %q", s)
}

func InquiryStatus(s string) error {
	switch s {
	case "new", "read", "responded":
		return nil
	}
	return fmt.Errorf("invalid inquiry status %q", s)
}

// ParseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
