// Package mailer sends the transactional notifications for bookings
// and inquiries over SMTP. Sends are best effort: callers log failures
// and keep the persisted record as the source of truth.
package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Config carries the SMTP settings; built once in main from env.
type Config struct {
	Host      string
	Port      string
	User      string
	Pass      string
	From      string
	AdminAddr string
}

func ConfigFromEnv() Config {
	cfg := Config{
		Host:      os.Getenv("SMTP_HOST"),
		Port:      os.Getenv("SMTP_PORT"),
		User:      os.Getenv("SMTP_USER"),
		Pass:      os.Getenv("SMTP_PASS"),
		From:      os.Getenv("SMTP_FROM"),
		AdminAddr: os.Getenv("ADMIN_EMAIL"),
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	return cfg
}

// Enabled reports whether outbound mail is configured at all. An
// unconfigured mailer skips sends instead of erroring on every request.
func (c Config) Enabled() bool {
	return c.Host != ""
}

// Message is a rendered mail ready for dispatch.
type Message struct {
	To      string
	Subject string
	Body    string
}

func (c Config) Send(m Message) error {
	if !c.Enabled() {
		return nil
	}
	payload := []byte("From: " + c.From + "\r\n" +
		"To: " + m.To + "\r\n" +
		"Subject: " + m.Subject + "\r\n" +
		"\r\n" + m.Body + "\r\n")

	auth := smtp.PlainAuth("", c.User, c.Pass, c.Host)
	return smtp.SendMail(c.Host+":"+c.Port, auth, c.From, []string{m.To}, payload)
}

// BookingDetails is everything both booking notifications mention.
type BookingDetails struct {
	BookingID    string
	PackageName  string
	Destination  string
	CustomerName string
	Email        string
	Phone        string
	TravelDate   string
	Travelers    int
	TotalPrice   float64
}

// BookingConfirmation renders the customer-facing confirmation.
func BookingConfirmation(d BookingDetails) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", d.CustomerName)
	fmt.Fprintf(&b, "Thank you for booking with Vibe Holidays! Your booking is pending confirmation.\n\n")
	fmt.Fprintf(&b, "Booking ID: %s\n", d.BookingID)
	fmt.Fprintf(&b, "Package: %s\n", d.PackageName)
	fmt.Fprintf(&b, "Destination: %s\n", d.Destination)
	fmt.Fprintf(&b, "Travel date: %s\n", d.TravelDate)
	fmt.Fprintf(&b, "Travelers: %d\n", d.Travelers)
	fmt.Fprintf(&b, "Total price: %.2f\n\n", d.TotalPrice)
	fmt.Fprintf(&b, "We will reach out shortly to confirm your trip.\n")

	return Message{
		To:      d.Email,
		Subject: "Your Vibe Holidays booking " + d.BookingID,
		Body:    b.String(),
	}
}

// BookingAlert renders the admin notification with contact info.
func BookingAlert(adminAddr string, d BookingDetails) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New booking received.\n\n")
	fmt.Fprintf(&b, "Booking ID: %s\n", d.BookingID)
	fmt.Fprintf(&b, "Package: %s\n", d.PackageName)
	fmt.Fprintf(&b, "Destination: %s\n", d.Destination)
	fmt.Fprintf(&b, "Travel date: %s\n", d.TravelDate)
	fmt.Fprintf(&b, "Travelers: %d\n", d.Travelers)
	fmt.Fprintf(&b, "Total price: %.2f\n\n", d.TotalPrice)
	fmt.Fprintf(&b, "Customer: %s\n", d.CustomerName)
	fmt.Fprintf(&b, "Email: %s\n", d.Email)
	fmt.Fprintf(&b, "Phone: %s\n", d.Phone)

	return Message{
		To:      adminAddr,
		Subject: "New booking " + d.BookingID + " - " + d.PackageName,
		Body:    b.String(),
	}
}

// InquiryAck renders the customer acknowledgment for a contact-form
// submission.
func InquiryAck(name, email string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", name)
	fmt.Fprintf(&b, "We received your message and will get back to you within one business day.\n\n")
	fmt.Fprintf(&b, "Vibe Holidays\n")

	return Message{
		To:      email,
		Subject: "We received your inquiry",
		Body:    b.String(),
	}
}

// InquiryAlert renders the admin notification for an inquiry.
func InquiryAlert(adminAddr, inquiryID, name, email, phone, message string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New inquiry %s\n\n", inquiryID)
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n", email)
	if phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", phone)
	}
	fmt.Fprintf(&b, "\n%s\n", message)

	return Message{
		To:      adminAddr,
		Subject: "New inquiry from " + name,
		Body:    b.String(),
	}
}
