package bookings

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"vibeholidays/db"
	"vibeholidays/globals"
	"vibeholidays/models"
	"vibeholidays/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// receiptQRPayload signs bookingID|email|timestamp so the QR on a
// printed receipt can be verified against tampering.
func receiptQRPayload(bookingID, email string) string {
	timestamp := time.Now().Unix()
	data := fmt.Sprintf("%s|%s|%d", bookingID, email, timestamp)

	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// PrintReceipt streams a PDF receipt for a booking, admin scoped.
func PrintReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	var pkg models.TravelPackage
	pkgName := booking.PackageID
	destination := ""
	if err := db.PackagesCollection.FindOne(r.Context(), bson.M{"packageid": booking.PackageID}).Decode(&pkg); err == nil {
		pkgName = pkg.Name
		destination = pkg.Destination
	}

	qrPNG, err := qrcode.Encode(receiptQRPayload(booking.BookingID, booking.Email), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Vibe Holidays Booking Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Booking ID: %s", booking.BookingID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Package: %s", pkgName))
	pdf.Ln(8)
	if destination != "" {
		pdf.Cell(0, 10, fmt.Sprintf("Destination: %s", destination))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Customer: %s", booking.CustomerName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travel date: %s", booking.TravelDate.Format("02 Jan 2006")))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travelers: %d", booking.NumberOfTravelers))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f", booking.TotalPrice))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Status: %s", booking.Status))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", booking.BookingID))
	w.Write(buf.Bytes())
}
