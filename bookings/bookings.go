package bookings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"vibeholidays/db"
	"vibeholidays/mailer"
	"vibeholidays/models"
	"vibeholidays/utils"
	"vibeholidays/validate"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mail is the SMTP config handed over from main. Dispatch is best
// effort: a failed send is logged and the booking stands.
var Mail mailer.Config

func genID() string {
	return utils.GenerateRandomDigitString(12)
}

// CreateBooking handles the public booking submission.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form validate.BookingForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	travelDate, err := validate.Booking(form, time.Now())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// The referenced package must exist and be bookable.
	var pkg models.TravelPackage
	err = db.PackagesCollection.FindOne(r.Context(), bson.M{
		"packageid": strings.TrimSpace(form.PackageID),
		"active":    true,
	}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown package")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	booking := models.Booking{
		BookingID:         "bk" + genID(),
		PackageID:         pkg.PackageID,
		CustomerName:      strings.TrimSpace(form.CustomerName),
		Email:             validate.NormalizeEmail(form.Email),
		Phone:             strings.TrimSpace(form.Phone),
		TravelDate:        travelDate,
		NumberOfTravelers: form.NumberOfTravelers,
		TotalPrice:        form.TotalPrice,
		Status:            models.BookingPending,
		SpecialRequests:   strings.TrimSpace(form.SpecialRequests),
		CreatedAt:         time.Now(),
	}

	if _, err := db.BookingsCollection.InsertOne(r.Context(), booking); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	// The record is committed; notify both sides and report failures
	// without touching the booking.
	notifyBooking(booking, pkg)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "booking": booking})
}

func notifyBooking(b models.Booking, pkg models.TravelPackage) {
	details := mailer.BookingDetails{
		BookingID:    b.BookingID,
		PackageName:  pkg.Name,
		Destination:  pkg.Destination,
		CustomerName: b.CustomerName,
		Email:        b.Email,
		Phone:        b.Phone,
		TravelDate:   b.TravelDate.Format("02 Jan 2006"),
		Travelers:    b.NumberOfTravelers,
		TotalPrice:   b.TotalPrice,
	}

	if err := Mail.Send(mailer.BookingConfirmation(details)); err != nil {
		log.Printf("Booking %s: confirmation email failed: %v", b.BookingID, err)
	}
	if err := Mail.Send(mailer.BookingAlert(Mail.AdminAddr, details)); err != nil {
		log.Printf("Booking %s: admin notification failed: %v", b.BookingID, err)
	}
}

// ---------- Admin handlers ----------

func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "bookingid", Value: -1}}).
		SetSkip(skip).SetLimit(limit)
	results, err := utils.FindAndDecode[models.Booking](ctx, db.BookingsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	total, err := db.BookingsCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count bookings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "bookings": results, "total": total})
}

func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": ps.ByName("id")}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "booking": booking})
}

// UpdateBookingStatus moves a booking between pending/confirmed/cancelled.
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.BookingStatus(input.Status); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := db.BookingsCollection.UpdateOne(r.Context(),
		bson.M{"bookingid": ps.ByName("id")},
		bson.M{"$set": bson.M{"status": input.Status}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "status": input.Status})
}
