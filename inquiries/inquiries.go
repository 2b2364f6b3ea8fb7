package inquiries

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mail is the SMTP config handed over from main.
var Mail mailer.Config

// CreateInquiry handles the public contact form. Both the customer
// acknowledgment and the admin notification are attempted for every
// persisted inquiry.
func CreateInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form validate.InquiryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validate.Inquiry(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	inquiry := models.Inquiry{
		InquiryID: "inq" + utils.GenerateRandomDigitString(12),
		Name:      strings.TrimSpace(form.Name),
		Email:     validate.NormalizeEmail(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		Message:   strings.TrimSpace(form.Message),
		Status:    models.InquiryNew,
		CreatedAt: time.Now(),
	}

	if _, err := db.InquiriesCollection.InsertOne(r.Context(), inquiry); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create inquiry")
		return
	}

	if err := Mail.Send(mailer.InquiryAck(inquiry.Name, inquiry.Email)); err != nil {
		log.Printf("Inquiry %s: acknowledgment email failed: %v", inquiry.InquiryID, err)
	}
	if err := Mail.Send(mailer.InquiryAlert(Mail.AdminAddr, inquiry.InquiryID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Message)); err != nil {
		log.Printf("Inquiry %s: admin notification failed: %v", inquiry.InquiryID, err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "inquiry": inquiry})
}

// ---------- Admin handlers ----------

func GetInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "inquiryid", Value: -1}}).
		SetSkip(skip).SetLimit(limit)

	results, err := utils.FindAndDecode[models.Inquiry](ctx, db.InquiriesCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch inquiries")
		return
	}

	total, err := db.InquiriesCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count inquiries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "inquiries": results, "total": total})
}

func UpdateInquiryStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := validate.InquiryStatus(input.Status); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := db.InquiriesCollection.UpdateOne(r.Context(),
		bson.M{"inquiryid": ps.ByName("id")},
		bson.M{"$set": bson.M{"status": input.Status}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update inquiry")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Inquiry not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "status": input.Status})
}
