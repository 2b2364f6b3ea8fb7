package newsletter

import (
	"encoding/json"
	"net/http"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"
	"vibeholidays/validate"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Subscribe adds an email to the newsletter list. Subscribing twice is
// not an error; the unique index keeps one record per address.
func Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email := validate.NormalizeEmail(input.Email)
	if !validate.Email(email) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	sub := models.NewsletterSubscriber{Email: email, SubscribedAt: time.Now()}
	_, err := db.NewsletterCollection.InsertOne(r.Context(), sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Already subscribed"})
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to subscribe")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "message": "Subscribed"})
}

func Unsubscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	_, err := db.NewsletterCollection.DeleteOne(r.Context(), bson.M{"email": validate.NormalizeEmail(input.Email)})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to unsubscribe")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Unsubscribed"})
}

// GetSubscribers is admin only.
func GetSubscribers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r, 50, 500)
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	subs, err := utils.FindAndDecode[models.NewsletterSubscriber](r.Context(), db.NewsletterCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch subscribers")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "subscribers": subs})
}
