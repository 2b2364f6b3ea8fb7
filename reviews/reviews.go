package reviews

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
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

// GetPackageReviews lists approved reviews for one package.
func GetPackageReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	skip, limit := utils.ParsePagination(r, 10, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	filter := bson.M{"packageId": ps.ByName("packageid"), "approved": true}
	results, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reviews": results})
}

// CreateReview accepts a public review; it stays hidden until an admin
// approves it.
func CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form validate.ReviewForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validate.Review(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := db.PackagesCollection.FindOne(r.Context(), bson.M{"packageid": form.PackageID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown package")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	review := models.Review{
		ReviewID:  "rev" + utils.GenerateRandomString(10),
		PackageID: form.PackageID,
		Name:      strings.TrimSpace(form.Name),
		Rating:    form.Rating,
		Comment:   strings.TrimSpace(form.Comment),
		Approved:  false,
		CreatedAt: time.Now(),
	}

	if _, err := db.ReviewsCollection.InsertOne(r.Context(), review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create review")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "review": review})
}

// ---------- Admin handlers ----------

func GetAllReviews(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	results, err := utils.FindAndDecode[models.Review](r.Context(), db.ReviewsCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "reviews": results})
}

func ApproveReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.ReviewsCollection.UpdateOne(r.Context(),
		bson.M{"reviewid": ps.ByName("id")},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve review")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.ReviewsCollection.DeleteOne(r.Context(), bson.M{"reviewid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Review deleted"})
}
