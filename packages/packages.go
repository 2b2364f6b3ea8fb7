package packages

import (
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

// ---------- Admin CRUD ----------

func CreatePackage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form validate.PackageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validate.TravelPackage(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}

	now := time.Now()
	pkg := models.TravelPackage{
		PackageID:   "pkg" + utils.GenerateRandomString(10),
		Name:        strings.TrimSpace(form.Name),
		Destination: strings.TrimSpace(form.Destination),
		Duration:    form.Duration,
		Price:       form.Price,
		Description: strings.TrimSpace(form.Description),
		Itinerary:   emptyIfNil(form.Itinerary),
		Inclusions:  emptyIfNil(form.Inclusions),
		Exclusions:  emptyIfNil(form.Exclusions),
		Images:      emptyIfNil(form.Images),
		Active:      active,
		Featured:    form.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := db.PackagesCollection.InsertOne(r.Context(), pkg); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create package")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "package": pkg})
}

func UpdatePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var form validate.PackageForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := validate.TravelPackage(form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{
		"name":        strings.TrimSpace(form.Name),
		"destination": strings.TrimSpace(form.Destination),
		"duration":    form.Duration,
		"price":       form.Price,
		"description": strings.TrimSpace(form.Description),
		"itinerary":   emptyIfNil(form.Itinerary),
		"inclusions":  emptyIfNil(form.Inclusions),
		"exclusions":  emptyIfNil(form.Exclusions),
		"images":      emptyIfNil(form.Images),
		"featured":    form.Featured,
		"updatedAt":   time.Now(),
	}
	if form.Active != nil {
		update["active"] = *form.Active
	}

	res := db.PackagesCollection.FindOneAndUpdate(r.Context(),
		bson.M{"packageid": ps.ByName("id")},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var pkg models.TravelPackage
	if err := res.Decode(&pkg); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Package not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update package")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "package": pkg})
}

func DeletePackage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.PackagesCollection.DeleteOne(r.Context(), bson.M{"packageid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete package")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Package not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Package deleted"})
}

// GetAllPackages lists everything, inactive included, for the admin UI.
func GetAllPackages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	skip, limit := utils.ParsePagination(r, 20, 100)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetSkip(skip).SetLimit(limit)

	results, err := utils.FindAndDecode[models.TravelPackage](r.Context(), db.PackagesCollection, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "packages": results})
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
