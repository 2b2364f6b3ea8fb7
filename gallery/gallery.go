package gallery

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"vibeholidays/db"
	"vibeholidays/models"
	"vibeholidays/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetGallery serves the public gallery. A category filter is an exact
// match, so items never leak across categories.
func GetGallery(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}
	if dest := r.URL.Query().Get("destination"); dest != "" {
		filter["destination"] = dest
	}

	// Ascending display order, newest first within the same slot.
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	items, err := utils.FindAndDecode[models.GalleryItem](ctx, db.GalleryCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch gallery")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "items": items})
}

type galleryForm struct {
	URL         string `json:"url"`
	Category    string `json:"category"`
	Caption     string `json:"caption"`
	Destination string `json:"destination"`
	Order       int    `json:"order"`
}

func CreateGalleryItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form galleryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if strings.TrimSpace(form.URL) == "" || strings.TrimSpace(form.Category) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "url and category are required")
		return
	}

	item := models.GalleryItem{
		ItemID:      "g" + utils.GenerateRandomString(10),
		URL:         strings.TrimSpace(form.URL),
		Category:    strings.TrimSpace(form.Category),
		Caption:     strings.TrimSpace(form.Caption),
		Destination: strings.TrimSpace(form.Destination),
		Order:       form.Order,
		CreatedAt:   time.Now(),
	}

	if _, err := db.GalleryCollection.InsertOne(r.Context(), item); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "item": item})
}

// galleryUpdateForm uses pointers so an absent field is distinguishable
// from an explicit empty value, mirroring PackageForm.Active.
type galleryUpdateForm struct {
	URL         *string `json:"url"`
	Category    *string `json:"category"`
	Caption     *string `json:"caption"`
	Destination *string `json:"destination"`
	Order       *int    `json:"order"`
}

// buildGalleryUpdate sets only the fields present in the body, so a
// caption-only edit cannot clear the destination or reset the order.
// Caption and destination may be cleared by sending an empty string.
func buildGalleryUpdate(form galleryUpdateForm) bson.M {
	update := bson.M{}
	if form.URL != nil && strings.TrimSpace(*form.URL) != "" {
		update["url"] = strings.TrimSpace(*form.URL)
	}
	if form.Category != nil && strings.TrimSpace(*form.Category) != "" {
		update["category"] = strings.TrimSpace(*form.Category)
	}
	if form.Caption != nil {
		update["caption"] = strings.TrimSpace(*form.Caption)
	}
	if form.Destination != nil {
		update["destination"] = strings.TrimSpace(*form.Destination)
	}
	if form.Order != nil {
		update["order"] = *form.Order
	}
	return update
}

func UpdateGalleryItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var form galleryUpdateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := buildGalleryUpdate(form)
	if len(update) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	res, err := db.GalleryCollection.UpdateOne(r.Context(),
		bson.M{"itemid": ps.ByName("id")},
		bson.M{"$set": update},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update gallery item")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Gallery item not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func DeleteGalleryItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := db.GalleryCollection.DeleteOne(r.Context(), bson.M{"itemid": ps.ByName("id")})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete gallery item")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Gallery item not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Gallery item deleted"})
}
